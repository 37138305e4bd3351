package checks

import (
	"time"

	"tradequality/src/model"
	"tradequality/src/utils"
)

// OpenTimeBefore flags trades opened before January 1st of minYear.
// Unparseable open times are excluded.
func OpenTimeBefore(trades []model.Trade, minYear int) []model.Violation {
	var out []model.Violation
	for _, trade := range trades {
		open, ok := parseTime(trade.OpenTime)
		if !ok || open.Year() >= minYear {
			continue
		}
		out = append(out, newViolation(RuleOpenTimeBeforeMin, trade.TicketHash, field(model.ColOpenTime, trade.OpenTime)))
	}
	return out
}

// CloseBeforeOpen flags trades closed before they were opened. Both times
// must parse for the trade to be compared at all.
func CloseBeforeOpen(trades []model.Trade) []model.Violation {
	var out []model.Violation
	for _, trade := range trades {
		open, okOpen := parseTime(trade.OpenTime)
		closed, okClose := parseTime(trade.CloseTime)
		if !okOpen || !okClose || !closed.Before(open) {
			continue
		}
		out = append(out, newViolation(RuleCloseBeforeOpen, trade.TicketHash,
			field(model.ColOpenTime, trade.OpenTime),
			field(model.ColCloseTime, trade.CloseTime),
		))
	}
	return out
}

// UnparseableTimestamps flags trades carrying a non-NULL time that cannot be read.
func UnparseableTimestamps(trades []model.Trade) []model.Violation {
	var out []model.Violation
	for _, trade := range trades {
		var bad []model.FieldValue
		if trade.OpenTime.Valid {
			if _, ok := parseTime(trade.OpenTime); !ok {
				bad = append(bad, field(model.ColOpenTime, trade.OpenTime))
			}
		}
		if trade.CloseTime.Valid {
			if _, ok := parseTime(trade.CloseTime); !ok {
				bad = append(bad, field(model.ColCloseTime, trade.CloseTime))
			}
		}
		if len(bad) > 0 {
			out = append(out, newViolation(RuleUnparseableTimestamp, trade.TicketHash, bad...))
		}
	}
	return out
}

func parseTime(v model.Value) (time.Time, bool) {
	if !v.Valid {
		return time.Time{}, false
	}
	return utils.ParseTimestamp(v.Raw)
}

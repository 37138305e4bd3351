package checks

import (
	"github.com/shopspring/decimal"

	"tradequality/src/model"
)

var (
	cmdBuy  = decimal.NewFromInt(0)
	cmdSell = decimal.NewFromInt(1)
)

// NegativeVolume flags trades with volume < 0. NULL and non-numeric volumes are skipped.
func NegativeVolume(trades []model.Trade) []model.Violation {
	return filterDecimal(trades, RuleNegativeVolume, model.ColVolume, func(d decimal.Decimal) bool {
		return d.IsNegative()
	})
}

// NegativeOpenPrice flags trades with open_price < 0.
func NegativeOpenPrice(trades []model.Trade) []model.Violation {
	return filterDecimal(trades, RuleNegativeOpenPrice, model.ColOpenPrice, func(d decimal.Decimal) bool {
		return d.IsNegative()
	})
}

// ZeroVolume flags trades whose volume is exactly zero.
func ZeroVolume(trades []model.Trade) []model.Violation {
	return filterDecimal(trades, RuleZeroVolume, model.ColVolume, func(d decimal.Decimal) bool {
		return d.IsZero()
	})
}

// InvalidCmd flags every trade whose cmd is not 0 or 1. NULL and
// non-numeric values are outside the domain and are reported. A cmd column
// stored as text never holds the integers 0 or 1, so every row is reported.
func InvalidCmd(trades model.TradeTable) []model.Violation {
	textual := trades.Kind(model.ColCmd) == model.KindText

	var out []model.Violation
	for _, trade := range trades.Rows {
		d, ok := trade.Cmd.Decimal()
		if !textual && ok && (d.Equal(cmdBuy) || d.Equal(cmdSell)) {
			continue
		}
		out = append(out, newViolation(RuleInvalidCmd, trade.TicketHash, field(model.ColCmd, trade.Cmd)))
	}
	return out
}

func filterDecimal(trades []model.Trade, rule, column string, match func(decimal.Decimal) bool) []model.Violation {
	var out []model.Violation
	for _, trade := range trades {
		v, _ := trade.Field(column)
		d, ok := v.Decimal()
		if !ok || !match(d) {
			continue
		}
		out = append(out, newViolation(rule, trade.TicketHash, field(column, v)))
	}
	return out
}

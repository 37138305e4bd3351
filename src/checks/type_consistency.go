package checks

import (
	"strings"
	"unicode"

	"tradequality/src/model"
)

// TypeConsistency flags values of textual columns that do not read as an
// unsigned number with at most one decimal point. Columns stored natively as
// numbers are never scanned. NULL inside a textual column is reported.
func TypeConsistency(trades model.TradeTable, columns []string) []model.Violation {
	var out []model.Violation
	for _, column := range columns {
		if trades.Kind(column) != model.KindText {
			continue
		}
		for _, trade := range trades.Rows {
			v, ok := trade.Field(column)
			if !ok {
				continue
			}
			if v.Valid && isDigitString(v.Raw) {
				continue
			}
			out = append(out, newViolation(RuleTypeConsistency, trade.TicketHash, field(column, v)))
		}
	}
	return out
}

// isDigitString drops the first '.' and requires a non-empty run of digits.
// A sign, whitespace or exponent all fail.
func isDigitString(raw string) bool {
	s := strings.Replace(raw, ".", "", 1)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

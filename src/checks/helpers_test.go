package checks

import (
	"tradequality/src/model"
)

func v(raw string) model.Value {
	return model.NewValue(raw)
}

func newTrade(ticket string) model.Trade {
	return model.Trade{
		TicketHash:   v(ticket),
		LoginHash:    v("login-1"),
		Symbol:       v("EURUSD"),
		Digits:       v("5"),
		Cmd:          v("0"),
		Volume:       v("1"),
		OpenPrice:    v("1.1"),
		ContractSize: v("100000"),
		OpenTime:     v("2021-01-01 10:00:00"),
		CloseTime:    v("2021-01-01 11:00:00"),
	}
}

func enabled(b bool) *bool {
	return &b
}

func tickets(violations []model.Violation) []string {
	out := make([]string, 0, len(violations))
	for _, vi := range violations {
		out = append(out, vi.TicketHash.String())
	}
	return out
}

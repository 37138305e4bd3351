package checks

import (
	"tradequality/src/model"
)

// MissingAccounts flags trades whose login_hash has no row in the accounts
// table. A NULL key never matches. Each ticket is reported once.
func MissingAccounts(trades []model.Trade, accounts []model.Account) []model.Violation {
	known := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		if a.LoginHash.Valid {
			known[a.LoginHash.Raw] = struct{}{}
		}
	}
	return unmatched(trades, RuleMissingAccount, model.ColLoginHash, known)
}

// MissingInstruments flags trades whose symbol has no row in the instruments table.
func MissingInstruments(trades []model.Trade, instruments []model.Instrument) []model.Violation {
	known := make(map[string]struct{}, len(instruments))
	for _, i := range instruments {
		if i.Symbol.Valid {
			known[i.Symbol.Raw] = struct{}{}
		}
	}
	return unmatched(trades, RuleMissingInstrument, model.ColSymbol, known)
}

// DisabledAccountTrades flags trades placed by an account with enable = false.
// Trades without any matching account are left to MissingAccounts.
func DisabledAccountTrades(trades []model.Trade, accounts []model.Account) []model.Violation {
	disabled := make(map[string]struct{})
	for _, a := range accounts {
		if a.LoginHash.Valid && a.Disabled() {
			disabled[a.LoginHash.Raw] = struct{}{}
		}
	}

	var out []model.Violation
	for _, trade := range trades {
		if !trade.LoginHash.Valid {
			continue
		}
		if _, ok := disabled[trade.LoginHash.Raw]; !ok {
			continue
		}
		out = append(out, newViolation(RuleDisabledAccount, trade.TicketHash, field(model.ColLoginHash, trade.LoginHash)))
	}
	return out
}

// unmatched is the left-outer-join half that keeps trades with no partner.
// Trades without a ticket cannot be told apart, so each one is kept.
func unmatched(trades []model.Trade, rule, column string, known map[string]struct{}) []model.Violation {
	var out []model.Violation
	seen := make(map[string]struct{})
	for _, trade := range trades {
		key, _ := trade.Field(column)
		if key.Valid {
			if _, ok := known[key.Raw]; ok {
				continue
			}
		}
		if trade.TicketHash.Valid {
			if _, dup := seen[trade.TicketHash.Raw]; dup {
				continue
			}
			seen[trade.TicketHash.Raw] = struct{}{}
		}
		out = append(out, newViolation(rule, trade.TicketHash, field(column, key)))
	}
	return out
}

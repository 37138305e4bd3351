package checks

import (
	"tradequality/src/model"

	logger "github.com/sirupsen/logrus"
)

// Rule identifiers, in the order the battery runs them.
const (
	RuleTypeConsistency      = "type_consistency"
	RuleNegativeVolume       = "negative_volume"
	RuleNegativeOpenPrice    = "negative_open_price"
	RuleVolumeOutlier        = "volume_outlier"
	RuleOpenTimeBeforeMin    = "open_time_before_min_year"
	RuleCloseBeforeOpen      = "close_before_open"
	RuleUnparseableTimestamp = "unparseable_timestamp"
	RuleMissingAccount       = "missing_account"
	RuleMissingInstrument    = "missing_instrument"
	RuleDisabledAccount      = "disabled_account"
	RuleZeroVolume           = "zero_volume"
	RuleInvalidCmd           = "invalid_cmd"
)

const (
	DefaultOutlierThreshold = 3.0
	DefaultMinOpenYear      = 2020
)

// Rule is one independent check over the dataset snapshot.
type Rule struct {
	ID          string
	Description string
	Evaluate    func(ds *model.Dataset) []model.Violation
}

// Options tune the data-dependent parts of the battery.
type Options struct {
	OutlierThreshold float64
	MinOpenYear      int
	// StrictTimestamps adds a rule reporting timestamps that cannot be parsed at all.
	StrictTimestamps bool
}

func DefaultOptions() Options {
	return Options{
		OutlierThreshold: DefaultOutlierThreshold,
		MinOpenYear:      DefaultMinOpenYear,
	}
}

// DefaultRules returns the fixed, ordered rule battery.
func DefaultRules(opts Options) []Rule {
	if opts.OutlierThreshold <= 0 {
		opts.OutlierThreshold = DefaultOutlierThreshold
	}
	if opts.MinOpenYear == 0 {
		opts.MinOpenYear = DefaultMinOpenYear
	}

	rules := []Rule{
		{
			ID:          RuleTypeConsistency,
			Description: "Unexpected strings found in numeric fields",
			Evaluate: func(ds *model.Dataset) []model.Violation {
				return TypeConsistency(ds.Trades, model.NumericTradeColumns)
			},
		},
		{
			ID:          RuleNegativeVolume,
			Description: "Negative volumes found",
			Evaluate:    func(ds *model.Dataset) []model.Violation { return NegativeVolume(ds.Trades.Rows) },
		},
		{
			ID:          RuleNegativeOpenPrice,
			Description: "Negative open prices found",
			Evaluate:    func(ds *model.Dataset) []model.Violation { return NegativeOpenPrice(ds.Trades.Rows) },
		},
		{
			ID:          RuleVolumeOutlier,
			Description: "Outliers detected in volume",
			Evaluate: func(ds *model.Dataset) []model.Violation {
				return VolumeOutliers(ds.Trades.Rows, opts.OutlierThreshold)
			},
		},
		{
			ID:          RuleOpenTimeBeforeMin,
			Description: "Trades with open_time before the minimum year found",
			Evaluate: func(ds *model.Dataset) []model.Violation {
				return OpenTimeBefore(ds.Trades.Rows, opts.MinOpenYear)
			},
		},
		{
			ID:          RuleCloseBeforeOpen,
			Description: "Trades where close_time is before open_time found",
			Evaluate:    func(ds *model.Dataset) []model.Violation { return CloseBeforeOpen(ds.Trades.Rows) },
		},
	}

	if opts.StrictTimestamps {
		rules = append(rules, Rule{
			ID:          RuleUnparseableTimestamp,
			Description: "Trades with unparseable open_time or close_time found",
			Evaluate:    func(ds *model.Dataset) []model.Violation { return UnparseableTimestamps(ds.Trades.Rows) },
		})
	}

	return append(rules,
		Rule{
			ID:          RuleMissingAccount,
			Description: "Trades with login_hash not found in users table",
			Evaluate: func(ds *model.Dataset) []model.Violation {
				return MissingAccounts(ds.Trades.Rows, ds.Accounts)
			},
		},
		Rule{
			ID:          RuleMissingInstrument,
			Description: "Trades with symbol not found in symbols table",
			Evaluate: func(ds *model.Dataset) []model.Violation {
				return MissingInstruments(ds.Trades.Rows, ds.Instruments)
			},
		},
		Rule{
			ID:          RuleDisabledAccount,
			Description: "Trades made by disabled accounts",
			Evaluate: func(ds *model.Dataset) []model.Violation {
				return DisabledAccountTrades(ds.Trades.Rows, ds.Accounts)
			},
		},
		Rule{
			ID:          RuleZeroVolume,
			Description: "Trades with zero volume found",
			Evaluate:    func(ds *model.Dataset) []model.Violation { return ZeroVolume(ds.Trades.Rows) },
		},
		Rule{
			ID:          RuleInvalidCmd,
			Description: "Trades with invalid cmd values found",
			Evaluate:    func(ds *model.Dataset) []model.Violation { return InvalidCmd(ds.Trades) },
		},
	)
}

// Run evaluates every rule against the same snapshot and keeps the rule order.
func Run(ds *model.Dataset, rules []Rule) []model.Result {
	results := make([]model.Result, 0, len(rules))
	for _, rule := range rules {
		found := rule.Evaluate(ds)
		if found == nil {
			found = []model.Violation{}
		}

		logger.WithFields(map[string]interface{}{
			"rule":       rule.ID,
			"violations": len(found),
		}).Debug("Rule evaluated")

		results = append(results, model.Result{
			Rule:        rule.ID,
			Description: rule.Description,
			Violations:  found,
		})
	}
	return results
}

func newViolation(rule string, ticketHash model.Value, fields ...model.FieldValue) model.Violation {
	return model.Violation{
		Rule:       rule,
		TicketHash: ticketHash,
		Fields:     fields,
	}
}

func field(name string, v model.Value) model.FieldValue {
	return model.FieldValue{Name: name, Value: v}
}

package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradequality/src/model"
)

func sampleDataset() *model.Dataset {
	good := newTrade("good")
	bad := newTrade("bad")
	bad.Volume = v("-1")
	bad.Cmd = v("7")
	bad.LoginHash = v("login-2")
	bad.Symbol = v("???")
	bad.OpenTime = v("2019-06-01")
	bad.CloseTime = v("2019-05-01")
	zero := newTrade("zero")
	zero.Volume = v("0")
	zero.Digits = v("five")

	return &model.Dataset{
		Trades: model.TradeTable{
			Kinds: map[string]model.ColumnKind{model.ColDigits: model.KindText},
			Rows:  []model.Trade{good, bad, zero},
		},
		Accounts: []model.Account{
			{LoginHash: v("login-1"), Enable: enabled(true)},
			{LoginHash: v("login-2"), Enable: enabled(false)},
		},
		Instruments: []model.Instrument{{Symbol: v("EURUSD")}},
	}
}

func ruleIDs(rules []Rule) []string {
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestDefaultRulesOrder(t *testing.T) {
	require.Equal(t, []string{
		RuleTypeConsistency,
		RuleNegativeVolume,
		RuleNegativeOpenPrice,
		RuleVolumeOutlier,
		RuleOpenTimeBeforeMin,
		RuleCloseBeforeOpen,
		RuleMissingAccount,
		RuleMissingInstrument,
		RuleDisabledAccount,
		RuleZeroVolume,
		RuleInvalidCmd,
	}, ruleIDs(DefaultRules(DefaultOptions())))

	strict := DefaultOptions()
	strict.StrictTimestamps = true
	ids := ruleIDs(DefaultRules(strict))
	require.Len(t, ids, 12)
	require.Equal(t, RuleUnparseableTimestamp, ids[6])
}

func TestRun(t *testing.T) {
	ds := sampleDataset()
	results := Run(ds, DefaultRules(DefaultOptions()))

	found := make(map[string][]string, len(results))
	for _, r := range results {
		require.NotNil(t, r.Violations)
		require.NotEmpty(t, r.Description)
		found[r.Rule] = tickets(r.Violations)
	}

	require.Equal(t, []string{"zero"}, found[RuleTypeConsistency])
	require.Equal(t, []string{"bad"}, found[RuleNegativeVolume])
	require.Empty(t, found[RuleNegativeOpenPrice])
	require.Empty(t, found[RuleVolumeOutlier])
	require.Equal(t, []string{"bad"}, found[RuleOpenTimeBeforeMin])
	require.Equal(t, []string{"bad"}, found[RuleCloseBeforeOpen])
	require.Empty(t, found[RuleMissingAccount])
	require.Equal(t, []string{"bad"}, found[RuleMissingInstrument])
	require.Equal(t, []string{"bad"}, found[RuleDisabledAccount])
	require.Equal(t, []string{"zero"}, found[RuleZeroVolume])
	require.Equal(t, []string{"bad"}, found[RuleInvalidCmd])
}

func TestRunIsDeterministic(t *testing.T) {
	ds := sampleDataset()
	rules := DefaultRules(Options{StrictTimestamps: true})
	require.Equal(t, Run(ds, rules), Run(ds, rules))
}

func TestRunDoesNotMutateDataset(t *testing.T) {
	ds := sampleDataset()
	before := *ds
	beforeRows := append([]model.Trade(nil), ds.Trades.Rows...)

	Run(ds, DefaultRules(DefaultOptions()))

	require.Equal(t, beforeRows, ds.Trades.Rows)
	require.Equal(t, before.Accounts, ds.Accounts)
}

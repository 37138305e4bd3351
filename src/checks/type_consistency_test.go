package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradequality/src/model"
)

func TestTypeConsistency_TextualColumn(t *testing.T) {
	ok := newTrade("t1")
	ok.Volume = v("12.5")
	twoDots := newTrade("t2")
	twoDots.Volume = v("12.5.3")
	negative := newTrade("t3")
	negative.Volume = v("-1")
	null := newTrade("t4")
	null.Volume = model.NullValue()
	word := newTrade("t5")
	word.Volume = v("abc")

	table := model.TradeTable{
		Kinds: map[string]model.ColumnKind{model.ColVolume: model.KindText},
		Rows:  []model.Trade{ok, twoDots, negative, null, word},
	}

	got := TypeConsistency(table, model.NumericTradeColumns)
	require.Equal(t, []string{"t2", "t3", "t4", "t5"}, tickets(got))
	for _, vi := range got {
		require.Equal(t, RuleTypeConsistency, vi.Rule)
		require.Len(t, vi.Fields, 1)
		require.Equal(t, model.ColVolume, vi.Fields[0].Name)
	}
	require.Equal(t, "12.5.3", got[0].Fields[0].Value.Raw)
	require.False(t, got[2].Fields[0].Value.Valid)
}

func TestTypeConsistency_NumericColumnNeverScanned(t *testing.T) {
	trade := newTrade("t1")
	trade.Volume = v("12.5.3")

	table := model.TradeTable{
		Kinds: map[string]model.ColumnKind{model.ColVolume: model.KindNumeric},
		Rows:  []model.Trade{trade},
	}
	require.Empty(t, TypeConsistency(table, model.NumericTradeColumns))
}

func TestTypeConsistency_FieldOrderThenRowOrder(t *testing.T) {
	a := newTrade("a")
	a.Digits = v("x")
	a.ContractSize = v("y")
	b := newTrade("b")
	b.Digits = v("z")

	table := model.TradeTable{
		Kinds: map[string]model.ColumnKind{
			model.ColDigits:       model.KindText,
			model.ColContractSize: model.KindText,
		},
		Rows: []model.Trade{a, b},
	}

	got := TypeConsistency(table, model.NumericTradeColumns)
	require.Len(t, got, 3)
	require.Equal(t, model.ColDigits, got[0].Fields[0].Name)
	require.Equal(t, v("a"), got[0].TicketHash)
	require.Equal(t, model.ColDigits, got[1].Fields[0].Name)
	require.Equal(t, v("b"), got[1].TicketHash)
	require.Equal(t, model.ColContractSize, got[2].Fields[0].Name)
}

func TestIsDigitString(t *testing.T) {
	tests := map[string]bool{
		"12":    true,
		"12.5":  true,
		".5":    true,
		"5.":    true,
		"":      false,
		".":     false,
		"1..2":  false,
		"1e3":   false,
		" 12":   false,
		"+1":    false,
		"１２":    true,
		"12.5.": false,
	}
	for in, want := range tests {
		require.Equal(t, want, isDigitString(in), "input %q", in)
	}
}

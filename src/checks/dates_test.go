package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tradequality/src/model"
)

func TestOpenTimeBefore(t *testing.T) {
	before := newTrade("before")
	before.OpenTime = v("2019-12-31")
	before.CloseTime = v("2020-01-02")
	onBoundary := newTrade("boundary")
	onBoundary.OpenTime = v("2020-01-01")
	unparseable := newTrade("garbage")
	unparseable.OpenTime = v("yesterday")
	null := newTrade("null")
	null.OpenTime = model.NullValue()

	got := OpenTimeBefore([]model.Trade{before, onBoundary, unparseable, null}, DefaultMinOpenYear)
	require.Equal(t, []string{"before"}, tickets(got))
	require.Equal(t, model.ColOpenTime, got[0].Fields[0].Name)
}

func TestOpenTimeBeforeCommonEra(t *testing.T) {
	rendered := newTrade("rendered")
	rendered.OpenTime = v("-0043-03-15T00:00:00Z")
	printed := newTrade("printed")
	printed.OpenTime = v("0044-03-15 00:00:00+00 BC")

	got := OpenTimeBefore([]model.Trade{rendered, printed}, DefaultMinOpenYear)
	require.Equal(t, []string{"rendered", "printed"}, tickets(got))
}

func TestCloseBeforeOpen(t *testing.T) {
	reversed := newTrade("reversed")
	reversed.OpenTime = v("2021-05-01 10:00:00")
	reversed.CloseTime = v("2021-05-01 09:59:59")
	oldReversed := newTrade("old-reversed")
	oldReversed.OpenTime = v("2018-01-02")
	oldReversed.CloseTime = v("2018-01-01")
	same := newTrade("same")
	same.OpenTime = v("2021-05-01 10:00:00")
	same.CloseTime = v("2021-05-01 10:00:00")
	badClose := newTrade("bad-close")
	badClose.CloseTime = v("never")
	nullOpen := newTrade("null-open")
	nullOpen.OpenTime = model.NullValue()

	got := CloseBeforeOpen([]model.Trade{reversed, oldReversed, same, badClose, nullOpen})
	require.Equal(t, []string{"reversed", "old-reversed"}, tickets(got))
	require.Equal(t, []model.FieldValue{
		{Name: model.ColOpenTime, Value: v("2021-05-01 10:00:00")},
		{Name: model.ColCloseTime, Value: v("2021-05-01 09:59:59")},
	}, got[0].Fields)
}

func TestCloseBeforeOpen_MixedZones(t *testing.T) {
	trade := newTrade("zones")
	trade.OpenTime = v("2021-05-01T10:00:00+02:00")
	trade.CloseTime = v("2021-05-01T09:00:00Z")
	require.Empty(t, CloseBeforeOpen([]model.Trade{trade}))
}

func TestUnparseableTimestamps(t *testing.T) {
	badOpen := newTrade("bad-open")
	badOpen.OpenTime = v("??")
	badBoth := newTrade("bad-both")
	badBoth.OpenTime = v("x")
	badBoth.CloseTime = v("y")
	null := newTrade("null")
	null.OpenTime = model.NullValue()
	null.CloseTime = model.NullValue()

	got := UnparseableTimestamps([]model.Trade{newTrade("ok"), badOpen, badBoth, null})
	require.Equal(t, []string{"bad-open", "bad-both"}, tickets(got))
	require.Len(t, got[1].Fields, 2)
}

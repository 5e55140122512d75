package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrade(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	require.NoError(t, s.Save(testSnapshot(t)))

	got, err := s.GetTrade("T2")
	require.NoError(t, err)
	assert.Equal(t, "BEXIMCO", got.Symbol)
	assert.Equal(t, int64(40), got.Quantity)
	assert.True(t, got.RealizedPL().Equal(dec(t, "220"))) // (140 - 134.50) * 40

	_, err = s.GetTrade("missing")
	assert.ErrorContains(t, err, "not found")
}

func TestListTradesNewestFirst(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	require.NoError(t, s.Save(testSnapshot(t)))

	recs, err := s.ListTrades()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "T2", recs[0].ID)
	assert.Equal(t, "T1", recs[1].ID)
}

func TestListTradesBetween(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	snap := testSnapshot(t)
	require.NoError(t, s.Save(snap))

	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	recs, err := s.ListTradesBetween(day, day.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	// Window that only covers the first trade.
	recs, err = s.ListTradesBetween(day, snap.Trades[1].Time)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "T1", recs[0].ID)

	recs, err = s.ListTradesBetween(day.AddDate(0, 0, 1), day.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

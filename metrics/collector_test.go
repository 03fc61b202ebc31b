package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordInsertIncrementsCounter(t *testing.T) {
	c := newCollector()

	c.RecordInsert("ask", "deque")
	c.RecordInsert("ask", "deque")
	c.RecordInsert("bid", "deque")

	require.Equal(t, float64(2), testutil.ToFloat64(c.OrdersInserted.WithLabelValues("ask", "deque")))
	require.Equal(t, float64(1), testutil.ToFloat64(c.OrdersInserted.WithLabelValues("bid", "deque")))
}

func TestRecordTradesAccumulatesVolume(t *testing.T) {
	c := newCollector()

	c.RecordTrades("deque", 3, 12.5, 0.002)
	c.RecordTrades("deque", 1, 2.5, 0.001)

	require.Equal(t, float64(4), testutil.ToFloat64(c.TradesTotal.WithLabelValues("deque")))
	require.Equal(t, float64(15), testutil.ToFloat64(c.TradedVolume.WithLabelValues("deque")))
}

func TestSetRestingGauge(t *testing.T) {
	c := newCollector()

	c.SetResting("bid", "btree", 7)
	require.Equal(t, float64(7), testutil.ToFloat64(c.OrdersResting.WithLabelValues("bid", "btree")))

	c.SetResting("bid", "btree", 4)
	require.Equal(t, float64(4), testutil.ToFloat64(c.OrdersResting.WithLabelValues("bid", "btree")))
}

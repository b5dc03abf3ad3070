package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/faktura/internal/i18n"
	"github.com/Veraticus/faktura/internal/invoice"
	"github.com/Veraticus/faktura/internal/model"
)

func TestComputeStats(t *testing.T) {
	invoices := []model.Invoice{
		{ID: "1", Amount: 100, Status: model.StatusPaid},
		{ID: "2", Amount: 200, Status: model.StatusPending},
		{ID: "3", Amount: 300, Status: model.StatusPaid},
	}

	stats := ComputeStats(invoices)

	assert.Equal(t, 3, stats.TotalInvoices)
	assert.InDelta(t, 600, stats.TotalAmount, 0.001)
	assert.InDelta(t, 200, stats.AvgAmount, 0.001)
	assert.Equal(t, 2, stats.Paid)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 0, stats.Overdue)
	assert.False(t, stats.Estimated)
}

func TestComputeStats_BackfillsWhenNoStatuses(t *testing.T) {
	invoices := []model.Invoice{
		{ID: "1", Amount: 100},
		{ID: "2", Amount: 100},
		{ID: "3", Amount: 100},
		{ID: "4", Amount: 100},
		{ID: "5", Amount: 100},
		{ID: "6", Amount: 100},
		{ID: "7", Amount: 100},
		{ID: "8", Amount: 100},
		{ID: "9", Amount: 100},
		{ID: "10", Amount: 100},
	}

	stats := ComputeStats(invoices)

	// Fixed 60/30/10 split, floor/floor/ceil.
	assert.Equal(t, 6, stats.Paid)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 1, stats.Overdue)
	assert.True(t, stats.Estimated)
}

func TestComputeStats_EmptyListUsesSeed(t *testing.T) {
	stats := ComputeStats(nil)

	seed := invoice.MockInvoices()
	assert.Equal(t, len(seed), stats.TotalInvoices)
	assert.Greater(t, stats.TotalAmount, 0.0)
	assert.Greater(t, stats.AvgAmount, 0.0)
	// The seed has real statuses, so no back-fill.
	assert.False(t, stats.Estimated)
}

func TestMonthlyTotals(t *testing.T) {
	invoices := []model.Invoice{
		{ID: "1", Amount: 100, Date: "2024-01-10"},
		{ID: "2", Amount: 150, Date: "2024-01-20"},
		{ID: "3", Amount: 200, Date: "2024-03-05"},
		{ID: "4", Amount: 50, Date: "not-a-date"},
	}

	totals := MonthlyTotals(invoices)

	assert.InDelta(t, 250, totals[0], 0.001)
	assert.InDelta(t, 0, totals[1], 0.001)
	assert.InDelta(t, 200, totals[2], 0.001)
}

func TestMonthlyTotals_EmptyUsesMockSeries(t *testing.T) {
	assert.Equal(t, invoice.MockMonthlyRevenue(), MonthlyTotals(nil))
}

func TestTrailing_SixBucketsEndingAtCurrentMonth(t *testing.T) {
	// Invoices spread across 8 distinct months.
	invoices := []model.Invoice{
		{ID: "1", Amount: 10, Date: "2024-07-01"},
		{ID: "2", Amount: 20, Date: "2024-08-01"},
		{ID: "3", Amount: 30, Date: "2024-09-01"},
		{ID: "4", Amount: 40, Date: "2024-10-01"},
		{ID: "5", Amount: 50, Date: "2024-11-01"},
		{ID: "6", Amount: 60, Date: "2024-12-01"},
		{ID: "7", Amount: 70, Date: "2024-01-01"},
		{ID: "8", Amount: 80, Date: "2024-02-01"},
	}

	totals := MonthlyTotals(invoices)
	labels := i18n.Months(model.LanguageEnUS)
	now := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)

	buckets := Trailing(totals, labels, now, 6)

	assert.Len(t, buckets, 6)
	assert.Equal(t, "Sep", buckets[0].Label)
	assert.Equal(t, "Feb", buckets[5].Label)

	wantLabels := []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}
	wantTotals := []float64{30, 40, 50, 60, 70, 80}
	for i, b := range buckets {
		assert.Equal(t, wantLabels[i], b.Label)
		assert.InDelta(t, wantTotals[i], b.Total, 0.001)
	}
}

func TestTrailing_YearWrap(t *testing.T) {
	var totals [12]float64
	for i := range totals {
		totals[i] = float64(i + 1)
	}

	labels := i18n.Months(model.LanguageEnUS)
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	buckets := Trailing(totals, labels, now, 6)

	// Aug..Jan, wrapping December into January.
	assert.Equal(t, "Aug", buckets[0].Label)
	assert.Equal(t, "Jan", buckets[5].Label)
	assert.InDelta(t, 12, buckets[4].Total, 0.001) // December slot
	assert.InDelta(t, 1, buckets[5].Total, 0.001)  // January slot
}

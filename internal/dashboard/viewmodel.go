// Package dashboard computes the aggregate views shown on the
// dashboard screen: headline stats and the monthly revenue series.
package dashboard

import (
	"log/slog"
	"math"
	"time"

	"github.com/Veraticus/faktura/internal/invoice"
	"github.com/Veraticus/faktura/internal/model"
)

// Stats is the headline summary over the invoice list.
//
// When no invoice carries a real status the per-status counts are
// back-filled with fixed 60/30/10 ratios so the status card is never
// empty. That is a presentation heuristic, not a business rule;
// Estimated is true whenever it ran so callers can mark the numbers.
type Stats struct {
	TotalInvoices int
	TotalAmount   float64
	AvgAmount     float64
	Paid          int
	Pending       int
	Overdue       int
	Estimated     bool
}

// ComputeStats summarizes the invoice list. An empty list is replaced
// by the mock dataset so a fresh install still shows a populated
// dashboard.
func ComputeStats(invoices []model.Invoice) Stats {
	if len(invoices) == 0 {
		invoices = invoice.MockInvoices()
	}

	stats := Stats{TotalInvoices: len(invoices)}
	for _, inv := range invoices {
		stats.TotalAmount += inv.Amount
		switch inv.Status {
		case model.StatusPaid:
			stats.Paid++
		case model.StatusPending:
			stats.Pending++
		case model.StatusOverdue:
			stats.Overdue++
		}
	}
	stats.AvgAmount = stats.TotalAmount / float64(stats.TotalInvoices)

	if stats.Paid == 0 && stats.Pending == 0 && stats.Overdue == 0 {
		n := float64(stats.TotalInvoices)
		stats.Paid = int(math.Floor(n * 0.6))
		stats.Pending = int(math.Floor(n * 0.3))
		stats.Overdue = int(math.Ceil(n * 0.1))
		stats.Estimated = true
		slog.Debug("back-filled status counts for display", "total", stats.TotalInvoices)
	}

	return stats
}

// MonthlyTotals buckets invoice amounts into twelve month slots by
// business date. Invoices with unparseable dates are skipped. An empty
// list yields the fixed mock revenue series.
func MonthlyTotals(invoices []model.Invoice) [12]float64 {
	if len(invoices) == 0 {
		return invoice.MockMonthlyRevenue()
	}

	var totals [12]float64
	for _, inv := range invoices {
		date, err := inv.BusinessDate()
		if err != nil {
			slog.Debug("skipping invoice with bad date", "id", inv.ID, "date", inv.Date)
			continue
		}
		totals[int(date.Month())-1] += inv.Amount
	}
	return totals
}

// MonthBucket pairs a month label with its revenue total.
type MonthBucket struct {
	Label string
	Total float64
}

// Trailing selects the last n months ending at now's month, in
// chronological order, wrapping the twelve-slot arrays circularly.
func Trailing(totals [12]float64, labels [12]string, now time.Time, n int) []MonthBucket {
	if n <= 0 || n > 12 {
		n = 6
	}

	current := int(now.Month()) - 1
	buckets := make([]MonthBucket, n)
	for i := 0; i < n; i++ {
		idx := (current - i + 12) % 12
		buckets[n-1-i] = MonthBucket{Label: labels[idx], Total: totals[idx]}
	}
	return buckets
}

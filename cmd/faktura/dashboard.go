package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/faktura/internal/cli"
	"github.com/Veraticus/faktura/internal/dashboard"
	"github.com/Veraticus/faktura/internal/i18n"
	"github.com/Veraticus/faktura/internal/invoice"
	"github.com/Veraticus/faktura/internal/prefs"
)

const chartWidth = 30

func dashboardCmd() *cobra.Command {
	var months int

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show invoice stats and monthly revenue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			repo := invoice.NewRepository(st)
			preferences := prefs.NewService(st)
			formatter := i18n.NewFormatter(preferences)
			lang := preferences.Language(ctx)

			invoices := repo.List(ctx)
			stats := dashboard.ComputeStats(invoices)

			statusNote := ""
			if stats.Estimated {
				statusNote = " " + cli.SubtleStyle.Render("(estimated)")
			}
			summary := fmt.Sprintf(
				"Invoices:  %d\nTotal:     %s\nAverage:   %s\n\n%s %d  %s %d  %s %d%s",
				stats.TotalInvoices,
				formatter.Format(ctx, stats.TotalAmount),
				formatter.Format(ctx, stats.AvgAmount),
				cli.SuccessStyle.Render(i18n.StatusLabel(lang, "paid")), stats.Paid,
				cli.WarningStyle.Render(i18n.StatusLabel(lang, "pending")), stats.Pending,
				cli.ErrorStyle.Render(i18n.StatusLabel(lang, "overdue")), stats.Overdue,
				statusNote,
			)
			fmt.Println(cli.RenderBox(cli.ChartIcon+" Dashboard", summary))

			buckets := dashboard.Trailing(
				dashboard.MonthlyTotals(invoices),
				i18n.Months(lang),
				time.Now(),
				months,
			)
			fmt.Println(renderRevenueChart(ctx, buckets, formatter))
			return nil
		},
	}

	cmd.Flags().IntVarP(&months, "months", "m", 6, "number of trailing months to chart")

	return cmd
}

// renderRevenueChart draws a horizontal bar chart of monthly revenue,
// scaled to the largest bucket.
func renderRevenueChart(ctx context.Context, buckets []dashboard.MonthBucket, formatter *i18n.Formatter) string {
	var maxTotal float64
	for _, b := range buckets {
		if b.Total > maxTotal {
			maxTotal = b.Total
		}
	}

	var sb strings.Builder
	sb.WriteString(cli.TitleStyle.Render("Monthly revenue"))
	sb.WriteString("\n")

	for _, b := range buckets {
		width := 0
		if maxTotal > 0 {
			width = int(b.Total / maxTotal * chartWidth)
		}
		bar := cli.InfoStyle.Render(strings.Repeat("█", width))
		sb.WriteString(fmt.Sprintf("%-5s %s %s\n", b.Label, bar, formatter.Format(ctx, b.Total)))
	}

	return sb.String()
}

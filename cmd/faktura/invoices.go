package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Veraticus/faktura/internal/cli"
	"github.com/Veraticus/faktura/internal/i18n"
	"github.com/Veraticus/faktura/internal/invoice"
	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/prefs"
	"github.com/Veraticus/faktura/internal/tui"
)

func invoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"inv"},
		Short:   "Manage invoices",
	}

	cmd.AddCommand(invoicesListCmd())
	cmd.AddCommand(invoicesAddCmd())
	cmd.AddCommand(invoicesViewCmd())
	cmd.AddCommand(invoicesStatusCmd())
	cmd.AddCommand(invoicesDeleteCmd())
	cmd.AddCommand(invoicesShareCmd())
	cmd.AddCommand(invoicesSearchCmd())
	cmd.AddCommand(invoicesFavoriteCmd())
	cmd.AddCommand(invoicesBrowseCmd())

	return cmd
}

func invoicesListCmd() *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all invoices",
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

			invoices := repo.List(ctx)
			if statusFilter != "" {
				filtered := invoices[:0]
				for _, inv := range invoices {
					if string(inv.Status) == statusFilter {
						filtered = append(filtered, inv)
					}
				}
				invoices = filtered
			}

			printInvoiceTable(ctx, invoices, formatter, preferences.Language(ctx))
			return nil
		},
	}

	cmd.Flags().StringVarP(&statusFilter, "status", "s", "", "filter by status (paid, pending, overdue)")

	return cmd
}

func printInvoiceTable(ctx context.Context, invoices []model.Invoice, formatter *i18n.Formatter, lang model.Language) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Invoices (%d)", len(invoices))))

	if len(invoices) == 0 {
		fmt.Println(cli.InfoStyle.Render("No invoices."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, cli.TableHeaderStyle.Render("NUMBER")+"\t"+
		cli.TableHeaderStyle.Render("CLIENT")+"\t"+
		cli.TableHeaderStyle.Render("DATE")+"\t"+
		cli.TableHeaderStyle.Render("AMOUNT")+"\t"+
		cli.TableHeaderStyle.Render("STATUS"))

	for _, inv := range invoices {
		status := cli.StatusStyle(string(inv.Status)).Render(i18n.StatusLabel(lang, inv.Status))
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			inv.InvoiceNumber,
			inv.ClientName,
			inv.Date,
			formatter.Format(ctx, inv.Amount),
			status,
		)
	}
	_ = w.Flush()
}

func invoicesAddCmd() *cobra.Command {
	var inv model.Invoice
	var status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an invoice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if inv.Date == "" {
				inv.Date = time.Now().Format(model.DateLayout)
			}
			if status == "" {
				status = string(prefs.NewService(st).Preferences(ctx).DefaultInvoiceStatus)
			}
			inv.Status = model.InvoiceStatus(status)

			repo := invoice.NewRepository(st)
			saved, err := repo.Save(ctx, inv)
			if err != nil {
				return fmt.Errorf("failed to save invoice: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved invoice %s (%s)", saved.InvoiceNumber, saved.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inv.InvoiceNumber, "number", "n", "", "invoice number")
	cmd.Flags().StringVarP(&inv.ClientName, "client", "c", "", "client name")
	cmd.Flags().Float64VarP(&inv.Amount, "amount", "a", 0, "invoice amount")
	cmd.Flags().StringVarP(&inv.Date, "date", "d", "", "business date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&inv.FileName, "file-name", "", "attached file name")
	cmd.Flags().StringVar(&inv.FileURI, "file-uri", "", "attached file location")
	cmd.Flags().StringVar(&inv.FileType, "file-type", "", "attached file type (pdf, image)")
	cmd.Flags().StringVarP(&status, "status", "s", "", "status (paid, pending, overdue; default from settings)")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func invoicesViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			repo := invoice.NewRepository(st)
			preferences := prefs.NewService(st)
			formatter := i18n.NewFormatter(preferences)

			inv := repo.ByID(ctx, args[0])
			if inv == nil {
				fmt.Println(cli.FormatError("Invoice not found: " + args[0]))
				return nil
			}

			// Viewing counts as recent activity.
			if err := preferences.AddRecentInvoice(ctx, inv.ID); err != nil {
				return err
			}
			if err := preferences.SetLastViewedInvoice(ctx, inv.ID); err != nil {
				return err
			}

			lang := preferences.Language(ctx)
			content := fmt.Sprintf(
				"Number:  %s\nClient:  %s\nAmount:  %s\nDate:    %s\nStatus:  %s",
				inv.InvoiceNumber,
				inv.ClientName,
				formatter.Format(ctx, inv.Amount),
				inv.Date,
				cli.StatusStyle(string(inv.Status)).Render(i18n.StatusLabel(lang, inv.Status)),
			)
			if inv.FileName != "" {
				content += fmt.Sprintf("\nFile:    %s (%s)", inv.FileName, inv.FileType)
			}

			fmt.Println(cli.RenderBox(cli.InvoiceIcon+" "+inv.InvoiceNumber, content))
			return nil
		},
	}
}

func invoicesStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <paid|pending|overdue>",
		Short: "Update an invoice's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			repo := invoice.NewRepository(st)
			inv, err := repo.UpdateStatus(ctx, args[0], model.InvoiceStatus(args[1]))
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}
			if inv == nil {
				fmt.Println(cli.FormatError("Invoice not found: " + args[0]))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s is now %s", inv.InvoiceNumber, inv.Status)))
			return nil
		},
	}
}

func invoicesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			repo := invoice.NewRepository(st)
			removed, err := repo.Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete invoice: %w", err)
			}
			if !removed {
				fmt.Println(cli.FormatError("Invoice not found: " + args[0]))
				return nil
			}

			fmt.Println(cli.FormatSuccess("Deleted invoice " + args[0]))
			return nil
		},
	}
}

func invoicesShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <id>",
		Short: "Generate a shareable link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			repo := invoice.NewRepository(st)
			inv := repo.ByID(ctx, args[0])
			if inv == nil {
				fmt.Println(cli.FormatError("Invoice not found: " + args[0]))
				return nil
			}

			fmt.Println(invoice.ShareLink(inv.ID))
			return nil
		},
	}
}

func invoicesSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search invoices by number or client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			repo := invoice.NewRepository(st)
			preferences := prefs.NewService(st)
			formatter := i18n.NewFormatter(preferences)

			results := repo.Search(ctx, args[0])
			if err := preferences.AddRecentSearch(ctx, args[0]); err != nil {
				return err
			}

			printInvoiceTable(ctx, results, formatter, preferences.Language(ctx))
			return nil
		},
	}
}

func invoicesFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <id>",
		Short: "Toggle an invoice as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			preferences := prefs.NewService(st)
			nowFavorite, err := preferences.ToggleFavorite(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to toggle favorite: %w", err)
			}

			if nowFavorite {
				fmt.Println(cli.FormatSuccess("Added " + args[0] + " to favorites"))
			} else {
				fmt.Println(cli.FormatSuccess("Removed " + args[0] + " from favorites"))
			}
			return nil
		},
	}
}

func invoicesBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse invoices interactively",
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

			browser := tui.NewBrowser(repo.List(ctx), func(amount float64) string {
				return formatter.Format(ctx, amount)
			})

			program := tea.NewProgram(browser, tea.WithContext(ctx), tea.WithOutput(os.Stdout))
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}

			// Record the last highlighted invoice as viewed.
			if selected := final.(tui.BrowserModel).Selected(); selected != nil {
				if err := preferences.SetLastViewedInvoice(ctx, selected.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

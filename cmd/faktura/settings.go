package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/faktura/internal/cli"
	"github.com/Veraticus/faktura/internal/i18n"
	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/prefs"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change preferences",
	}

	cmd.AddCommand(settingsListCmd())
	cmd.AddCommand(settingsSetCmd())
	cmd.AddCommand(settingsResetCmd())
	cmd.AddCommand(settingsClearCmd())

	return cmd
}

func settingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			service := prefs.NewService(st)
			p := service.Preferences(ctx)

			currency := i18n.CurrencyFor(p.Currency)
			language := i18n.LanguageFor(p.Language)

			content := fmt.Sprintf(
				"currency          %s (%s)\n"+
					"language          %s (%s)\n"+
					"theme             %s\n"+
					"default-status    %s\n"+
					"save-location     %s\n"+
					"color-scheme      %s\n"+
					"text-size         %s\n"+
					"notifications     email=%t push=%t sms=%t",
				p.Currency, currency.Symbol,
				p.Language, language.NativeName,
				p.Theme,
				p.DefaultInvoiceStatus,
				p.DefaultSaveLocation,
				p.ColorScheme,
				p.TextSize,
				p.NotificationPreferences.Email,
				p.NotificationPreferences.Push,
				p.NotificationPreferences.SMS,
			)
			fmt.Println(cli.RenderBox("Settings", content))
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference",
		Long: `Change one preference. Keys:

  currency               EUR, USD, TRY
  language               en-US, nl-BE, fr-BE, tr-TR
  theme                  light, dark, system
  default-status         paid, pending, overdue
  save-location          local, cloud, both
  color-scheme           free-form string
  text-size              small, medium, large
  notifications.email    true, false
  notifications.push     true, false
  notifications.sms      true, false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			service := prefs.NewService(st)
			patch, err := buildPatch(ctx, service, args[0], args[1])
			if err != nil {
				return err
			}

			if _, err := service.Save(ctx, patch); err != nil {
				return fmt.Errorf("failed to save preferences: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set %s to %s", args[0], args[1])))
			return nil
		},
	}
}

// buildPatch translates a settings key and value into a partial update.
// Notification toggles need the current channel values since the patch
// replaces the whole notification struct.
func buildPatch(ctx context.Context, service *prefs.Service, key, value string) (model.PreferencesPatch, error) {
	var patch model.PreferencesPatch

	switch key {
	case "currency":
		c := model.Currency(strings.ToUpper(value))
		switch c {
		case model.CurrencyEUR, model.CurrencyUSD, model.CurrencyTRY:
			patch.Currency = &c
		default:
			return patch, fmt.Errorf("unknown currency: %s", value)
		}

	case "language":
		l := model.Language(value)
		switch l {
		case model.LanguageEnUS, model.LanguageNlBE, model.LanguageFrBE, model.LanguageTrTR:
			patch.Language = &l
		default:
			return patch, fmt.Errorf("unknown language: %s", value)
		}

	case "theme":
		t := model.Theme(value)
		switch t {
		case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
			patch.Theme = &t
		default:
			return patch, fmt.Errorf("unknown theme: %s", value)
		}

	case "default-status":
		s := model.InvoiceStatus(value)
		if !s.Valid() {
			return patch, fmt.Errorf("unknown status: %s", value)
		}
		patch.DefaultInvoiceStatus = &s

	case "save-location":
		loc := model.SaveLocation(value)
		switch loc {
		case model.SaveLocal, model.SaveCloud, model.SaveBoth:
			patch.DefaultSaveLocation = &loc
		default:
			return patch, fmt.Errorf("unknown save location: %s", value)
		}

	case "color-scheme":
		patch.ColorScheme = &value

	case "text-size":
		patch.TextSize = &value

	case "notifications.email", "notifications.push", "notifications.sms":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return patch, fmt.Errorf("expected true or false, got %s", value)
		}
		current := service.Preferences(ctx).NotificationPreferences
		switch key {
		case "notifications.email":
			current.Email = enabled
		case "notifications.push":
			current.Push = enabled
		case "notifications.sms":
			current.SMS = enabled
		}
		patch.NotificationPreferences = &current

	default:
		return patch, fmt.Errorf("unknown settings key: %s", key)
	}

	return patch, nil
}

func settingsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset preferences to defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := prefs.NewService(st).Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset preferences: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Preferences reset to defaults"))
			return nil
		},
	}
}

func settingsClearCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear preferences plus recents, favorites, and searches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !confirmed {
				fmt.Println(cli.WarningStyle.Render("This removes preferences, recent invoices, favorites, and search history. Re-run with --yes to confirm."))
				return nil
			}

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			if err := prefs.NewService(st).ClearAll(ctx); err != nil {
				return fmt.Errorf("failed to clear settings: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Settings cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "skip the confirmation")

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Veraticus/faktura/internal/backup"
	"github.com/Veraticus/faktura/internal/cli"
	"github.com/Veraticus/faktura/internal/store"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore all application data",
	}

	cmd.AddCommand(backupExportCmd())
	cmd.AddCommand(backupRestoreCmd())

	return cmd
}

func backupExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of the store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create backup file: %w", err)
			}
			defer func() { _ = file.Close() }()

			bar := progressbar.Default(int64(len(store.Keys())), "exporting")
			err = backup.NewService(st).Export(ctx, file, func(string) {
				_ = bar.Add(1)
			})
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess("Exported to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "faktura-backup.json", "backup file to write")

	return cmd
}

func backupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a JSON snapshot into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open backup file: %w", err)
			}
			defer func() { _ = file.Close() }()

			bar := progressbar.Default(-1, "restoring")
			err = backup.NewService(st).Restore(ctx, file, func(string) {
				_ = bar.Add(1)
			})
			if err != nil {
				return fmt.Errorf("failed to restore: %w", err)
			}
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess("Restored from " + args[0]))
			return nil
		},
	}
}

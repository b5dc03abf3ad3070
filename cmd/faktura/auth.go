package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Veraticus/faktura/internal/auth"
	"github.com/Veraticus/faktura/internal/cli"
	"github.com/Veraticus/faktura/internal/common"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the demo account",
		Long: `Log in with the demo credentials (demo@example.com / password, or
demo / demo). Authentication is mocked; the session token is stored
locally and restored on the next run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			if email == "" {
				if email, err = prompter.Line(ctx, "Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompter.Secret(ctx, "Password"); err != nil {
					return err
				}
			}

			svc := auth.NewService(st)
			user, err := svc.Login(ctx, email, password)
			if err != nil {
				return common.NewUserError("Invalid email or password", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s <%s>", user.Name, user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			svc := auth.NewService(st)
			svc.Init(ctx)
			if err := svc.Logout(ctx); err != nil {
				return fmt.Errorf("failed to log out: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var input auth.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a mock account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			if input.Name == "" {
				if input.Name, err = prompter.Line(ctx, "Name"); err != nil {
					return err
				}
			}
			if input.Email == "" {
				if input.Email, err = prompter.Line(ctx, "Email"); err != nil {
					return err
				}
			}
			if input.Password == "" {
				if input.Password, err = prompter.Secret(ctx, "Password"); err != nil {
					return err
				}
			}

			svc := auth.NewService(st)
			user, err := svc.Register(ctx, input)
			if err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Registered %s <%s>", user.Name, user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&input.Company, "company", "", "company name")
	cmd.Flags().StringVar(&input.Password, "password", "", "account password")

	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			svc := auth.NewService(st)
			svc.Init(ctx)

			if !svc.IsAuthenticated() {
				fmt.Println(cli.InfoStyle.Render("Not logged in."))
				return nil
			}

			user := svc.CurrentUser()
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			if user.Company != "" {
				fmt.Println(cli.SubtleStyle.Render(user.Company))
			}
			fmt.Println(cli.SubtleStyle.Render("role: " + string(user.Role)))
			return nil
		},
	}
}

func resetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Request a password reset (mocked)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			svc := auth.NewService(st)
			if err := svc.ResetPassword(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to request reset: %w", err)
			}

			fmt.Println(cli.FormatSuccess("If that account exists, a reset email is on its way"))
			return nil
		},
	}
}

func changePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password (mocked)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			svc := auth.NewService(st)
			svc.Init(ctx)

			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			current, err := prompter.Secret(ctx, "Current password")
			if err != nil {
				return err
			}
			next, err := prompter.Secret(ctx, "New password")
			if err != nil {
				return err
			}

			if err := svc.ChangePassword(ctx, current, next); err != nil {
				return fmt.Errorf("failed to change password: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Password changed"))
			return nil
		},
	}
}

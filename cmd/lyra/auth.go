package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/garrettladley/lyra/internal/client/lyra"
	"github.com/garrettladley/lyra/internal/session"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored Lyra API token",
	}

	cmd.AddCommand(loginCmd())
	cmd.AddCommand(setTokenCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(logoutCmd())

	return cmd
}

func loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		Long:  "Exchanges a username and password for an access token. The password is read from stdin when --password is omitted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if password == "" {
				if password, err = readPassword(cmd); err != nil {
					return err
				}
			}

			client := lyra.New(nil, a.clientOptions()...)
			token, err := client.Auth.Login(ctx, username, password)
			if err != nil {
				if lyra.IsUnauthorized(err) {
					return errors.New("login failed: invalid username or password")
				}
				return fmt.Errorf("login failed: %w", err)
			}

			if err := a.tokens.Save(ctx, token.AccessToken); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", client.BaseURL(), username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(f.Fd()) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(f.Fd())
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("empty password")
	}
	return line, nil
}

func setTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token TOKEN",
		Short: "Store an existing access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.tokens.Save(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to store token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Token stored")
			return nil
		},
	}
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a token is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			_, err = a.tokens.Load(ctx)
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in (api: %s)\n", a.cfg.APIURL)
			case errors.Is(err, session.ErrNoToken):
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
			default:
				return fmt.Errorf("failed to read token: %w", err)
			}
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.tokens.Clear(ctx); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

package client

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *App) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account identified by a new secret key",
		Long: `Create an account identified by a new secret key.

The key is shown once. Keep it: "hms login <secret-key>" exchanges it for a
bearer token later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := a.adapter.Register(cmd.Context())
			if err != nil {
				return err
			}

			out := struct {
				UserID    string `json:"user_id"`
				SecretKey string `json:"secret_key"`
				Token     string `json:"token"`
			}{auth.UserID, auth.SecretKey, a.adapter.Token()}

			return a.printer(cmd).print(out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "user id:    %s\nsecret key: %s\ntoken:      %s\n", out.UserID, out.SecretKey, out.Token)
				return err
			})
		},
	}
}

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <secret-key>",
		Short: "Exchange a secret key for a bearer token",
		Long: `Exchange a secret key for a bearer token.

Pass the token to later commands with --token or the HMS_TOKEN variable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := a.adapter.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := struct {
				UserID string `json:"user_id"`
				Token  string `json:"token"`
			}{auth.UserID, a.adapter.Token()}

			return a.printer(cmd).print(out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, out.Token)
				return err
			})
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			out := struct {
				Client string `json:"client"`
				Server string `json:"server"`
			}{a.buildInfo.BuildVersion(), serverVersion}

			return a.printer(cmd).print(out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "client: %s\nserver: %s\n", out.Client, out.Server)
				return err
			})
		},
	}
}

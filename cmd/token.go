package main

import (
	"fmt"
	"time"

	"bizbot/internal/usecases"

	"github.com/spf13/cobra"
)

func NewTokenCommand() *cobra.Command {
	var clientID string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an API client (requires JWT_SECRET)",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, _, err := setup(cmd)
			if err != nil {
				return err
			}

			token, err := usecases.NewAuthUsecase(config.JWTSecret).IssueToken(clientID, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client identifier stored in the token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/templui/smartgoals/internal/config"
	"github.com/templui/smartgoals/internal/model"
	"github.com/templui/smartgoals/internal/service"
	"github.com/templui/smartgoals/internal/validation"
)

func TokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a session JWT for local API calls",
		Example: `  TOKEN=$(do token --user dev-user)
  curl -H "Authorization: Bearer $TOKEN" localhost:8090/api/dashboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			if email != "" {
				err := validation.ValidateEmail(email)
				if err != nil {
					return err
				}
			}

			cfg := config.Load()
			if expiry <= 0 {
				expiry = cfg.JWTExpiry
			}

			auth := service.NewAuthService(cfg.JWTSecret, cfg.IsProduction(), expiry)
			token, err := auth.GenerateJWT(&model.User{ID: userID, Email: email})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to put in the token")
	cmd.Flags().StringVar(&email, "email", "", "optional email for goal summary emails")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (defaults to JWT_EXPIRY)")

	return cmd
}

package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"flameo-chatbot/pkg/auth"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token for the protected HTTP endpoints",
	Long: `Signs a bearer token with ADMIN_JWT_SECRET. The server requires it on
DELETE /api/history and POST /stats/clear when the secret is set.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Admin.JWTSecret == "" {
			return errors.New("ADMIN_JWT_SECRET is not set")
		}
		ttl := tokenTTL
		if ttl <= 0 {
			ttl = cfg.Admin.TokenTTL
		}
		token, err := auth.NewJWTManager(cfg.Admin.JWTSecret, ttl).GenerateToken(tokenSubject)
		if err != nil {
			return err
		}
		cmd.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (default ADMIN_TOKEN_TTL_HOURS)")
	rootCmd.AddCommand(tokenCmd)
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gswatch/watcher-control/internal/btoken"
)

var (
	mintSecret string
	mintSalt   string
	mintTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage bearer tokens",
}

var tokenMintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint a bearer token from the shared secret",
	Long: `Mint a self-certifying bearer token. Anyone holding the shared
secret can mint tokens offline; the server never stores them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if mintSecret == "" {
			return fmt.Errorf("--secret is required")
		}
		salt := mintSalt
		if salt == "" {
			salt = btoken.NewSalt()
		}
		t, err := btoken.Mint(salt, time.Now().Add(mintTTL), mintSecret)
		if err != nil {
			return err
		}
		fmt.Println(t)
		return nil
	},
}

var tokenInspectCmd = &cobra.Command{
	Use:   "inspect <token>",
	Short: "Decode a token's salt and expiry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoded, ok := btoken.Decode(args[0])
		if !ok {
			return fmt.Errorf("not a well-formed token")
		}
		fmt.Printf("salt:   %s\n", decoded.Salt)
		fmt.Printf("expiry: %s\n", decoded.Expiry.UTC().Format(time.RFC3339))
		if time.Now().After(decoded.Expiry) {
			fmt.Println("status: expired")
		} else {
			fmt.Printf("status: valid for %s\n", time.Until(decoded.Expiry).Round(time.Second))
		}
		return nil
	},
}

func init() {
	tokenMintCmd.Flags().StringVar(&mintSecret, "secret", "", "Shared secret")
	tokenMintCmd.Flags().StringVar(&mintSalt, "salt", "", "Salt (random when omitted, min 25 chars)")
	tokenMintCmd.Flags().DurationVar(&mintTTL, "ttl", 24*time.Hour, "Token lifetime")

	tokenCmd.AddCommand(tokenMintCmd)
	tokenCmd.AddCommand(tokenInspectCmd)
}

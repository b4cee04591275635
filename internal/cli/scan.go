package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mireku/cardik/internal/scan"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the vault and rebuild the card index",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			cards, err := scan.Vault(app.Cfg.GetString("vault_dir"), app.Cfg.GetString("vault_pattern"))
			if err != nil {
				return err
			}
			idx, err := app.Index(cmd.Context())
			if err != nil {
				return err
			}
			if err := idx.ReplaceVault(cmd.Context(), cards); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d cards\n", len(cards))
			return nil
		},
	}
	return cmd
}

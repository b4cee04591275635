package cli

import (
	"github.com/spf13/cobra"

	"github.com/mireku/cardik/internal/scan"
	"github.com/mireku/cardik/internal/ui"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse vault cards in an interactive table",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			// fresh scan so the table reflects the vault, not the index
			cards, err := scan.Vault(app.Cfg.GetString("vault_dir"), app.Cfg.GetString("vault_pattern"))
			if err != nil {
				return err
			}
			return ui.BrowseCards(cmd.Context(), cards)
		},
	}
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mireku/cardik/internal/present"
)

func newSearchCmd() *cobra.Command {
	var outputMode string
	var noHeaders bool
	var limit int
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search indexed cards by name, company, email or raw text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if limit <= 0 {
				limit = app.Cfg.GetInt("index.page_size")
			}
			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			idx, err := app.Index(cmd.Context())
			if err != nil {
				return err
			}
			cards, err := idx.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			opts := present.Options{
				Mode:    mode,
				Headers: !noHeaders,
			}
			return renderCards(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cards, opts)
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|pretty|json")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum matches (0 uses config)")
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers (plain)")
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mireku/cardik/internal/present"
)

func newListCmd() *cobra.Command {
	var outputMode string
	var noHeaders bool
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed cards",
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
			cards, err := idx.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			opts := present.Options{
				Mode:       mode,
				JSONIndent: false, // pretty-print via external tools like jq
				Headers:    !noHeaders,
			}
			return renderCards(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cards, opts)
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|pretty|json")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum cards to list (0 uses config)")
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers (plain)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "pretty", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mireku/cardik/internal/present"
)

func newShowCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one card by ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			idx, err := app.Index(cmd.Context())
			if err != nil {
				return err
			}
			c, err := idx.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			mode := present.ModePlain
			if outputMode == "" {
				// pretty on a terminal, plain when piped
				if isTTY(cmd.OutOrStdout()) {
					mode = present.ModePretty
				}
			} else {
				var ok bool
				mode, ok = present.ParseMode(strings.ToLower(outputMode))
				if !ok {
					return fmt.Errorf("invalid --output: %s", outputMode)
				}
			}
			opts := present.Options{Mode: mode, Headers: true}
			return renderCard(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), c, opts)
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "", "output mode: plain|pretty|json (default: pretty on a tty)")
	return cmd
}

package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mireku/cardik/internal/config"
	"github.com/mireku/cardik/internal/render"
	"github.com/mireku/cardik/internal/scan"
	"github.com/mireku/cardik/internal/server"
	"github.com/mireku/cardik/pkg/api"
)

func newRenderCmd() *cobra.Command {
	var out string
	var block bool
	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render contact cards to an HTML page",
		Long: `Render contact-card blocks to a self-contained HTML page.

With file arguments only those markdown files are rendered; without any the
whole vault is. With --block, stdin is read as one raw card body instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			opts := config.RenderOptions(app.Cfg)

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if block {
				body, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, render.Block(string(body), opts))
				return err
			}

			cards, err := collectCards(app.Cfg.GetString("vault_dir"), app.Cfg.GetString("vault_pattern"), args)
			if err != nil {
				return err
			}
			server.WritePage(w, cards, opts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the page to a file instead of stdout")
	cmd.Flags().BoolVar(&block, "block", false, "read a single card body from stdin")
	return cmd
}

// collectCards scans the named files, or the whole vault when none are given.
func collectCards(vaultDir, pattern string, files []string) ([]api.Card, error) {
	if len(files) == 0 {
		return scan.Vault(vaultDir, pattern)
	}
	var cards []api.Card
	for _, f := range files {
		found, err := scan.File(f)
		if err != nil {
			return nil, err
		}
		for i := range found {
			found[i].Path = filepath.ToSlash(found[i].Path)
		}
		cards = append(cards, found...)
	}
	return cards, nil
}

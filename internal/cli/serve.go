package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mireku/cardik/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the vault as a browsable HTML preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if addr == "" {
				addr = app.Cfg.GetString("serve.http_addr")
			}
			srv := server.New(app.Cfg, app.Log)
			if watch {
				go func() {
					if err := srv.Watch(cmd.Context()); err != nil {
						app.Log.Printf("serve: watcher stopped: %v", err)
					}
				}()
			}
			app.Log.Printf("serve: listening on %s", addr)
			return http.ListenAndServe(addr, srv.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default from config)")
	cmd.Flags().BoolVar(&watch, "watch", true, "rescan when vault files change")
	return cmd
}

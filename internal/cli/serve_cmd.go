package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/server"
)

func newServeCmd(a *app.App) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address == "" {
				address = a.Config.Server.Address
			}
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))
			srv := server.New(a, log)

			log.Info("listening", "address", address)
			if err := http.ListenAndServe(address, srv); err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Listen address (defaults to the configured server address)")
	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RavuAlHemio/icingcake/internal/api"
	"github.com/RavuAlHemio/icingcake/internal/constants"
)

// serveCmd runs the HTTP gateway
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP gateway for filtered Icinga queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		handlers := api.NewHandlers(newIcingaClient(cfg))
		server := api.NewServer(api.ServerConfig{
			Host: cfg.Server.Host,
			Port: cfg.Server.Port,
		}, handlers)

		errCh := make(chan error, 1)
		go func() {
			log.Printf("gateway listening on %s", server.Addr())
			errCh <- server.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("gateway server: %w", err)
			}
			return nil
		case sig := <-sigCh:
			log.Printf("received %s, shutting down", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutting down gateway: %w", err)
		}
		return nil
	},
}

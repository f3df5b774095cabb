package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sebicas/site/internal/logger"
	"github.com/sebicas/site/pkg/content"
	"github.com/sebicas/site/web/server/handlers"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if addr != "" {
				conf.Server.Addr = addr
			}

			log, err := logger.New(conf.Log)
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := content.Validate(); err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              conf.Server.Addr,
				Handler:           handlers.New(conf, log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				log.Info("listening", zap.String("addr", srv.Addr), zap.Bool("live", conf.Server.Live))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("listen: %w", err)
				}
				return nil
			})

			g.Go(func() error {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				log.Info("shutting down")
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides server.addr")
	return cmd
}

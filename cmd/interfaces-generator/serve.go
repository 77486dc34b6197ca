package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"interfaces-generator/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP editing API (with /healthz and /metrics)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appContainer.GetConfig()
		logger := appContainer.GetLogger()

		metrics.SetGeneratorInfo(version)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		server := &http.Server{
			Addr:              cfg.Server.ListenAddr,
			Handler:           appContainer.GetAPIHandler().Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.WithFields(logrus.Fields{
				"addr":   cfg.Server.ListenAddr,
				"target": cfg.Generator.TargetPath,
			}).Info("편집 API 서버 시작 (with /healthz, /metrics)")
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			logger.Info("Received shutdown signal")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Failed to shutdown API server")
			return err
		}
		logger.Info("편집 API 서버 종료")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

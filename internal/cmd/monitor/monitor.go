// Package monitor implements the monitor command: it polls the water meter and reports its readings
// until it is interrupted.
package monitor

import (
	"context"
	"fmt"
	"github.com/clambin/go-common/charmer"
	"github.com/clambin/suez-monitor/internal/app"
	"github.com/clambin/suez-monitor/internal/configuration"
	"github.com/clambin/suez-monitor/internal/portal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

var Cmd = cobra.Command{
	Use:   "monitor",
	Short: "monitor the water meter",
	RunE:  run,
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return Run(ctx, viper.GetViper(), cmd.Root().Version, prometheus.DefaultRegisterer, charmer.GetLogger(cmd))
}

// Run loads the configuration from v and monitors the water meter until ctx is cancelled.
func Run(ctx context.Context, v *viper.Viper, version string, registry prometheus.Registerer, logger *slog.Logger) error {
	cfg, err := configuration.Load(v)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("suez-monitor starting", "version", version)
	defer logger.Info("suez-monitor stopped")

	a, err := app.New(ctx, cfg, version, portal.New(cfg.Portal.Command, cfg.Portal.Args...), registry, logger)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}

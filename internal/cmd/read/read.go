// Package read implements the read command: it logs in to the portal, reads the water meter once and prints the result.
package read

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/clambin/go-common/charmer"
	"github.com/clambin/suez-monitor/internal/configuration"
	"github.com/clambin/suez-monitor/internal/platform"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/portal"
	"github.com/clambin/suez-monitor/internal/sensor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
)

var Cmd = cobra.Command{
	Use:   "read",
	Short: "read the water meter once and print the result",
	RunE:  run,
}

var args = charmer.Arguments{
	"json": {Default: false, Help: "print the reading in JSON"},
}

func init() {
	_ = charmer.SetPersistentFlags(&Cmd, viper.GetViper(), args)
}

var (
	ErrNoSensor    = errors.New("no sensor could be set up")
	ErrUnavailable = errors.New("sensor is unavailable")
)

type Encoder interface {
	Encode(any) error
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := configuration.Load(viper.GetViper())
	if err != nil {
		return err
	}

	var e Encoder
	if viper.GetBool("json") {
		je := json.NewEncoder(os.Stdout)
		je.SetIndent("", "  ")
		e = je
	} else {
		ye := yaml.NewEncoder(os.Stdout)
		ye.SetIndent(2)
		defer func() { _ = ye.Close() }()
		e = ye
	}
	return Read(cmd.Context(), cfg.Suez, portal.New(cfg.Portal.Command, cfg.Portal.Args...), e, charmer.GetLogger(cmd))
}

// Read sets up the sensor, polls it once and encodes its reading.
func Read(ctx context.Context, cfg configuration.SuezConfiguration, newClient sensor.NewClientFunc, e Encoder, logger *slog.Logger) error {
	p := poller.New(configuration.DefaultInterval, logger.With("component", "poller"))
	if !platform.Setup(ctx, cfg, newClient, p.AddEntities, logger.With("component", "platform")) {
		return ErrNoSensor
	}

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)

	var update poller.Update
	select {
	case <-ctx.Done():
		return ctx.Err()
	case update = <-ch:
	}

	for _, reading := range update.Readings {
		if !reading.Available {
			return fmt.Errorf("%s: %w", reading.Name, ErrUnavailable)
		}
	}
	return e.Encode(update.Readings)
}

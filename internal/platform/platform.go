// Package platform sets up the Suez water meter sensor and registers it with the poller.
package platform

import (
	"context"
	"errors"
	"github.com/clambin/suez-monitor/internal/configuration"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/sensor"
	"log/slog"
)

// AddEntitiesFunc registers entities. If updateBeforeAdd is true, the entities are polled before they are added.
type AddEntitiesFunc func(ctx context.Context, entities []poller.Entity, updateBeforeAdd bool)

// Setup creates the sensor and registers it through addEntities. Failures are logged and result in no
// sensor being registered: Setup reports whether a sensor was added. No attempt is made to retry.
func Setup(ctx context.Context, cfg configuration.SuezConfiguration, newClient sensor.NewClientFunc, addEntities AddEntitiesFunc, logger *slog.Logger) bool {
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid Suez configuration", slog.Any("err", err))
		return false
	}
	s, err := sensor.New(ctx, cfg, newClient)
	if err != nil {
		if errors.Is(err, sensor.ErrLoginFailed) {
			logger.Warn("login to Suez portal failed")
		} else {
			logger.Warn("unable to create Suez client", slog.Any("err", err))
		}
		return false
	}
	logger.Debug("sensor created", slog.String("unique_id", s.Description().UniqueID))
	addEntities(ctx, []poller.Entity{s}, true)
	return true
}

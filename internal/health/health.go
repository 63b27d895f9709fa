// Package health reports whether the water meter could be read on the last poll.
package health

import (
	"context"
	"encoding/json"
	"github.com/clambin/suez-monitor/internal/poller"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Health serves the availability of each sensor in the last update received from the Poller.
// It returns 503 before the first update, asking the Poller for a refresh, and when no sensor is available.
type Health struct {
	poller.Poller
	logger  *slog.Logger
	update  poller.Update
	updated bool
	lock    sync.RWMutex
}

type report struct {
	Timestamp time.Time      `json:"timestamp"`
	Available int            `json:"available"`
	Sensors   []sensorReport `json:"sensors"`
}

type sensorReport struct {
	Name      string   `json:"name"`
	UniqueID  string   `json:"unique_id"`
	Available bool     `json:"available"`
	Value     *float64 `json:"value,omitempty"`
	Unit      string   `json:"unit_of_measurement"`
}

func New(p poller.Poller, logger *slog.Logger) *Health {
	return &Health{
		Poller: p,
		logger: logger,
	}
}

func (h *Health) Run(ctx context.Context) error {
	h.logger.Debug("started")
	defer h.logger.Debug("stopped")

	ch := h.Poller.Subscribe()
	defer h.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			h.lock.Lock()
			h.update = update
			h.updated = true
			h.lock.Unlock()
			if update.Available() < len(update.Readings) {
				h.logger.Debug("sensors unavailable", slog.Int("available", update.Available()), slog.Int("sensors", len(update.Readings)))
			}
		}
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.lock.RLock()
	update, updated := h.update, h.updated
	h.lock.RUnlock()

	if !updated {
		http.Error(w, "no update yet", http.StatusServiceUnavailable)
		h.Poller.Refresh()
		return
	}

	r := makeReport(update)
	w.Header().Set("Content-Type", "application/json")
	if r.Available == 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		h.logger.Warn("failed to encode health report", slog.Any("err", err))
	}
}

func makeReport(update poller.Update) report {
	r := report{
		Timestamp: update.Timestamp,
		Available: update.Available(),
		Sensors:   make([]sensorReport, len(update.Readings)),
	}
	for i, reading := range update.Readings {
		r.Sensors[i] = sensorReport{
			Name:      reading.Name,
			UniqueID:  reading.UniqueID,
			Available: reading.Available,
			Unit:      reading.Unit,
		}
		if reading.Available {
			value := reading.Value
			r.Sensors[i].Value = &value
		}
	}
	return r
}

package collector

import (
	"context"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/prometheus/client_golang/prometheus"
	"log/slog"
	"sync"
)

var (
	suezWaterMeterLiters = prometheus.NewDesc(
		prometheus.BuildFQName("suez", "water_meter", "liters"),
		"Water consumption reported by the Suez portal, in liters",
		[]string{"name", "unique_id"},
		nil,
	)
	suezWaterMeterAvailable = prometheus.NewDesc(
		prometheus.BuildFQName("suez", "water_meter", "available"),
		"1 if the last poll of the Suez portal succeeded",
		[]string{"name", "unique_id"},
		nil,
	)
)

var _ prometheus.Collector = &Collector{}

// Collector exports the last update received from the Poller as Prometheus metrics.
type Collector struct {
	Poller     poller.Poller
	Logger     *slog.Logger
	lock       sync.RWMutex
	lastUpdate *poller.Update
}

func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			c.process(update)
		}
	}
}

func (c *Collector) process(update poller.Update) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.lastUpdate = &update
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- suezWaterMeterLiters
	ch <- suezWaterMeterAvailable
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.lastUpdate == nil {
		return
	}
	for _, reading := range c.lastUpdate.Readings {
		var available float64
		if reading.Available {
			available = 1
			// stale values are not exported
			ch <- prometheus.MustNewConstMetric(suezWaterMeterLiters, prometheus.CounterValue, reading.Value, reading.Name, reading.UniqueID)
		}
		ch <- prometheus.MustNewConstMetric(suezWaterMeterAvailable, prometheus.GaugeValue, available, reading.Name, reading.UniqueID)
	}
}

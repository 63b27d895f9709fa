package collector

import (
	"context"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/poller/mocks"
	"github.com/clambin/suez-monitor/internal/sensor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"strings"
	"testing"
	"time"
)

var description = sensor.Description{Name: "Suez Water Meter", UniqueID: "suez_water_meter", Unit: sensor.UnitLiters}

func TestCollector(t *testing.T) {
	tests := []struct {
		name   string
		update *poller.Update
		want   string
	}{
		{
			name: "no update",
		},
		{
			name:   "available",
			update: &poller.Update{Readings: []sensor.Reading{{Description: description, Value: 120, Available: true}}},
			want: `
# HELP suez_water_meter_available 1 if the last poll of the Suez portal succeeded
# TYPE suez_water_meter_available gauge
suez_water_meter_available{name="Suez Water Meter",unique_id="suez_water_meter"} 1
# HELP suez_water_meter_liters Water consumption reported by the Suez portal, in liters
# TYPE suez_water_meter_liters counter
suez_water_meter_liters{name="Suez Water Meter",unique_id="suez_water_meter"} 120
`,
		},
		{
			name:   "unavailable",
			update: &poller.Update{Readings: []sensor.Reading{{Description: description, Value: 120, Available: false}}},
			want: `
# HELP suez_water_meter_available 1 if the last poll of the Suez portal succeeded
# TYPE suez_water_meter_available gauge
suez_water_meter_available{name="Suez Water Meter",unique_id="suez_water_meter"} 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Collector{Logger: slog.New(slog.DiscardHandler)}
			if tt.update != nil {
				c.process(*tt.update)
			}
			assert.NoError(t, testutil.CollectAndCompare(&c, strings.NewReader(tt.want)))
		})
	}
}

func TestCollector_Run(t *testing.T) {
	ch := make(chan poller.Update)
	p := mocks.NewPoller(t)
	p.EXPECT().Subscribe().Return(ch).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Once()

	c := Collector{Poller: p, Logger: slog.New(slog.DiscardHandler)}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- c.Run(ctx) }()

	ch <- poller.Update{Readings: []sensor.Reading{{Description: description, Value: 120, Available: true}}}

	assert.Eventually(t, func() bool {
		return testutil.CollectAndCount(&c, "suez_water_meter_liters") == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-errCh)
}

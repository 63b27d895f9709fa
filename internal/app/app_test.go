package app

import (
	"bytes"
	"context"
	"github.com/clambin/suez-monitor/internal/configuration"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/sensor"
	"github.com/clambin/suez-monitor/internal/sensor/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func Test_makeTasks(t *testing.T) {
	testCases := []struct {
		name   string
		config string
		length int
	}{
		{
			name: "minimal",
			config: `
suez:
  username: alice
  password: secret
`,
			length: 2,
		},
		{
			name: "servers",
			config: `
exporter:
  addr: :9090
health:
  addr: :8080
`,
			length: 5,
		},
		{
			name: "all",
			config: `
exporter:
  addr: :9090
health:
  addr: :8080
mqtt:
  broker: tcp://localhost:1883
slack:
  token: 1234
  channel: "#water"
`,
			length: 8,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := viper.New()
			v.SetConfigType("yaml")
			require.NoError(t, v.ReadConfig(bytes.NewBufferString(tt.config)))
			cfg, err := configuration.Load(v)
			require.NoError(t, err)

			p := poller.New(cfg.Poller.Interval, slog.New(slog.DiscardHandler))
			tasks := makeTasks(cfg, p, "1.0", prometheus.NewPedanticRegistry(), slog.New(slog.DiscardHandler))
			assert.Len(t, tasks, tt.length)
		})
	}
}

func Test_makeTasks_HealthMetrics(t *testing.T) {
	cfg := configuration.Configuration{Health: configuration.HealthConfiguration{Addr: ":8080"}}
	p := poller.New(time.Hour, slog.New(slog.DiscardHandler))
	registry := prometheus.NewPedanticRegistry()

	var server *httpServer
	for _, task := range makeTasks(cfg, p, "1.0", registry, slog.New(slog.DiscardHandler)) {
		if s, ok := task.(*httpServer); ok {
			server = s
		}
	}
	require.NotNil(t, server)

	// no update yet
	resp := httptest.NewRecorder()
	server.handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	n, err := testutil.GatherAndCount(registry, "suez_monitor_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func newClient(t *testing.T) sensor.NewClientFunc {
	return func(sensor.Options) (sensor.Client, error) {
		c := mocks.NewClient(t)
		c.EXPECT().CheckCredentials(mock.Anything).Return(true, nil).Once()
		c.EXPECT().Update(mock.Anything).Return(nil)
		c.EXPECT().State().Return(120)
		c.EXPECT().Attributes().Return(map[string]any{"attribution": "Suez"})
		return c, nil
	}
}

func TestNew(t *testing.T) {
	cfg := configuration.Configuration{
		Suez:   configuration.SuezConfiguration{Username: "alice", Password: "secret"},
		Poller: configuration.PollerConfiguration{Interval: time.Hour},
	}
	a, err := New(context.Background(), cfg, "1.0", newClient(t), prometheus.NewPedanticRegistry(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, 1, a.Poller.Entities())

	// the initial poll is available to subscribers
	ch := a.Poller.Subscribe()
	update := <-ch
	a.Poller.Unsubscribe(ch)
	reading, ok := update.GetReading("suez_water_meter")
	require.True(t, ok)
	assert.Equal(t, 120.0, reading.Value)
	assert.True(t, reading.Available)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- a.Run(ctx) }()
	cancel()
	assert.NoError(t, <-errCh)
}

func TestNew_NoSensor(t *testing.T) {
	cfg := configuration.Configuration{Poller: configuration.PollerConfiguration{Interval: time.Hour}}
	newClient := func(sensor.Options) (sensor.Client, error) {
		t.Fatal("client should not be created without credentials")
		return nil, nil
	}
	_, err := New(context.Background(), cfg, "1.0", newClient, nil, slog.New(slog.DiscardHandler))
	assert.ErrorIs(t, err, ErrNoSensor)
}

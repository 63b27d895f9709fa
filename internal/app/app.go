// Package app wires the sensor, the poller and the components consuming its updates.
package app

import (
	"context"
	"errors"
	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/middleware"
	"github.com/clambin/go-common/slackbot"
	"github.com/clambin/suez-monitor/internal/collector"
	"github.com/clambin/suez-monitor/internal/configuration"
	"github.com/clambin/suez-monitor/internal/health"
	"github.com/clambin/suez-monitor/internal/homeassistant"
	"github.com/clambin/suez-monitor/internal/notifier"
	"github.com/clambin/suez-monitor/internal/platform"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/sensor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"net/http"
)

const topicPrefix = "suez-monitor"

var ErrNoSensor = errors.New("no sensor could be set up")

// A Task runs until its context is cancelled.
type Task interface {
	Run(ctx context.Context) error
}

type App struct {
	Poller *poller.SensorPoller
	tasks  []Task
	logger *slog.Logger
}

// New sets up the sensor and creates all tasks. The sensor is polled once before New returns.
func New(ctx context.Context, cfg configuration.Configuration, version string, newClient sensor.NewClientFunc, registry prometheus.Registerer, logger *slog.Logger) (*App, error) {
	p := poller.New(cfg.Poller.Interval, logger.With("component", "poller"))
	if !platform.Setup(ctx, cfg.Suez, newClient, p.AddEntities, logger.With("component", "platform")) {
		return nil, ErrNoSensor
	}
	return &App{
		Poller: p,
		tasks:  makeTasks(cfg, p, version, registry, logger),
		logger: logger,
	}, nil
}

// Run starts all tasks. If one task fails, the others are stopped.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("starting tasks", slog.Int("tasks", len(a.tasks)))
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range a.tasks {
		g.Go(func() error { return task.Run(ctx) })
	}
	return g.Wait()
}

func makeTasks(cfg configuration.Configuration, p *poller.SensorPoller, version string, registry prometheus.Registerer, l *slog.Logger) []Task {
	tasks := []Task{p}

	// Collector
	coll := &collector.Collector{Poller: p, Logger: l.With("component", "collector")}
	if registry != nil {
		registry.MustRegister(coll)
	}
	tasks = append(tasks, coll)

	// Prometheus Server
	if cfg.Exporter.Addr != "" {
		m := http.NewServeMux()
		m.Handle("/metrics", promhttp.Handler())
		tasks = append(tasks, &httpServer{addr: cfg.Exporter.Addr, handler: m, logger: l.With("component", "exporter")})
	}

	// Health Endpoint
	if cfg.Health.Addr != "" {
		hl := l.With("component", "health")
		h := health.New(p, hl)
		m := http.NewServeMux()
		m.Handle("/health", h)
		handler := middleware.RequestLogger(hl, slog.LevelDebug, middleware.DefaultRequestLogFormatter)(m)
		if registry != nil {
			requestMetrics := metrics.NewRequestMetrics(metrics.Options{Namespace: "suez", Subsystem: "monitor"})
			registry.MustRegister(requestMetrics)
			handler = middleware.WithRequestMetrics(requestMetrics)(handler)
		}
		tasks = append(tasks, h, &httpServer{addr: cfg.Health.Addr, handler: handler, logger: hl})
	}

	// Home Assistant
	if cfg.MQTT.Broker != "" {
		tasks = append(tasks, &homeassistant.HomeAssistant{
			Poller:          p,
			Client:          homeassistant.NewClient(cfg.MQTT, l.With("component", "mqtt")),
			DiscoveryPrefix: cfg.MQTT.DiscoveryPrefix,
			TopicPrefix:     topicPrefix,
			Logger:          l.With("component", "homeassistant"),
		})
	}

	// Slack
	if cfg.Slack.Token != "" {
		b := slackbot.New(
			cfg.Slack.Token,
			slackbot.WithName("suez-monitor "+version),
			slackbot.WithLogger(l.With(slog.String("component", "slackbot"))),
		)
		tasks = append(tasks, b, &notifier.Notifier{
			Poller:  p,
			Sender:  b,
			Channel: cfg.Slack.Channel,
			Logger:  l.With("component", "notifier"),
		})
	}

	return tasks
}

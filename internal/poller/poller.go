package poller

import (
	"context"
	"github.com/clambin/suez-monitor/internal/sensor"
	"github.com/clambin/suez-monitor/pkg/pubsub"
	"log/slog"
	"sync"
	"time"
)

// Poller publishes an Update each time its entities have been polled.
//
//go:generate mockery --name Poller
type Poller interface {
	Subscribe() <-chan Update
	Unsubscribe(ch <-chan Update)
	Refresh()
}

// An Entity is polled by the SensorPoller. Update is never called concurrently for the same entity.
type Entity interface {
	Update(ctx context.Context) error
	Reading() sensor.Reading
}

var _ Poller = &SensorPoller{}

// SensorPoller schedules the updates of all registered entities at a fixed interval.
type SensorPoller struct {
	*pubsub.Publisher[Update]
	interval time.Duration
	logger   *slog.Logger
	refresh  chan struct{}
	entities []Entity
	lock     sync.Mutex
}

func New(interval time.Duration, logger *slog.Logger) *SensorPoller {
	return &SensorPoller{
		Publisher: pubsub.New[Update](logger.With(slog.String("component", "publisher"))),
		interval:  interval,
		logger:    logger,
		refresh:   make(chan struct{}, 1),
	}
}

// AddEntities registers entities with the poller. If updateBeforeAdd is true, the entities are polled
// before they are added and the result is published.
func (p *SensorPoller) AddEntities(ctx context.Context, entities []Entity, updateBeforeAdd bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if updateBeforeAdd {
		for _, entity := range entities {
			p.updateEntity(ctx, entity)
		}
	}
	p.entities = append(p.entities, entities...)
	p.logger.Debug("entities added", slog.Int("added", len(entities)), slog.Int("total", len(p.entities)))
	if updateBeforeAdd {
		p.Publish(p.makeUpdate())
	}
}

// Entities returns the number of registered entities.
func (p *SensorPoller) Entities() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.entities)
}

func (p *SensorPoller) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-p.refresh:
		}
		p.poll(ctx)
	}
}

// Refresh requests an immediate poll. It does not block: if a refresh is already pending, the request is dropped.
func (p *SensorPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *SensorPoller) poll(ctx context.Context) {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.entities) == 0 {
		return
	}
	start := time.Now()
	for _, entity := range p.entities {
		p.updateEntity(ctx, entity)
	}
	p.Publish(p.makeUpdate())
	p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)))
}

func (p *SensorPoller) updateEntity(ctx context.Context, entity Entity) {
	if err := entity.Update(ctx); err != nil {
		p.logger.Warn("unable to update data", slog.String("sensor", entity.Reading().Name), slog.Any("err", err))
		return
	}
	p.logger.Debug("sensor updated", slog.Any("reading", entity.Reading()))
}

func (p *SensorPoller) makeUpdate() Update {
	update := Update{
		Timestamp: time.Now(),
		Readings:  make([]sensor.Reading, len(p.entities)),
	}
	for i, entity := range p.entities {
		update.Readings[i] = entity.Reading()
	}
	return update
}

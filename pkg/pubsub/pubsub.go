// Package pubsub provides a basic Publish/Subscribe implementation.
package pubsub

import (
	"log/slog"
	"sync"
)

// Publisher sends the information provided by Publish to all subscribed clients.
// New subscribers immediately receive the last published information, if any.
type Publisher[T any] struct {
	clients map[chan T]struct{}
	last    *T
	logger  *slog.Logger
	lock    sync.RWMutex
}

// New returns a new Publisher
func New[T any](logger *slog.Logger) *Publisher[T] {
	return &Publisher[T]{
		clients: make(map[chan T]struct{}),
		logger:  logger,
	}
}

// Subscribe registers the caller and returns the channel on which it will receive published information.
// Slow subscribers only receive the latest information.
func (p *Publisher[T]) Subscribe() <-chan T {
	p.lock.Lock()
	defer p.lock.Unlock()
	ch := make(chan T, 1)
	if p.last != nil {
		ch <- *p.last
	}
	p.clients[ch] = struct{}{}
	p.logger.Debug("subscriber added", slog.Int("subscribers", len(p.clients)))
	return ch
}

// Unsubscribe removes the subscribed channel.
func (p *Publisher[T]) Unsubscribe(ch <-chan T) {
	p.lock.Lock()
	defer p.lock.Unlock()
	for client := range p.clients {
		if (<-chan T)(client) == ch {
			delete(p.clients, client)
			break
		}
	}
	p.logger.Debug("subscriber removed", slog.Int("subscribers", len(p.clients)))
}

// Publish sends info to all subscribers. It does not block: if a subscriber hasn't read the previous
// information yet, that information is replaced.
func (p *Publisher[T]) Publish(info T) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.last = &info
	for ch := range p.clients {
		select {
		case ch <- info:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- info
		}
	}
}

// Subscribers returns the current number of subscribers
func (p *Publisher[T]) Subscribers() int {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return len(p.clients)
}

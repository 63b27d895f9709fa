// Package notifier sends a Slack message when a sensor becomes unavailable, or available again.
package notifier

import (
	"context"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/sensor"
	"github.com/slack-go/slack"
	"log/slog"
	"strconv"
)

// SlackSender sends attachments to a Slack channel.
//
//go:generate mockery --name SlackSender
type SlackSender interface {
	Send(channel string, attachments []slack.Attachment) error
}

type Notifier struct {
	Poller    poller.Poller
	Sender    SlackSender
	Channel   string
	Logger    *slog.Logger
	available map[string]bool
}

func (n *Notifier) Run(ctx context.Context) error {
	n.Logger.Debug("started")
	defer n.Logger.Debug("stopped")

	ch := n.Poller.Subscribe()
	defer n.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			n.process(update)
		}
	}
}

func (n *Notifier) process(update poller.Update) {
	if n.available == nil {
		n.available = make(map[string]bool)
	}
	for _, reading := range update.Readings {
		previous, seen := n.available[reading.UniqueID]
		n.available[reading.UniqueID] = reading.Available
		if (seen && previous == reading.Available) || (!seen && reading.Available) {
			continue
		}
		if err := n.Sender.Send(n.Channel, []slack.Attachment{makeAttachment(reading)}); err != nil {
			n.Logger.Warn("failed to send slack message", slog.Any("err", err))
		}
	}
}

func makeAttachment(reading sensor.Reading) slack.Attachment {
	if !reading.Available {
		return slack.Attachment{
			Color: "danger",
			Title: reading.Name + " is unavailable",
			Text:  "unable to update data from the Suez portal",
		}
	}
	return slack.Attachment{
		Color: "good",
		Title: reading.Name + " is available",
		Text:  "current reading: " + strconv.FormatFloat(reading.Value, 'f', -1, 64) + " " + reading.Unit,
	}
}

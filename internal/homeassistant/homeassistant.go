// Package homeassistant publishes sensor readings to Home Assistant, using MQTT discovery.
package homeassistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/clambin/go-common/set"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/sensor"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"log/slog"
	"strconv"
	"time"
)

const (
	payloadOnline  = "online"
	payloadOffline = "offline"
	publishTimeout = 10 * time.Second
	manufacturer   = "Suez"
)

var ErrPublishTimeout = errors.New("timeout publishing message")

// MQTTClient is the subset of mqtt.Client used by HomeAssistant.
//
//go:generate mockery --name MQTTClient
type MQTTClient interface {
	Connect() mqtt.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// HomeAssistant announces each sensor through MQTT discovery and publishes its state, attributes and availability
// every time the Poller publishes an update.
type HomeAssistant struct {
	Poller          poller.Poller
	Client          MQTTClient
	DiscoveryPrefix string
	TopicPrefix     string
	Logger          *slog.Logger
	announced       set.Set[string]
}

func (h *HomeAssistant) Run(ctx context.Context) error {
	h.Logger.Debug("started")
	defer h.Logger.Debug("stopped")

	if err := h.connect(ctx); err != nil {
		return err
	}
	defer h.Client.Disconnect(250)

	ch := h.Poller.Subscribe()
	defer h.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			h.process(update)
		}
	}
}

func (h *HomeAssistant) connect(ctx context.Context) error {
	token := h.Client.Connect()
	select {
	case <-ctx.Done():
		return nil
	case <-token.Done():
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	h.Logger.Debug("connected to broker")
	return nil
}

func (h *HomeAssistant) process(update poller.Update) {
	if h.announced == nil {
		h.announced = set.New[string]()
	}
	for _, reading := range update.Readings {
		if err := h.publishReading(reading); err != nil {
			h.Logger.Warn("failed to publish reading", slog.String("sensor", reading.UniqueID), slog.Any("err", err))
		}
	}
}

func (h *HomeAssistant) publishReading(reading sensor.Reading) error {
	topics := h.topics(reading.UniqueID)
	if !h.announced.Contains(reading.UniqueID) {
		if err := h.publishJSON(topics.config, makeDiscoveryConfig(reading.Description, topics)); err != nil {
			return fmt.Errorf("discovery: %w", err)
		}
		h.announced.Add(reading.UniqueID)
		h.Logger.Debug("sensor announced", slog.String("topic", topics.config))
	}

	if reading.Available {
		if err := h.publish(topics.state, strconv.FormatFloat(reading.Value, 'f', -1, 64)); err != nil {
			return fmt.Errorf("state: %w", err)
		}
		if err := h.publishJSON(topics.attributes, reading.Attributes); err != nil {
			return fmt.Errorf("attributes: %w", err)
		}
	}

	availability := payloadOffline
	if reading.Available {
		availability = payloadOnline
	}
	if err := h.publish(topics.availability, availability); err != nil {
		return fmt.Errorf("availability: %w", err)
	}
	return nil
}

func (h *HomeAssistant) publishJSON(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return h.publish(topic, string(body))
}

func (h *HomeAssistant) publish(topic string, payload string) error {
	token := h.Client.Publish(topic, 1, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return ErrPublishTimeout
	}
	return token.Error()
}

type topics struct {
	config       string
	state        string
	attributes   string
	availability string
}

func (h *HomeAssistant) topics(uniqueID string) topics {
	base := h.TopicPrefix + "/" + uniqueID
	return topics{
		config:       h.DiscoveryPrefix + "/sensor/" + uniqueID + "/config",
		state:        base + "/state",
		attributes:   base + "/attributes",
		availability: base + "/availability",
	}
}

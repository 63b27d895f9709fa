package homeassistant

import (
	"context"
	"errors"
	"github.com/clambin/suez-monitor/internal/homeassistant/mocks"
	"github.com/clambin/suez-monitor/internal/poller"
	pollerMocks "github.com/clambin/suez-monitor/internal/poller/mocks"
	"github.com/clambin/suez-monitor/internal/sensor"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"sync"
	"testing"
	"time"
)

var _ mqtt.Token = token{}

type token struct{ err error }

func (t token) Wait() bool                     { return true }
func (t token) WaitTimeout(time.Duration) bool { return true }
func (t token) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t token) Error() error { return t.err }

type recorder struct {
	messages map[string]string
	lock     sync.Mutex
}

func (r *recorder) publish(topic string, _ byte, retained bool, payload any) mqtt.Token {
	r.lock.Lock()
	defer r.lock.Unlock()
	if !retained {
		return token{err: errors.New("not retained")}
	}
	if r.messages == nil {
		r.messages = make(map[string]string)
	}
	r.messages[topic] = payload.(string)
	return token{}
}

func (r *recorder) get() map[string]string {
	r.lock.Lock()
	defer r.lock.Unlock()
	messages := r.messages
	r.messages = nil
	return messages
}

var reading = sensor.Reading{
	Description: sensor.Description{
		Name:        sensor.Name,
		UniqueID:    "suez_water_meter",
		Icon:        sensor.Icon,
		Unit:        sensor.UnitLiters,
		DeviceClass: sensor.DeviceClassWater,
		StateClass:  sensor.StateClassTotalIncreasing,
	},
	Value:       120,
	Attributes:  map[string]any{"attribution": "Suez"},
	Attribution: "Suez",
	Available:   true,
}

func TestHomeAssistant_process(t *testing.T) {
	var r recorder
	c := mocks.NewMQTTClient(t)
	c.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(r.publish)

	h := HomeAssistant{
		Client:          c,
		DiscoveryPrefix: "homeassistant",
		TopicPrefix:     "suez-monitor",
		Logger:          slog.New(slog.DiscardHandler),
	}

	h.process(poller.Update{Readings: []sensor.Reading{reading}})
	assert.Equal(t, map[string]string{
		"homeassistant/sensor/suez_water_meter/config": `{"name":"Suez Water Meter","unique_id":"suez_water_meter","icon":"mdi:water-pump","device_class":"water","state_class":"total_increasing","unit_of_measurement":"L","state_topic":"suez-monitor/suez_water_meter/state","json_attributes_topic":"suez-monitor/suez_water_meter/attributes","availability_topic":"suez-monitor/suez_water_meter/availability","device":{"identifiers":["suez_water_meter"],"name":"Suez Water Meter","manufacturer":"Suez"}}`,
		"suez-monitor/suez_water_meter/state":          "120",
		"suez-monitor/suez_water_meter/attributes":     `{"attribution":"Suez"}`,
		"suez-monitor/suez_water_meter/availability":   "online",
	}, r.get())

	// failed poll: only availability is published. sensor isn't announced again.
	unavailable := reading
	unavailable.Available = false
	h.process(poller.Update{Readings: []sensor.Reading{unavailable}})
	assert.Equal(t, map[string]string{
		"suez-monitor/suez_water_meter/availability": "offline",
	}, r.get())

	h.process(poller.Update{Readings: []sensor.Reading{reading}})
	assert.Equal(t, map[string]string{
		"suez-monitor/suez_water_meter/state":        "120",
		"suez-monitor/suez_water_meter/attributes":   `{"attribution":"Suez"}`,
		"suez-monitor/suez_water_meter/availability": "online",
	}, r.get())
}

func TestHomeAssistant_process_Failure(t *testing.T) {
	c := mocks.NewMQTTClient(t)
	c.EXPECT().Publish("homeassistant/sensor/suez_water_meter/config", byte(1), true, mock.Anything).Return(token{err: errors.New("not connected")}).Twice()

	h := HomeAssistant{Client: c, DiscoveryPrefix: "homeassistant", TopicPrefix: "suez-monitor", Logger: slog.New(slog.DiscardHandler)}

	// discovery failed: the sensor is announced again on the next update
	h.process(poller.Update{Readings: []sensor.Reading{reading}})
	h.process(poller.Update{Readings: []sensor.Reading{reading}})
}

func TestHomeAssistant_Run(t *testing.T) {
	var r recorder
	c := mocks.NewMQTTClient(t)
	c.EXPECT().Connect().Return(token{}).Once()
	c.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything, mock.Anything).RunAndReturn(r.publish)
	c.EXPECT().Disconnect(uint(250)).Once()

	ch := make(chan poller.Update)
	p := pollerMocks.NewPoller(t)
	p.EXPECT().Subscribe().Return(ch).Once()
	p.EXPECT().Unsubscribe((<-chan poller.Update)(ch)).Once()

	h := HomeAssistant{Poller: p, Client: c, DiscoveryPrefix: "homeassistant", TopicPrefix: "suez-monitor", Logger: slog.New(slog.DiscardHandler)}
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- h.Run(ctx) }()

	ch <- poller.Update{Readings: []sensor.Reading{reading}}
	// unbuffered: the first update has been processed once the second one is received
	ch <- poller.Update{}
	assert.Len(t, r.get(), 4)

	cancel()
	assert.NoError(t, <-errCh)
}

func TestHomeAssistant_Run_ConnectFailure(t *testing.T) {
	c := mocks.NewMQTTClient(t)
	c.EXPECT().Connect().Return(token{err: errors.New("connection refused")}).Once()

	h := HomeAssistant{Client: c, Logger: slog.New(slog.DiscardHandler)}
	err := h.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

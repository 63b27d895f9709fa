package poller_test

import (
	"context"
	"errors"
	"github.com/clambin/suez-monitor/internal/configuration"
	"github.com/clambin/suez-monitor/internal/poller"
	"github.com/clambin/suez-monitor/internal/sensor"
	"github.com/clambin/suez-monitor/internal/sensor/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

func newSensor(t *testing.T) (*sensor.Sensor, *mocks.Client) {
	t.Helper()
	c := mocks.NewClient(t)
	c.EXPECT().CheckCredentials(mock.Anything).Return(true, nil).Once()
	s, err := sensor.New(
		context.Background(),
		configuration.SuezConfiguration{Username: "alice", Password: "secret"},
		func(sensor.Options) (sensor.Client, error) { return c, nil },
	)
	require.NoError(t, err)
	return s, c
}

func TestSensorPoller_AddEntities(t *testing.T) {
	s, c := newSensor(t)
	c.EXPECT().Update(mock.Anything).Return(nil).Once()
	c.EXPECT().State().Return(120.0).Once()
	c.EXPECT().Attributes().Return(map[string]any{"attribution": "Suez"}).Once()

	p := poller.New(time.Hour, slog.New(slog.DiscardHandler))
	p.AddEntities(context.Background(), []poller.Entity{s}, true)
	assert.Equal(t, 1, p.Entities())

	ch := p.Subscribe()
	defer p.Unsubscribe(ch)
	update := <-ch
	require.Len(t, update.Readings, 1)
	reading, ok := update.GetReading("suez_water_meter")
	require.True(t, ok)
	assert.True(t, reading.Available)
	assert.Equal(t, 120.0, reading.Value)
	assert.Equal(t, sensor.UnitLiters, reading.Unit)
	assert.Equal(t, "Suez", reading.Attribution)
	assert.Equal(t, 1, update.Available())
}

func TestSensorPoller_AddEntities_NoUpdate(t *testing.T) {
	s, _ := newSensor(t)
	p := poller.New(time.Hour, slog.New(slog.DiscardHandler))
	p.AddEntities(context.Background(), []poller.Entity{s}, false)
	assert.Equal(t, 1, p.Entities())
}

func TestSensorPoller_Run(t *testing.T) {
	s, c := newSensor(t)
	c.EXPECT().Update(mock.Anything).Return(nil).Once()
	c.EXPECT().State().Return(120.0).Once()
	c.EXPECT().Attributes().Return(map[string]any{"attribution": "Suez"}).Once()

	p := poller.New(time.Hour, slog.New(slog.DiscardHandler))
	p.AddEntities(context.Background(), []poller.Entity{s}, true)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error)
	go func() { errCh <- p.Run(ctx) }()

	ch := p.Subscribe()
	update := <-ch
	require.Len(t, update.Readings, 1)
	assert.True(t, update.Readings[0].Available)

	// second poll fails: the sensor is unavailable, but keeps its last value
	c.EXPECT().Update(mock.Anything).Return(errors.New("portal down")).Once()
	p.Refresh()
	update = <-ch
	require.Len(t, update.Readings, 1)
	assert.False(t, update.Readings[0].Available)
	assert.Equal(t, 120.0, update.Readings[0].Value)
	assert.Equal(t, map[string]any{"attribution": "Suez"}, update.Readings[0].Attributes)
	assert.Zero(t, update.Available())

	p.Unsubscribe(ch)
	cancel()
	assert.NoError(t, <-errCh)
}

func TestSensorPoller_Run_NoEntities(t *testing.T) {
	p := poller.New(10*time.Millisecond, slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.NoError(t, p.Run(ctx))
	assert.Zero(t, p.Entities())
}

func TestUpdate_LogValue(t *testing.T) {
	u := poller.Update{Readings: []sensor.Reading{{
		Description: sensor.Description{Name: "meter", UniqueID: "meter_1", Unit: "L"},
		Value:       120,
		Available:   true,
	}}}
	assert.Equal(t, "[meter_1=[name=meter available=true value=120 L]]", u.LogValue().String())
}

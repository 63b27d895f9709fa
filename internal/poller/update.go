package poller

import (
	"github.com/clambin/suez-monitor/internal/sensor"
	"log/slog"
	"time"
)

// Update holds the readings of all entities after a poll.
type Update struct {
	Timestamp time.Time        `json:"timestamp"`
	Readings  []sensor.Reading `json:"readings"`
}

// GetReading returns the reading of the sensor with the specified unique ID.
func (u Update) GetReading(uniqueID string) (sensor.Reading, bool) {
	for _, reading := range u.Readings {
		if reading.UniqueID == uniqueID {
			return reading, true
		}
	}
	return sensor.Reading{}, false
}

// Available returns the number of available sensors.
func (u Update) Available() int {
	var count int
	for _, reading := range u.Readings {
		if reading.Available {
			count++
		}
	}
	return count
}

func (u Update) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(u.Readings))
	for _, reading := range u.Readings {
		attrs = append(attrs, slog.Attr{Key: reading.UniqueID, Value: reading.LogValue()})
	}
	return slog.GroupValue(attrs...)
}

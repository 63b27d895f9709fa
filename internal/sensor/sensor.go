package sensor

import (
	"context"
	"errors"
	"fmt"
	"github.com/clambin/suez-monitor/internal/configuration"
)

const (
	Name                      = "Suez Water Meter"
	Icon                      = "mdi:water-pump"
	UnitLiters                = "L"
	DeviceClassWater          = "water"
	StateClassTotalIncreasing = "total_increasing"

	attributionKey = "attribution"
)

var (
	// ErrLoginFailed is returned by New when the portal rejects the configured credentials.
	ErrLoginFailed = errors.New("login to Suez portal failed")
	// ErrNoAttribution is returned by Update when the portal's attributes carry no attribution.
	ErrNoAttribution = errors.New("no attribution in portal attributes")
)

// Options are passed to the portal client's constructor.
type Options struct {
	Username      string
	Password      string
	MeterID       string
	UseLitre      bool
	Compatibility bool
}

// Client is the Suez portal client. Update refreshes State and Attributes.
//
//go:generate mockery --name Client
type Client interface {
	CheckCredentials(ctx context.Context) (bool, error)
	Update(ctx context.Context) error
	State() float64
	Attributes() map[string]any
}

// NewClientFunc creates a portal Client.
type NewClientFunc func(Options) (Client, error)

// Sensor exposes the portal's water meter reading. Update is not reentrant: callers serialize it.
//
// Note that the portal reports with a minimum delay of one day between the returned value and the actual reading.
type Sensor struct {
	client      Client
	description Description
	value       float64
	attributes  map[string]any
	attribution string
	available   bool
}

// New creates the portal client and verifies its credentials.
func New(ctx context.Context, cfg configuration.SuezConfiguration, newClient NewClientFunc) (*Sensor, error) {
	c, err := newClient(Options{
		Username:      cfg.Username,
		Password:      cfg.Password,
		MeterID:       cfg.CounterID,
		UseLitre:      true,
		Compatibility: false,
	})
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	ok, err := c.CheckCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("check credentials: %w", err)
	}
	if !ok {
		return nil, ErrLoginFailed
	}
	return &Sensor{
		client:      c,
		description: describe(cfg.CounterID),
		attributes:  make(map[string]any),
	}, nil
}

func describe(counterID string) Description {
	uniqueID := "suez_water_meter"
	if counterID != "" {
		uniqueID += "_" + counterID
	}
	return Description{
		Name:        Name,
		UniqueID:    uniqueID,
		Icon:        Icon,
		Unit:        UnitLiters,
		DeviceClass: DeviceClassWater,
		StateClass:  StateClassTotalIncreasing,
	}
}

// Update collects the latest data from the portal. On failure, the sensor is marked unavailable
// and the previous value and attributes are kept. Attributes without an attribution are a failure.
func (s *Sensor) Update(ctx context.Context) error {
	if err := s.client.Update(ctx); err != nil {
		s.available = false
		return err
	}

	attributes := s.client.Attributes()
	attribution, ok := attributes[attributionKey].(string)
	if !ok {
		s.available = false
		return ErrNoAttribution
	}
	s.value = s.client.State()
	s.attributes = copyAttributes(attributes)
	s.attribution = attribution
	s.available = true
	return nil
}

// Description returns the sensor's static metadata.
func (s *Sensor) Description() Description {
	return s.description
}

// Reading returns a snapshot of the sensor's state. The returned attributes are a copy.
func (s *Sensor) Reading() Reading {
	return Reading{
		Description: s.description,
		Value:       s.value,
		Attributes:  copyAttributes(s.attributes),
		Attribution: s.attribution,
		Available:   s.available,
	}
}

func copyAttributes(attributes map[string]any) map[string]any {
	if attributes == nil {
		return nil
	}
	return copyValue(attributes).(map[string]any)
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		c := make(map[string]any, len(v))
		for key, val := range v {
			c[key] = copyValue(val)
		}
		return c
	case map[any]any:
		// yaml decodes mappings with non-string keys as map[any]any. Keys are stringified.
		c := make(map[string]any, len(v))
		for key, val := range v {
			c[fmt.Sprint(key)] = copyValue(val)
		}
		return c
	case []any:
		c := make([]any, len(v))
		for i, val := range v {
			c[i] = copyValue(val)
		}
		return c
	case []float64:
		return append([]float64(nil), v...)
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}

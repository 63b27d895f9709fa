package configuration

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"time"
)

// DefaultInterval matches the portal's refresh cadence: data is updated daily, during the night.
const DefaultInterval = 12 * time.Hour

// Configuration for suez-monitor
type Configuration struct {
	Debug    bool                  `mapstructure:"debug"`
	Suez     SuezConfiguration     `mapstructure:"suez"`
	Portal   PortalConfiguration   `mapstructure:"portal"`
	Poller   PollerConfiguration   `mapstructure:"poller"`
	Exporter ExporterConfiguration `mapstructure:"exporter"`
	Health   HealthConfiguration   `mapstructure:"health"`
	MQTT     MQTTConfiguration     `mapstructure:"mqtt"`
	Slack    SlackConfiguration    `mapstructure:"slack"`
}

// SuezConfiguration holds the portal account. An empty CounterID lets the portal client auto-detect the meter.
type SuezConfiguration struct {
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	CounterID string `mapstructure:"counter_id"`
}

// PortalConfiguration specifies the external portal client executable.
type PortalConfiguration struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

type PollerConfiguration struct {
	Interval time.Duration `mapstructure:"interval"`
}

type ExporterConfiguration struct {
	Addr string `mapstructure:"addr"`
}

type HealthConfiguration struct {
	Addr string `mapstructure:"addr"`
}

type MQTTConfiguration struct {
	Broker          string `mapstructure:"broker"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	ClientID        string `mapstructure:"clientID"`
	DiscoveryPrefix string `mapstructure:"discoveryPrefix"`
}

type SlackConfiguration struct {
	Token   string `mapstructure:"token"`
	Channel string `mapstructure:"channel"`
}

var (
	ErrMissingUsername = errors.New("suez.username is required")
	ErrMissingPassword = errors.New("suez.password is required")
	ErrInvalidInterval = errors.New("poller.interval must be positive")
)

// Load reads the Configuration from v.
func Load(v *viper.Viper) (Configuration, error) {
	cfg := Configuration{
		Portal: PortalConfiguration{Command: "toutsurmoneau"},
		Poller: PollerConfiguration{Interval: DefaultInterval},
		MQTT:   MQTTConfiguration{ClientID: "suez-monitor", DiscoveryPrefix: "homeassistant"},
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to run suez-monitor.
func (c Configuration) Validate() error {
	errs := []error{c.Suez.Validate()}
	if c.Poller.Interval <= 0 {
		errs = append(errs, ErrInvalidInterval)
	}
	return errors.Join(errs...)
}

// Validate checks that the account can be used to log in to the portal.
func (c SuezConfiguration) Validate() error {
	var errs []error
	if c.Username == "" {
		errs = append(errs, ErrMissingUsername)
	}
	if c.Password == "" {
		errs = append(errs, ErrMissingPassword)
	}
	return errors.Join(errs...)
}

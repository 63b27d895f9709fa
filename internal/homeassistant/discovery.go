package homeassistant

import "github.com/clambin/suez-monitor/internal/sensor"

type Device struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer,omitempty"`
}

// DiscoveryConfig is the payload announcing a sensor to Home Assistant.
type DiscoveryConfig struct {
	Name                string `json:"name"`
	UniqueID            string `json:"unique_id"`
	Icon                string `json:"icon,omitempty"`
	DeviceClass         string `json:"device_class,omitempty"`
	StateClass          string `json:"state_class,omitempty"`
	UnitOfMeasurement   string `json:"unit_of_measurement,omitempty"`
	StateTopic          string `json:"state_topic"`
	JSONAttributesTopic string `json:"json_attributes_topic"`
	AvailabilityTopic   string `json:"availability_topic"`
	Device              Device `json:"device"`
}

func makeDiscoveryConfig(description sensor.Description, t topics) DiscoveryConfig {
	return DiscoveryConfig{
		Name:                description.Name,
		UniqueID:            description.UniqueID,
		Icon:                description.Icon,
		DeviceClass:         description.DeviceClass,
		StateClass:          description.StateClass,
		UnitOfMeasurement:   description.Unit,
		StateTopic:          t.state,
		JSONAttributesTopic: t.attributes,
		AvailabilityTopic:   t.availability,
		Device: Device{
			Identifiers:  []string{description.UniqueID},
			Name:         description.Name,
			Manufacturer: manufacturer,
		},
	}
}

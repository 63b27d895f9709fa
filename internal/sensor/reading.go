package sensor

import (
	"log/slog"
	"strconv"
)

// Description holds a sensor's static metadata, as shown by the presentation layer.
type Description struct {
	Name        string `json:"name" yaml:"name"`
	UniqueID    string `json:"unique_id" yaml:"unique_id"`
	Icon        string `json:"icon" yaml:"icon"`
	Unit        string `json:"unit_of_measurement" yaml:"unit_of_measurement"`
	DeviceClass string `json:"device_class" yaml:"device_class"`
	StateClass  string `json:"state_class" yaml:"state_class"`
}

// Reading is a snapshot of a sensor. Value and Attributes are only meaningful if Available is true.
type Reading struct {
	Description `yaml:",inline"`
	Value       float64        `json:"value" yaml:"value"`
	Attributes  map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Attribution string         `json:"attribution,omitempty" yaml:"attribution,omitempty"`
	Available   bool           `json:"available" yaml:"available"`
}

func (r Reading) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", r.Name),
		slog.Bool("available", r.Available),
	}
	if r.Available {
		attrs = append(attrs, slog.String("value", strconv.FormatFloat(r.Value, 'f', -1, 64)+" "+r.Unit))
	}
	return slog.GroupValue(attrs...)
}

package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario: an ordered event feed plus the
// fee configuration it runs under.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// FeePercent overrides the platform fee for this run, including an
	// explicit zero. Absent means the engine default.
	FeePercent *int `yaml:"fee_percent,omitempty"`

	// Events are wire-shaped event objects in feed delivery order. Each is
	// serialized back to JSON and pushed through the real decode boundary,
	// so scenarios validate decoding too.
	Events []map[string]any `yaml:"events"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(s.Events) == 0 {
		return nil, fmt.Errorf("scenario %s: events must not be empty", path)
	}
	return &s, nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var errInvalidScenario = errors.New("invalid scenario")

// Scenario is a list of rotations read from a YAML file.
type Scenario struct {
	Precision string     `yaml:"precision"`
	Degrees   *bool      `yaml:"degrees"`
	Rotations []Rotation `yaml:"rotations"`
}

// Rotation is built either from Axis and Angle or from From and To.
type Rotation struct {
	Name  string      `yaml:"name"`
	Axis  []float64   `yaml:"axis,omitempty"`
	Angle float64     `yaml:"angle,omitempty"`
	From  []float64   `yaml:"from,omitempty"`
	To    []float64   `yaml:"to,omitempty"`
	Apply [][]float64 `yaml:"apply,omitempty"`
}

// LoadScenario decodes and validates a scenario.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScenarioFile opens path and decodes it with LoadScenario.
func LoadScenarioFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := LoadScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks precision and the shape of every rotation.
func (s *Scenario) Validate() error {
	switch s.Precision {
	case "", "f64", "f32":
	default:
		return fmt.Errorf("%w: precision %q, want f64 or f32", errInvalidScenario, s.Precision)
	}
	if len(s.Rotations) == 0 {
		return fmt.Errorf("%w: no rotations", errInvalidScenario)
	}

	for i, rot := range s.Rotations {
		label := rot.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}

		hasAxis := rot.Axis != nil
		hasArc := rot.From != nil || rot.To != nil
		switch {
		case hasAxis && hasArc:
			return fmt.Errorf("%w: rotation %s sets both axis and from/to", errInvalidScenario, label)
		case !hasAxis && !hasArc:
			return fmt.Errorf("%w: rotation %s needs axis and angle or from and to", errInvalidScenario, label)
		}

		type field struct {
			name string
			v    []float64
		}
		var fields []field
		if hasAxis {
			fields = append(fields, field{"axis", rot.Axis})
		} else {
			fields = append(fields, field{"from", rot.From}, field{"to", rot.To})
		}
		for j, v := range rot.Apply {
			fields = append(fields, field{fmt.Sprintf("apply[%d]", j), v})
		}
		for _, f := range fields {
			if len(f.v) != 3 {
				return fmt.Errorf("%w: rotation %s %s has %d components, want 3", errInvalidScenario, label, f.name, len(f.v))
			}
		}
	}
	return nil
}

// Options converts the scenario header into report options.
func (s *Scenario) Options() []ReportOption {
	var opts []ReportOption
	switch s.Precision {
	case "f32":
		opts = append(opts, WithPrecision(32))
	case "f64":
		opts = append(opts, WithPrecision(64))
	}
	if s.Degrees != nil {
		opts = append(opts, WithDegrees(*s.Degrees))
	}
	return opts
}

// Package pidconfig loads a PIDPlus controller and its modifier chain
// from a YAML document, the way Ixian-fan-controller-go loads its fan
// and PID settings: a typed Config struct with yaml tags, defaults
// filled in after unmarshal, then validated before use.
package pidconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pidplus/interplut"
	"pidplus/modifier"
	"pidplus/pidplus"
)

// Config is the declarative description of a PIDPlus controller.
type Config struct {
	Gains        GainsConfig         `yaml:"gains"`
	DtDefault    *float64            `yaml:"dt_default"`
	OutputLimits *OutputLimitsConfig `yaml:"output_limits"`
	Modifiers    []ModifierConfig    `yaml:"modifiers"`
}

// OutputLimitsConfig bounds the controller's final output. Both fields
// are required when the section is present; omit the whole section for
// an unbounded output.
type OutputLimitsConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// GainsConfig holds the three PID gains.
type GainsConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

// ModifierConfig names one built-in modifier and its parameters. Only
// one of the Kind-specific field groups is meaningful for any given
// Kind; the rest are ignored.
type ModifierConfig struct {
	Kind string `yaml:"kind"`

	// SetpointRamp
	Secs       float64 `yaml:"secs"`
	HiddenRamp bool    `yaml:"hiddenramp"`
	Threshold  float64 `yaml:"threshold"`

	// I_Windup
	Limit float64 `yaml:"limit"`
	Lo    float64 `yaml:"lo"`
	Hi    float64 `yaml:"hi"`

	// I_SetpointReset
	DelaySecs float64 `yaml:"delay_secs"`

	// DeadBand
	Size float64 `yaml:"size"`

	// BangBang
	OnThreshold  *float64 `yaml:"on_threshold"`
	OffThreshold *float64 `yaml:"off_threshold"`
	OnValue      float64  `yaml:"on_value"`
	OffValue     float64  `yaml:"off_value"`

	// D_DeltaE
	KickFilter bool `yaml:"kickfilter"`

	// D_GainSchedule
	LUT []LUTPoint `yaml:"lut"`

	// PIDHistory
	N      int  `yaml:"n"`
	Detail bool `yaml:"detail"`

	// EventPrint
	Prefix string `yaml:"prefix"`
}

// LUTPoint is one control point of a D_GainSchedule lookup table.
type LUTPoint struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

// Load reads and parses a Config from a YAML file and validates it.
// Fields absent from the document keep their zero values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pidconfig: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pidconfig: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pidconfig: %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	for i, m := range c.Modifiers {
		if m.Kind == "" {
			return fmt.Errorf("modifiers[%d]: kind is required", i)
		}
		if m.Kind == "SetpointRamp" && m.Secs < 0 {
			return fmt.Errorf("modifiers[%d]: secs must be non-negative", i)
		}
		if m.Kind == "D_GainSchedule" && len(m.LUT) < 2 {
			return fmt.Errorf("modifiers[%d]: lut needs at least two points", i)
		}
	}
	if c.OutputLimits != nil && c.OutputLimits.Min > c.OutputLimits.Max {
		return fmt.Errorf("output_limits: min must not exceed max")
	}
	return nil
}

// Build constructs a pidplus.Controller from the configuration.
func (c *Config) Build() (*pidplus.Controller, error) {
	mods := make([]modifier.Modifier, 0, len(c.Modifiers))
	for i, m := range c.Modifiers {
		built, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("modifiers[%d]: %w", i, err)
		}
		mods = append(mods, built)
	}

	ctrl, err := pidplus.New(c.Gains.Kp, c.Gains.Ki, c.Gains.Kd, c.DtDefault, mods...)
	if err != nil {
		return nil, err
	}
	if c.OutputLimits != nil {
		ctrl.SetOutputLimits(c.OutputLimits.Min, c.OutputLimits.Max)
	}
	return ctrl, nil
}

func (m *ModifierConfig) build() (modifier.Modifier, error) {
	switch m.Kind {
	case "SetpointRamp":
		return modifier.NewSetpointRampWithOptions(m.Secs, m.HiddenRamp, m.Threshold), nil
	case "I_Windup":
		if m.Limit != 0 {
			return modifier.NewIWindup(m.Limit), nil
		}
		return modifier.NewIWindupRange(m.Lo, m.Hi), nil
	case "I_SetpointReset":
		return modifier.NewISetpointReset(m.DelaySecs), nil
	case "I_Freeze":
		return modifier.NewIFreeze(), nil
	case "DeadBand":
		return modifier.NewDeadBand(m.Size), nil
	case "BangBang":
		opts := []modifier.BangBangOption{
			modifier.WithOnThreshold(m.OnThreshold),
			modifier.WithOffThreshold(m.OffThreshold),
		}
		if m.OnValue != 0 {
			opts = append(opts, modifier.WithOnValue(m.OnValue))
		}
		if m.OffValue != 0 {
			opts = append(opts, modifier.WithOffValue(m.OffValue))
		}
		return modifier.NewBangBang(opts...), nil
	case "D_DeltaE":
		return modifier.NewDDeltaE(m.KickFilter), nil
	case "D_GainSchedule":
		lut := interplut.New()
		for _, p := range m.LUT {
			lut.Add(p.Input, p.Output)
		}
		if err := lut.CreateLUT(); err != nil {
			return nil, err
		}
		return modifier.NewDGainSchedule(lut), nil
	case "PIDHistory":
		return modifier.NewPIDHistory(m.N, m.Detail), nil
	case "EventPrint":
		return modifier.NewEventPrint(m.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown modifier kind %q", m.Kind)
	}
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.25
	DefaultDuration = 365.0
	DefaultModel    = "river"
)

type Config struct {
	Model      string        `yaml:"model"`
	Integrator string        `yaml:"integrator"`
	Station    string        `yaml:"station"`
	Dt         float64       `yaml:"dt"`
	Duration   float64       `yaml:"duration"`
	Seed       int64         `yaml:"seed"`
	InitState  InitState     `yaml:"init_state"`
	Params     ModelParams   `yaml:"params"`
	Forcing    ForcingConfig `yaml:"forcing"`
}

// InitState holds the five initial storages.
type InitState struct {
	Interception float64 `yaml:"interception"`
	Unsaturated  float64 `yaml:"unsaturated"`
	Slow         float64 `yaml:"slow"`
	Fast         float64 `yaml:"fast"`
	Outflow      float64 `yaml:"outflow"`
}

type ModelParams struct {
	Imax   float64 `yaml:"i_max"`
	Sumax  float64 `yaml:"s_umax"`
	Qsmax  float64 `yaml:"q_smax"`
	AlphaE float64 `yaml:"alpha_e"`
	AlphaF float64 `yaml:"alpha_f"`
	AlphaS float64 `yaml:"alpha_s"`
	AlphaI float64 `yaml:"alpha_i"`
	Ks     float64 `yaml:"k_s"`
	Kf     float64 `yaml:"k_f"`
}

type ForcingConfig struct {
	Source string  `yaml:"source"` // zero, constant, series
	File   string  `yaml:"file"`   // .dly path for series
	Precip float64 `yaml:"precip"`
	Evap   float64 `yaml:"evap"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      DefaultModel,
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Params: ModelParams{
			Imax:   9.0,
			Sumax:  200.0,
			Qsmax:  7.0,
			AlphaE: 85.0,
			AlphaF: 0.2,
			AlphaS: 0.0,
			AlphaI: 50.0,
			Ks:     70.0,
			Kf:     2.5,
		},
		Forcing: ForcingConfig{Source: "zero"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) GetInitState() []float64 {
	return []float64{
		c.InitState.Interception,
		c.InitState.Unsaturated,
		c.InitState.Slow,
		c.InitState.Fast,
		c.InitState.Outflow,
	}
}

func (c *Config) GetModelParams() map[string]float64 {
	return map[string]float64{
		"i_max":   c.Params.Imax,
		"s_umax":  c.Params.Sumax,
		"q_smax":  c.Params.Qsmax,
		"alpha_e": c.Params.AlphaE,
		"alpha_f": c.Params.AlphaF,
		"alpha_s": c.Params.AlphaS,
		"alpha_i": c.Params.AlphaI,
		"k_s":     c.Params.Ks,
		"k_f":     c.Params.Kf,
	}
}

func (c *Config) GetForcingParams() map[string]float64 {
	return map[string]float64{
		"precip": c.Forcing.Precip,
		"evap":   c.Forcing.Evap,
	}
}

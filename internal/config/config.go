package config

import "github.com/kelseyhightower/envconfig"

// Plot holds chart settings.
type Plot struct {
	Width   int    `envconfig:"PLOT_WIDTH" default:"700"`
	Height  int    `envconfig:"PLOT_HEIGHT" default:"500"`
	Color   string `envconfig:"PLOT_COLOR" default:"#3EA6FF"`
	XColumn string `envconfig:"PLOT_X" default:"r (pm)"`
}

// Lab holds configuration for a lab session.
type Lab struct {
	MaxRows   int  `envconfig:"MAX_ROWS" default:"20"`
	Precision int  `envconfig:"PRECISION" default:"2"`
	Plot      Plot `ignored:"true"`
}

// Load reads COULOMB_* environment variables.
func Load() (*Lab, error) {
	var cfg Lab
	if err := envconfig.Process("coulomb", &cfg); err != nil {
		return nil, err
	}
	if err := envconfig.Process("coulomb", &cfg.Plot); err != nil {
		return nil, err
	}
	return &cfg, nil
}

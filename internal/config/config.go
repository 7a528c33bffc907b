/*
 * config.go, part of xvgplot
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config loads the settings of the xvgplot command.
//
// The output mode (--output or --interactive) is only read from the
// command line. Every other setting comes from, in increasing order of
// precedence:
//  1. Default values
//  2. A YAML configuration file (--config, or xvgplot.yaml in the current
//     directory or in $HOME/.config/xvgplot)
//  3. Environment variables with the XVGPLOT_ prefix (XVGPLOT_COLORMAP=Dark2)
//  4. Command line flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every setting of one xvgplot run.
type Config struct {
	Output      string  `mapstructure:"output"`
	Interactive bool    `mapstructure:"interactive"`
	Average     bool    `mapstructure:"average"`
	Window      int     `mapstructure:"window"`
	Colormap    string  `mapstructure:"colormap"`
	Background  string  `mapstructure:"background-color"`
	Width       float64 `mapstructure:"width"`  //inches
	Height      float64 `mapstructure:"height"` //inches
	Viewer      string  `mapstructure:"viewer"`
	Metadata    bool    `mapstructure:"metadata"`
}

// Keys that can be set from files and environment, and their defaults.
// The output mode (output and interactive) is only taken from the flags.
var defaults = map[string]interface{}{
	"average":          false,
	"window":           10,
	"colormap":         "Set1",
	"background-color": "lightgray",
	"width":            6.4,
	"height":           4.8,
	"viewer":           "",
	"metadata":         false,
}

// Load builds the configuration. cfgFile may be empty, in which case the
// default locations are searched and a missing file is not an error.
// If flags is not nil, every flag in it with the name of a setting
// overrides the other sources, but only if the user actually set it.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("xvgplot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/xvgplot")
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	v.SetEnvPrefix("XVGPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		for k := range defaults {
			if f := flags.Lookup(k); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return nil, fmt.Errorf("can't bind flag %s: %w", k, err)
				}
			}
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Output, cfg.Interactive = "", false
	if flags != nil {
		if f := flags.Lookup("output"); f != nil {
			cfg.Output = f.Value.String()
		}
		if f := flags.Lookup("interactive"); f != nil {
			cfg.Interactive = f.Value.String() == "true"
		}
	}
	return cfg, nil
}

// Validate checks that the settings make sense together.
func (c *Config) Validate() error {
	if c.Output != "" && c.Interactive {
		return fmt.Errorf("an output file and interactive mode can't be requested at the same time")
	}
	if c.Output == "" && !c.Interactive {
		return fmt.Errorf("either an output file or interactive mode is required")
	}
	if c.Window < 1 {
		return fmt.Errorf("window size must be a positive integer, not %d", c.Window)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid figure size %gx%g", c.Width, c.Height)
	}
	return nil
}

// Package config loads editor configuration: keymap overrides and startup
// options. Files are discovered as vedit.{toml,yaml,json} in the working
// directory or under $XDG_CONFIG_HOME/vedit (falling back to
// ~/.config/vedit).
package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"vedit/core"
)

// Config is the loaded editor configuration.
type Config struct {
	// StartInInsert opens the editor in Insert mode.
	StartInInsert bool
	// Overrides maps key sequences to actions, layered over the defaults.
	Overrides map[string]core.Action
	// Unknown lists action names from the file that did not resolve.
	Unknown []string
}

// binding is one keymap entry in the config file:
//
//	[[keymap]]
//	seq = "Q"
//	action = "delete_line"
type binding struct {
	Seq    string `mapstructure:"seq"`
	Action string `mapstructure:"action"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Overrides: map[string]core.Action{}}
}

// Keymap returns the default keymap with the overrides applied.
func (c *Config) Keymap() core.Keymap {
	return core.DefaultKeymap().Merge(c.Overrides)
}

// Load reads the configuration. With an empty path the standard locations
// are searched; a missing file is not an error and yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("vedit")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "vedit"))
		} else if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vedit"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := Default()
	cfg.StartInInsert = v.GetBool("start_in_insert")

	var bindings []binding
	if err := v.UnmarshalKey("keymap", &bindings); err != nil {
		return nil, err
	}
	for _, b := range bindings {
		if b.Seq == "" {
			continue
		}
		act, ok := core.ParseAction(b.Action)
		if !ok {
			cfg.Unknown = append(cfg.Unknown, b.Action)
			log.Printf("config: unknown action %q for %q, skipping", b.Action, b.Seq)
			continue
		}
		cfg.Overrides[b.Seq] = act
	}
	return cfg, nil
}

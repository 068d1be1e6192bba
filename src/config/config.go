// Package config is responsible for finding, parsing and merging the user
// configuration with the defaults.
//
// The user configuration lives in $HOME/.qruuid/config.json. It is optional,
// every field missing from it keeps its default value.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/spf13/afero"

	"github.com/ironsmile/qruuid/src/capacity"
	"github.com/ironsmile/qruuid/src/helpers"
)

// ConfigName is the name of the user configuration file.
const ConfigName = "config.json"

// Config contains representation for everything in config.json.
type Config struct {
	Listen         string `json:"listen"`
	DefaultLevel   string `json:"default_level"`
	Gzip           bool   `json:"gzip"`
	ReadTimeout    int    `json:"read_timeout"`
	WriteTimeout   int    `json:"write_timeout"`
	MaxHeadersSize int    `json:"max_header_bytes"`
	LogFile        string `json:"log_file"`
	PidFile        string `json:"pid_file"`
}

// MergedConfig is the user configuration as read from config.json. Every
// field is a pointer so that a value explicitly set to false or 0 can be told
// apart from a missing one.
type MergedConfig struct {
	Listen         *string `json:"listen"`
	DefaultLevel   *string `json:"default_level"`
	Gzip           *bool   `json:"gzip"`
	ReadTimeout    *int    `json:"read_timeout"`
	WriteTimeout   *int    `json:"write_timeout"`
	MaxHeadersSize *int    `json:"max_header_bytes"`
	LogFile        *string `json:"log_file"`
	PidFile        *string `json:"pid_file"`
}

// Default returns the configuration used when the user has not overridden
// anything.
func Default() Config {
	return Config{
		Listen:         "localhost:9045",
		DefaultLevel:   capacity.M.String(),
		Gzip:           true,
		ReadTimeout:    15,
		WriteTimeout:   15,
		MaxHeadersSize: 1 << 20,
	}
}

// FindAndParse starts from the defaults and merges the user configuration on
// top of them. A missing user configuration file is not an error.
func FindAndParse(fs afero.Fs) (Config, error) {
	userPath, err := helpers.ProjectUserPath()
	if err != nil {
		return Config{}, err
	}
	return Load(fs, filepath.Join(userPath, ConfigName))
}

// Load merges the configuration in filename over the defaults. A missing
// file yields the defaults.
func Load(fs afero.Fs, filename string) (Config, error) {
	cfg := Default()

	usrCfg, err := parse(fs, filename)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, cfg.Validate()
	} else if err != nil {
		return Config{}, err
	}

	cfg.merge(usrCfg)
	return cfg, cfg.Validate()
}

func parse(fs afero.Fs, filename string) (*MergedConfig, error) {
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}

	cfg := new(MergedConfig)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return cfg, nil
}

// merge copies every field set in merged on top of cfg. Fields are matched
// by name.
func (cfg *Config) merge(merged *MergedConfig) {
	cfgVal := reflect.ValueOf(cfg).Elem()
	mergedVal := reflect.ValueOf(merged).Elem()
	mergedType := mergedVal.Type()

	for i := 0; i < mergedVal.NumField(); i++ {
		mergedField := mergedVal.Field(i)
		if mergedField.IsNil() {
			continue
		}

		cfgField := cfgVal.FieldByName(mergedType.Field(i).Name)
		if !cfgField.IsValid() || !cfgField.CanSet() {
			continue
		}

		cfgField.Set(mergedField.Elem())
	}
}

// ResolvePaths makes relative log and PID file paths relative to root,
// normally the qruuid user directory.
func (cfg *Config) ResolvePaths(root string) {
	if cfg.LogFile != "" {
		cfg.LogFile = helpers.AbsolutePath(cfg.LogFile, root)
	}
	if cfg.PidFile != "" {
		cfg.PidFile = helpers.AbsolutePath(cfg.PidFile, root)
	}
}

// Level returns the parsed default error-correction level.
func (cfg Config) Level() (capacity.Level, error) {
	return capacity.ParseLevel(cfg.DefaultLevel)
}

// Validate checks that the configuration values are usable.
func (cfg Config) Validate() error {
	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("default_level: %w", err)
	}
	if cfg.ReadTimeout < 0 || cfg.WriteTimeout < 0 {
		return errors.New("timeouts cannot be negative")
	}
	if cfg.MaxHeadersSize < 0 {
		return errors.New("max_header_bytes cannot be negative")
	}
	return nil
}

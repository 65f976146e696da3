package config

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Structs

// Config holds all information parsed from
// supplied config file.
type Config struct {
	Name       string
	LogLevel   string
	Prometheus Prometheus
	API        API
	Replay     Replay
}

// Prometheus configures where metrics are exposed.
// An empty address disables metrics collection.
type Prometheus struct {
	Addr string
}

// API configures the HTTP interface that accepts
// operations and serves the resolved list.
type API struct {
	ListenAddr string
}

// Replay names a file of operations that is
// applied to the list on startup.
type Replay struct {
	OpsFile string
}

// Functions

// LoadConfig takes in the path to the main config
// file in TOML syntax and places the values from the
// file in the corresponding struct. A relative replay
// file is resolved against the config file's directory.
func LoadConfig(configFile string) (*Config, error) {

	conf := &Config{
		LogLevel: "info",
	}

	// Parse values from TOML file into struct.
	meta, err := toml.DecodeFile(configFile, conf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read in TOML config file at '%s'", configFile)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown key '%s' in config file '%s'", undecoded[0], configFile)
	}

	if conf.Replay.OpsFile != "" && !filepath.IsAbs(conf.Replay.OpsFile) {

		absConfig, err := filepath.Abs(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "could not get absolute path of config file")
		}

		conf.Replay.OpsFile = filepath.Join(filepath.Dir(absConfig), conf.Replay.OpsFile)
	}

	return conf, nil
}

package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Structs

// Env holds information specific to the
// system where the list is deployed. This
// enables host adaptions without needing
// to maintain two different config files.
type Env struct {
	PrometheusAddr string
	ListenAddr     string
}

// Functions

// LoadEnv reads in the given .env file and returns the
// deployment overrides found in the environment afterwards.
// Variables already set in the environment take precedence.
func LoadEnv(file string) (*Env, error) {

	err := godotenv.Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read in env file '%s'", file)
	}

	env := &Env{
		PrometheusAddr: os.Getenv("TODOLIST_PROMETHEUS_ADDR"),
		ListenAddr:     os.Getenv("TODOLIST_LISTEN_ADDR"),
	}

	return env, nil
}

// Apply overrides values of conf with all
// non-empty values of env.
func (env *Env) Apply(conf *Config) {

	if env.PrometheusAddr != "" {
		conf.Prometheus.Addr = env.PrometheusAddr
	}

	if env.ListenAddr != "" {
		conf.API.ListenAddr = env.ListenAddr
	}
}

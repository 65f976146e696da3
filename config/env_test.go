package config_test

import (
	"os"
	"testing"

	"github.com/go-pluto/todolist/config"
)

// Functions

// TestLoadEnv executes a black-box test on the
// implemented functionalities to load a .env file.
func TestLoadEnv(t *testing.T) {

	_, err := config.LoadEnv("testdata/missing.env")
	if err == nil {
		t.Fatal("[config.TestLoadEnv] Expected fail while loading a missing env file but received 'nil' error.")
	}

	// Register cleanup, then leave the listen address
	// unset so that the file provides it.
	t.Setenv("TODOLIST_LISTEN_ADDR", "")
	os.Unsetenv("TODOLIST_LISTEN_ADDR")

	// Already set variables win over the file.
	t.Setenv("TODOLIST_PROMETHEUS_ADDR", ":9300")

	env, err := config.LoadEnv("testdata/test.env")
	if err != nil {
		t.Fatalf("[config.TestLoadEnv] Expected success while loading test.env but received: '%s'\n", err.Error())
	}

	if env.PrometheusAddr != ":9300" {
		t.Fatalf("[config.TestLoadEnv] Expected '%s' but received '%s'\n", ":9300", env.PrometheusAddr)
	}

	if env.ListenAddr != "0.0.0.0:8181" {
		t.Fatalf("[config.TestLoadEnv] Expected '%s' but received '%s'\n", "0.0.0.0:8181", env.ListenAddr)
	}

	conf := &config.Config{}
	conf.API.ListenAddr = "127.0.0.1:8080"
	env.Apply(conf)

	if conf.Prometheus.Addr != ":9300" || conf.API.ListenAddr != "0.0.0.0:8181" {
		t.Fatalf("[config.TestLoadEnv] Expected overrides to apply but received '%s' and '%s'\n", conf.Prometheus.Addr, conf.API.ListenAddr)
	}

	// Empty values leave the config alone.
	conf = &config.Config{}
	conf.API.ListenAddr = "127.0.0.1:8080"
	(&config.Env{}).Apply(conf)

	if conf.API.ListenAddr != "127.0.0.1:8080" {
		t.Fatalf("[config.TestLoadEnv] Expected '%s' to stay but received '%s'\n", "127.0.0.1:8080", conf.API.ListenAddr)
	}
}

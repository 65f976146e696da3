package config_test

import (
	"path/filepath"
	"testing"

	"github.com/go-pluto/todolist/config"
)

// Functions

// TestLoadConfig executes a black-box test on the
// implemented functionalities to load a TOML config file.
func TestLoadConfig(t *testing.T) {

	// Try to load a broken config file. This should fail.
	_, err := config.LoadConfig("testdata/broken-config.toml")
	if err == nil {
		t.Fatal("[config.TestLoadConfig] Expected fail while loading broken-config.toml but received 'nil' error.")
	}

	// Unknown keys are rejected as well.
	_, err = config.LoadConfig("testdata/unknown-key.toml")
	if err == nil {
		t.Fatal("[config.TestLoadConfig] Expected fail while loading unknown-key.toml but received 'nil' error.")
	}

	// Now load a valid config.
	conf, err := config.LoadConfig("testdata/config.toml")
	if err != nil {
		t.Fatalf("[config.TestLoadConfig] Expected success while loading config.toml but received: '%s'\n", err.Error())
	}

	if conf.Name != "replica-test" || conf.LogLevel != "debug" {
		t.Fatalf("[config.TestLoadConfig] Expected name 'replica-test' and level 'debug' but received '%s' and '%s'\n", conf.Name, conf.LogLevel)
	}

	if conf.Prometheus.Addr != ":9099" || conf.API.ListenAddr != "127.0.0.1:8080" {
		t.Fatalf("[config.TestLoadConfig] Unexpected addresses '%s' and '%s'\n", conf.Prometheus.Addr, conf.API.ListenAddr)
	}

	// Relative replay files are resolved next to the config.
	expected, _ := filepath.Abs("testdata/ops.txt")
	if conf.Replay.OpsFile != expected {
		t.Fatalf("[config.TestLoadConfig] Expected '%s' but received '%s'\n", expected, conf.Replay.OpsFile)
	}

	// Defaults apply and absolute paths stay untouched.
	conf, err = config.LoadConfig("testdata/minimal.toml")
	if err != nil {
		t.Fatalf("[config.TestLoadConfig] Expected success while loading minimal.toml but received: '%s'\n", err.Error())
	}

	if conf.LogLevel != "info" || conf.Replay.OpsFile != "/var/lib/todolist/ops.txt" {
		t.Fatalf("[config.TestLoadConfig] Expected defaults but received level '%s' and ops file '%s'\n", conf.LogLevel, conf.Replay.OpsFile)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-pluto/todolist/comm"
	"github.com/go-pluto/todolist/config"
	"github.com/go-pluto/todolist/crdt"
	"github.com/go-pluto/todolist/list"
	"github.com/go-pluto/todolist/server"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
)

// Functions

// initLogger initializes a JSON gokit-logger set
// to the according log level supplied via cli flag.
func initLogger(loglevel string) log.Logger {

	logger := log.NewJSONLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger,
		"ts", log.DefaultTimestampUTC,
		"caller", log.DefaultCaller,
	)

	switch strings.ToLower(loglevel) {
	case "info":
		logger = level.NewFilter(logger, level.AllowInfo())
	case "warn":
		logger = level.NewFilter(logger, level.AllowWarn())
	case "error":
		logger = level.NewFilter(logger, level.AllowError())
	default:
		logger = level.NewFilter(logger, level.AllowDebug())
	}

	return logger
}

// loadConfig reads the TOML config if a path is given and
// applies overrides from the env file if one exists.
func loadConfig(logger log.Logger, configFile string, envFile string) (*config.Config, error) {

	conf := &config.Config{LogLevel: "info"}

	if configFile != "" {

		var err error

		conf, err = config.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
	}

	env, err := config.LoadEnv(envFile)
	if err != nil {
		level.Debug(logger).Log("msg", "no env overrides loaded", "err", err)
	} else {
		env.Apply(conf)
	}

	return conf, nil
}

// newService builds the list service wrapped in
// logging and metrics middleware.
func newService(logger log.Logger, name string, m *ListMetrics) list.Service {

	var s list.Service

	s = list.NewService(name)
	s = list.NewLoggingService(s, logger)
	s = list.NewMetricsService(s, m.Operations, m.ActiveEntries)

	return s
}

// replay applies all operations in file to s.
func replay(s list.Service, file string) (int, error) {

	handle, err := os.Open(file)
	if err != nil {
		return 0, errors.Wrap(err, "could not open operations file")
	}
	defer handle.Close()

	ops, err := comm.ReadOps(handle)
	if err != nil {
		return 0, errors.Wrapf(err, "reading operations from '%s'", file)
	}

	return list.ApplyAll(s, ops)
}

// render writes one line per active entry.
func render(w io.Writer, entries []crdt.Entry) error {

	for _, e := range entries {

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.State, e.Name); err != nil {
			return err
		}
	}

	return nil
}

func main() {

	// Parse command-line flags.
	configFlag := flag.String("config", "config.toml", "Provide path to configuration file in TOML syntax. Leave empty to run with defaults.")
	envFlag := flag.String("env", ".env", "Optional file with environment overrides.")
	opsFlag := flag.String("ops", "", "File of operations to replay on startup. Overrides the config file.")
	serveFlag := flag.Bool("serve", false, "Append this flag to serve the HTTP API after replaying.")
	loglevelFlag := flag.String("loglevel", "", "This flag sets the logging level. Overrides the config file.")
	flag.Parse()

	logger := initLogger(*loglevelFlag)

	conf, err := loadConfig(logger, *configFlag, *envFlag)
	if err != nil {
		level.Error(logger).Log(
			"msg", "failed to load the config",
			"err", err,
		)
		os.Exit(1)
	}

	if *loglevelFlag == "" {
		logger = initLogger(conf.LogLevel)
	}

	if *opsFlag != "" {
		conf.Replay.OpsFile = *opsFlag
	}

	level.Debug(logger).Log("msg", "loaded config", "config", litter.Sdump(conf))

	m := NewTodoMetrics(conf.Prometheus.Addr)
	go runPromHTTP(logger, conf.Prometheus.Addr)

	s := newService(logger, conf.Name, m.List)

	if conf.Replay.OpsFile != "" {

		n, err := replay(s, conf.Replay.OpsFile)
		if err != nil {
			level.Error(logger).Log(
				"msg", "failed to replay operations",
				"file", conf.Replay.OpsFile,
				"applied", n,
				"err", err,
			)
			os.Exit(2)
		}

		level.Info(logger).Log("msg", "replayed operations", "applied", n, "active", s.Count())
	}

	if !*serveFlag {

		if err := render(os.Stdout, s.Entries()); err != nil {
			level.Error(logger).Log("msg", "failed to print entries", "err", err)
			os.Exit(3)
		}

		return
	}

	if conf.API.ListenAddr == "" {
		level.Error(logger).Log("msg", "no listen address configured for the http api")
		os.Exit(4)
	}

	srv := server.NewServer(logger, s)
	if err := srv.ListenAndServe(conf.API.ListenAddr); err != nil {
		level.Error(logger).Log(
			"msg", "failed to serve http api",
			"err", err,
		)
		os.Exit(5)
	}
}

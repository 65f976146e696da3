package main

import (
	"net/http"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type TodoMetrics struct {
	List *ListMetrics
}

type ListMetrics struct {
	Operations    metrics.Counter
	ActiveEntries metrics.Gauge
}

func NewTodoMetrics(prometheusAddr string) *TodoMetrics {

	m := &TodoMetrics{}

	if prometheusAddr == "" {
		m.List = &ListMetrics{
			Operations:    discard.NewCounter(),
			ActiveEntries: discard.NewGauge(),
		}
	} else {
		m.List = &ListMetrics{
			Operations: prometheus.NewCounterFrom(prom.CounterOpts{
				Namespace: "todolist",
				Subsystem: "list",
				Name:      "operations_total",
				Help:      "Number of applied operations by method and outcome",
			}, []string{"method", "outcome"}),
			ActiveEntries: prometheus.NewGaugeFrom(prom.GaugeOpts{
				Namespace: "todolist",
				Subsystem: "list",
				Name:      "active_entries",
				Help:      "Number of entries currently on the list",
			}, nil),
		}
	}

	return m
}

func runPromHTTP(logger log.Logger, addr string) {

	if addr == "" {
		level.Debug(logger).Log("msg", "prometheus addr is empty, not exposing prometheus metrics")
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	level.Info(logger).Log("msg", "prometheus handler listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		level.Warn(logger).Log("msg", "failed to serve prometheus metrics", "err", err)
	}
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTodoMetrics(t *testing.T) {
	metrics := NewTodoMetrics("")
	assert.NotNil(t, metrics.List.Operations)
	assert.NotNil(t, metrics.List.ActiveEntries)

	metrics = NewTodoMetrics(":9099")
	assert.NotNil(t, metrics.List.Operations)
	assert.NotNil(t, metrics.List.ActiveEntries)

	// Labeled counters accept method and outcome.
	metrics.List.Operations.With("method", "AddEntry", "outcome", "ok").Add(1)
	metrics.List.ActiveEntries.Set(3)
}

package list

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-pluto/todolist/crdt"
)

type metricsService struct {
	service    Service
	operations metrics.Counter
	active     metrics.Gauge
}

// NewMetricsService wraps s so that every operation is
// counted by method and outcome and the number of active
// entries is tracked after each change.
func NewMetricsService(s Service, operations metrics.Counter, active metrics.Gauge) Service {
	return &metricsService{
		service:    s,
		operations: operations,
		active:     active,
	}
}

func (s *metricsService) observe(method string, err error) error {

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	s.operations.With("method", method, "outcome", outcome).Add(1)
	s.active.Set(float64(s.service.Count()))

	return err
}

func (s *metricsService) Name() string {
	return s.service.Name()
}

func (s *metricsService) AddEntry(entryID int, userID int, name string, ts int64) error {
	return s.observe("AddEntry", s.service.AddEntry(entryID, userID, name, ts))
}

func (s *metricsService) RemoveEntry(entryID int, userID int, ts int64) error {
	return s.observe("RemoveEntry", s.service.RemoveEntry(entryID, userID, ts))
}

func (s *metricsService) MarkDone(entryID int, userID int, ts int64) error {
	return s.observe("MarkDone", s.service.MarkDone(entryID, userID, ts))
}

func (s *metricsService) MarkUndone(entryID int, userID int, ts int64) error {
	return s.observe("MarkUndone", s.service.MarkUndone(entryID, userID, ts))
}

func (s *metricsService) DismissUser(userID int) error {
	return s.observe("DismissUser", s.service.DismissUser(userID))
}

func (s *metricsService) AllowUser(userID int) error {
	return s.observe("AllowUser", s.service.AllowUser(userID))
}

func (s *metricsService) Count() int {
	return s.service.Count()
}

func (s *metricsService) Entries() []crdt.Entry {
	return s.service.Entries()
}

func (s *metricsService) Entry(entryID int) (crdt.Entry, bool) {
	return s.service.Entry(entryID)
}

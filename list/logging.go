package list

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-pluto/todolist/crdt"
)

type loggingService struct {
	logger  log.Logger
	service Service
}

// NewLoggingService wraps a provided existing
// service with the provided logger.
func NewLoggingService(s Service, logger log.Logger) Service {
	return &loggingService{log.With(logger, "replica", s.Name()), s}
}

// logResult logs a failed operation as error, since
// only broken invariants make the list fail, and a
// successful one at debug level.
func (s *loggingService) logResult(err error, keyvals ...interface{}) {

	logger := log.With(s.logger, keyvals...)

	if err != nil {
		level.Error(logger).Log("msg", "failed to apply operation", "err", err)
	} else {
		level.Debug(logger).Log()
	}
}

func (s *loggingService) Name() string {
	return s.service.Name()
}

// AddEntry wraps this service's AddEntry
// method with added logging capabilities.
func (s *loggingService) AddEntry(entryID int, userID int, name string, ts int64) error {

	err := s.service.AddEntry(entryID, userID, name, ts)
	s.logResult(err, "method", "AddEntry", "entry", entryID, "user", userID, "name", name, "ts", ts)

	return err
}

// RemoveEntry wraps this service's RemoveEntry
// method with added logging capabilities.
func (s *loggingService) RemoveEntry(entryID int, userID int, ts int64) error {

	err := s.service.RemoveEntry(entryID, userID, ts)
	s.logResult(err, "method", "RemoveEntry", "entry", entryID, "user", userID, "ts", ts)

	return err
}

// MarkDone wraps this service's MarkDone
// method with added logging capabilities.
func (s *loggingService) MarkDone(entryID int, userID int, ts int64) error {

	err := s.service.MarkDone(entryID, userID, ts)
	s.logResult(err, "method", "MarkDone", "entry", entryID, "user", userID, "ts", ts)

	return err
}

// MarkUndone wraps this service's MarkUndone
// method with added logging capabilities.
func (s *loggingService) MarkUndone(entryID int, userID int, ts int64) error {

	err := s.service.MarkUndone(entryID, userID, ts)
	s.logResult(err, "method", "MarkUndone", "entry", entryID, "user", userID, "ts", ts)

	return err
}

// DismissUser wraps this service's DismissUser
// method with added logging capabilities.
func (s *loggingService) DismissUser(userID int) error {

	err := s.service.DismissUser(userID)

	if err == nil {
		level.Info(s.logger).Log("msg", "dismissed user", "user", userID)
	}
	s.logResult(err, "method", "DismissUser", "user", userID)

	return err
}

// AllowUser wraps this service's AllowUser
// method with added logging capabilities.
func (s *loggingService) AllowUser(userID int) error {

	err := s.service.AllowUser(userID)

	if err == nil {
		level.Info(s.logger).Log("msg", "allowed user", "user", userID)
	}
	s.logResult(err, "method", "AllowUser", "user", userID)

	return err
}

func (s *loggingService) Count() int {
	return s.service.Count()
}

func (s *loggingService) Entries() []crdt.Entry {
	return s.service.Entries()
}

func (s *loggingService) Entry(entryID int) (crdt.Entry, bool) {
	return s.service.Entry(entryID)
}

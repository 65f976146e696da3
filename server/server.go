// Package server exposes a list.Service over HTTP. Operations are
// posted in the line format of package comm, the resolved list is
// served as JSON.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-pluto/todolist/comm"
	"github.com/go-pluto/todolist/crdt"
	"github.com/go-pluto/todolist/list"
	"github.com/gorilla/mux"
)

// Structs

// Server routes HTTP requests to one list.Service.
type Server struct {
	logger  log.Logger
	service list.Service
	router  *mux.Router
}

// entryView is the JSON form of one active entry.
type entryView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type errorView struct {
	Error string `json:"error"`
}

// Functions

// NewServer returns a Server with all routes registered.
func NewServer(logger log.Logger, service list.Service) *Server {

	s := &Server{
		logger:  logger,
		service: service,
		router:  mux.NewRouter(),
	}

	s.router.HandleFunc("/ops", s.handleOps).Methods(http.MethodPost)
	s.router.HandleFunc("/users/{id:[0-9]+}/dismiss", s.handleDismiss).Methods(http.MethodPost)
	s.router.HandleFunc("/users/{id:[0-9]+}/allow", s.handleAllow).Methods(http.MethodPost)
	s.router.HandleFunc("/entries", s.handleEntries).Methods(http.MethodGet)
	s.router.HandleFunc("/entries/{id:[0-9]+}", s.handleEntry).Methods(http.MethodGet)
	s.router.HandleFunc("/count", s.handleCount).Methods(http.MethodGet)

	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handle registers an additional handler, e.g. for metrics.
func (s *Server) Handle(path string, handler http.Handler) {
	s.router.Handle(path, handler)
}

// ListenAndServe blocks serving requests on addr.
func (s *Server) ListenAndServe(addr string) error {

	level.Info(s.logger).Log("msg", "http api listening", "addr", addr)

	return http.ListenAndServe(addr, s)
}

func (s *Server) handleOps(w http.ResponseWriter, r *http.Request) {

	ops, err := comm.ReadOps(r.Body)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorView{err.Error()})
		return
	}

	n, err := list.ApplyAll(s.service, ops)
	if err != nil {
		level.Error(s.logger).Log("msg", "failed to apply posted operations", "applied", n, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, errorView{err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]int{"applied": n})
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.handleUser(w, r, s.service.DismissUser)
}

func (s *Server) handleAllow(w http.ResponseWriter, r *http.Request) {
	s.handleUser(w, r, s.service.AllowUser)
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request, op func(int) error) {

	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorView{err.Error()})
		return
	}

	if err := op(userID); err != nil {
		s.writeJSON(w, http.StatusInternalServerError, errorView{err.Error()})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {

	entries := s.service.Entries()

	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, newEntryView(e))
	}

	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {

	entryID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorView{err.Error()})
		return
	}

	e, ok := s.service.Entry(entryID)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorView{"no active entry " + strconv.Itoa(entryID)})
		return
	}

	s.writeJSON(w, http.StatusOK, newEntryView(e))
}

func (s *Server) handleCount(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]int{"count": s.service.Count()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		level.Warn(s.logger).Log("msg", "failed to write response", "err", err)
	}
}

func newEntryView(e crdt.Entry) entryView {
	return entryView{ID: e.ID, Name: e.Name, State: e.State.String()}
}

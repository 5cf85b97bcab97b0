// Package rest exposes drawing sessions over a JSON HTTP API: element
// commits, undo/redo, division mode, SVG export, and an SSE event
// stream per session.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jbeda/geom"
	"github.com/pppp606/kamon"
	"github.com/pppp606/kamon/internal/logging"
	"github.com/pppp606/kamon/pkg/adapters/svgsheet"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/session"
)

// Server hosts drawing sessions over HTTP.
type Server struct {
	sessions *session.Manager
	streams  *StreamManager
	logger   *slog.Logger
	bounds   geom.Rect
	metrics  http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCanvasBounds fixes the export view box instead of deriving it
// from the drawing content.
func WithCanvasBounds(bounds geom.Rect) Option {
	return func(s *Server) {
		s.bounds = bounds
	}
}

// WithMetricsHandler mounts a metrics endpoint (e.g. promhttp) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler over a session manager.
func NewHandler(sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		sessions: sessions,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.streams = NewStreamManager(s.logger)

	r := chi.NewRouter()
	r.Get("/health", s.health)
	r.Get("/info", s.info)
	r.Get("/events", s.subscribeEvents)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Delete("/", s.deleteSession)
			r.Post("/elements", s.postElement)
			r.Post("/undo", s.historyStep(domain.OpUndo))
			r.Post("/redo", s.historyStep(domain.OpRedo))
			r.Get("/export.svg", s.exportSVG)
			r.Route("/division", func(r chi.Router) {
				r.Put("/", s.activateDivision)
				r.Get("/", s.getDivision)
				r.Delete("/", s.deactivateDivision)
				r.Post("/pointer", s.divisionPointer)
				r.Post("/cycle", s.cycleDivision)
			})
		})
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps domain errors onto HTTP statuses. Boundary no-ops
// never reach this path; they are values, not errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDivisions):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrIncompleteElement),
		errors.Is(err, domain.ErrUnsupportedElement):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":      "kamon-server",
		"version":  kamon.Version,
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) createSession(w http.ResponseWriter, _ *http.Request) {
	id := s.sessions.Create()
	s.logger.Info("session created", "session_id", id)
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto snapshotDTO
	err := s.sessions.With(id, func(bench *kamon.Workbench) error {
		dto = snapshotToDTO(bench.Snapshot(), bench.HistoryIndex())
		return nil
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.Delete(id); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postElement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	el, err := decodeElement(raw)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	var dto snapshotDTO
	err = s.sessions.With(id, func(bench *kamon.Workbench) error {
		var commitErr error
		switch el.Kind {
		case domain.KindLine:
			commitErr = bench.CommitLine(el.Line)
		case domain.KindArc:
			commitErr = bench.CommitArc(el.Arc)
		}
		if commitErr != nil {
			return commitErr
		}
		dto = snapshotToDTO(bench.Snapshot(), bench.HistoryIndex())
		return nil
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.broadcast(id, eventDTO{Type: "commit", Kind: string(el.Kind), HistoryIndex: dto.HistoryIndex})
	s.writeJSON(w, http.StatusCreated, dto)
}

// historyStep builds the undo/redo handler. A boundary call responds
// 200 with applied=false; it is never an HTTP error.
func (s *Server) historyStep(op domain.HistoryOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var result historyResultDTO
		err := s.sessions.With(id, func(bench *kamon.Workbench) error {
			var snap *domain.Snapshot
			if op == domain.OpUndo {
				snap = bench.Undo()
			} else {
				snap = bench.Redo()
			}
			result.HistoryIndex = bench.HistoryIndex()
			if snap != nil {
				result.Applied = true
				dto := snapshotToDTO(*snap, bench.HistoryIndex())
				result.Snapshot = &dto
			}
			return nil
		})
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}

		applied := result.Applied
		s.broadcast(id, eventDTO{Type: string(op), Applied: &applied, HistoryIndex: result.HistoryIndex})
		s.writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) activateDivision(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body divisionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var el *domain.Element
	if body.Element != nil {
		decoded, err := decodeElement(body.Element)
		if err != nil {
			s.writeError(w, statusFor(err), err)
			return
		}
		el = &decoded
	}

	var outcome kamon.DivisionOutcome
	var status kamon.DivisionStatus
	err := s.sessions.With(id, func(bench *kamon.Workbench) error {
		var divErr error
		outcome, divErr = bench.QuickDivide(el, body.Divisions)
		status = bench.DivisionStatus()
		return divErr
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	if outcome.Success {
		s.broadcast(id, eventDTO{Type: "division", Kind: string(status.Kind), HistoryIndex: -1})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": outcome.Success,
		"error":   outcome.Reason,
		"status":  status,
	})
}

func (s *Server) getDivision(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto divisionStatusDTO
	err := s.sessions.With(id, func(bench *kamon.Workbench) error {
		dto.DivisionStatus = bench.DivisionStatus()
		dto.Points = pointsToDTO(bench.DivisionPoints())
		return nil
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto)
}

func (s *Server) deactivateDivision(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.sessions.With(id, func(bench *kamon.Workbench) error {
		bench.DeactivateDivision()
		return nil
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) divisionPointer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body pointDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var result pointerResultDTO
	err := s.sessions.With(id, func(bench *kamon.Workbench) error {
		result.Hit = bench.HandlePointer(domain.Pt(body.X, body.Y), func(p domain.Point) {
			v := pointToDTO(p)
			result.Point = &v
		})
		return nil
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) cycleDivision(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var divisions int
	err := s.sessions.With(id, func(bench *kamon.Workbench) error {
		divisions = bench.CycleDivisions()
		return nil
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"divisions": divisions})
}

func (s *Server) exportSVG(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var snap domain.Snapshot
	var points []domain.Point
	var style domain.MarkerStyle
	err := s.sessions.With(id, func(bench *kamon.Workbench) error {
		snap = bench.Snapshot()
		points = bench.DivisionPoints()
		style = bench.MarkerStyle()
		return nil
	})
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := svgsheet.Export(w, snap, points, style, s.bounds); err != nil {
		s.logger.Error("svg export failed", "session_id", id, "err", err)
	}
}

func (s *Server) broadcast(id string, event eventDTO) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("event marshal failed", "err", err)
		return
	}
	s.streams.Broadcast(id, string(payload))
}

// subscribeEvents handles GET /events (SSE) for one session.
func (s *Server) subscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, cancel := s.streams.Subscribe(sessionID)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", event)
			flusher.Flush()
		}
	}
}

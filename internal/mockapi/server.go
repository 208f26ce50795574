// Package mockapi serves a synthetic work-order API for demos and for
// exercising the client timeout and fallback paths.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tbranch/foreman/internal/workorder"
)

// Server holds the generated record set and serves it over HTTP.
type Server struct {
	orders  []workorder.Order
	latency time.Duration
	logger  *slog.Logger
}

// New builds a Server over the given immutable record set. latency, when
// positive, is added to every list response to simulate a slow upstream.
func New(orders []workorder.Order, latency time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{orders: orders, latency: latency, logger: logger}
}

// Routes returns the HTTP router for the API.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/api/workorders", func(r chi.Router) {
		r.Get("/", s.list)      // GET /api/workorders?limit=&status=&department=&term=
		r.Get("/{id}", s.get)   // GET /api/workorders/{id}
	})
	return r
}

type listResponse struct {
	Data  []workorder.Order `json:"data"`
	Total int               `json:"total"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-r.Context().Done():
			return
		}
	}

	q := r.URL.Query()
	criteria := workorder.Criteria{
		Status:     workorder.Status(q.Get("status")),
		Department: q.Get("department"),
	}
	matched := workorder.Apply(s.orders, q.Get("term"), criteria)

	limit := len(matched)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respond(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	s.logger.Info("list work orders",
		"request_id", middleware.GetReqID(r.Context()),
		"matched", len(matched),
		"returned", limit,
	)
	respond(w, http.StatusOK, listResponse{Data: matched[:limit], Total: len(matched)})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, o := range s.orders {
		if o.ID == id {
			respond(w, http.StatusOK, o)
			return
		}
	}
	respond(w, http.StatusNotFound, map[string]string{"error": "work order not found"})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respond(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

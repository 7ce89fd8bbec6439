// Package server hosts the layout engine behind a JSON HTTP API. The
// engine computes positions; clients draw. The server owns the tick loop
// and the live filter state, and exposes Prometheus metrics for frame
// timing.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TFMV/forcegraph/config"
	"github.com/TFMV/forcegraph/models"
	"github.com/TFMV/forcegraph/physics"
	"github.com/TFMV/forcegraph/render"
)

const maxGraphBytes = 16 << 20

// Server drives the engine and serves frames to renderers
type Server struct {
	engine  *physics.Engine
	metrics *Metrics
	logger  *slog.Logger
	palette map[string]string

	mu         sync.Mutex
	graph      *models.Graph
	view       models.View
	query      string
	typeFilter string
}

// New creates a server with an empty graph
func New(settings config.Settings, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:  physics.NewEngine(settings.EngineConfig()),
		metrics: NewMetrics(),
		logger:  logger,
		palette: settings.Palette,
		graph:   models.NewGraph(),
	}
	s.applyFilter()
	return s
}

// SetGraph replaces the graph wholesale and discards all physics state
func (s *Server) SetGraph(g *models.Graph) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph = g
	s.engine.Reset()
	s.applyFilter()
	s.metrics.GraphReloads.Inc()
	s.logger.Info("graph replaced", "nodes", len(g.Nodes), "edges", len(g.Edges))
}

// applyFilter recomputes the active set and reseeds newcomers. Callers
// hold s.mu.
func (s *Server) applyFilter() {
	s.view = models.Filter(s.graph, s.query, s.typeFilter)
	s.engine.SetActive(s.view)
	s.metrics.ActiveNodes.Set(float64(len(s.view.Nodes)))
	s.metrics.ActiveEdges.Set(float64(len(s.view.Edges)))
}

// Run drives the simulation until the context is canceled. One step runs
// to completion per tick; a pause flag set mid-frame takes effect before
// the next tick.
func (s *Server) Run(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.engine.Running() {
				continue
			}
			start := time.Now()
			s.engine.Step()
			s.metrics.FramesTotal.Inc()
			s.metrics.FrameDuration.Observe(time.Since(start).Seconds())
		}
	}
}

// Handler returns the HTTP API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/graph", s.handleUploadGraph)
	mux.HandleFunc("GET /api/graph", s.handleGetGraph)
	mux.HandleFunc("GET /api/graph/export", s.handleExportGraph)
	mux.HandleFunc("GET /api/frame", s.handleFrame)
	mux.HandleFunc("GET /api/palette", s.handlePalette)
	mux.HandleFunc("POST /api/filter", s.handleFilter)
	mux.HandleFunc("POST /api/running", s.handleRunning)
	mux.HandleFunc("POST /api/select", s.handleSelect)
	mux.HandleFunc("POST /api/drag", s.handleDrag)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))
	return mux
}

// Start runs the tick loop and serves the API until the context ends
func (s *Server) Start(ctx context.Context, port int, tick time.Duration) error {
	go s.Run(ctx, tick)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown failed", "error", err)
		}
	}()

	s.logger.Info("starting server", "port", port, "tick", tick)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleUploadGraph(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxGraphBytes))
	if err != nil {
		httpError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	g, err := models.Load(data)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.SetGraph(g)
	writeJSON(w, http.StatusOK, map[string]any{
		"nodes": len(g.Nodes),
		"edges": len(g.Edges),
	})
}

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g := s.graph
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleExportGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g := s.graph
	s.mu.Unlock()

	out, err := g.Export()
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="graph.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := s.view
	s.mu.Unlock()

	frame := render.Snapshot(s.engine, view)
	writeJSON(w, http.StatusOK, frame)
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	types := s.view.Types
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, render.NewPalette(types, s.palette))
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
		Type  string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid filter request")
		return
	}

	s.mu.Lock()
	s.query = req.Query
	s.typeFilter = req.Type
	s.applyFilter()
	active := len(s.view.Nodes)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"active": active})
}

func (s *Server) handleRunning(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Running bool `json:"running"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid running request")
		return
	}
	s.engine.SetRunning(req.Running)
	writeJSON(w, http.StatusOK, map[string]any{"running": req.Running})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid select request")
		return
	}
	if req.ID == "" {
		s.engine.ClearSelection()
	} else {
		s.engine.Select(req.ID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"selected": s.engine.Selected()})
}

func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string  `json:"id"`
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
		Phase string  `json:"phase"` // begin, move, end
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid drag request")
		return
	}

	switch req.Phase {
	case "begin":
		s.engine.BeginDrag(req.ID)
		s.engine.Drag(req.ID, req.X, req.Y)
	case "move":
		s.engine.Drag(req.ID, req.X, req.Y)
	case "end":
		s.engine.EndDrag(req.ID)
	default:
		httpError(w, http.StatusBadRequest, fmt.Sprintf("unknown drag phase: %s", req.Phase))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

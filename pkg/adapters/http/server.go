package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/program"
	"github.com/aretw0/turing/pkg/tape"
)

// DefaultMaxSteps caps runs whose request sets no limit, or a larger one.
const DefaultMaxSteps = 100_000

// DefaultBlank is the blank symbol of sparse tapes when the request names none.
const DefaultBlank = "_"

const maxBodyBytes = 1 << 20

// Server runs programs submitted over HTTP. States and symbols are strings.
type Server struct {
	maxSteps int
	timeout  time.Duration
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics
}

// Option configures the Server.
type Option func(*Server)

// WithMaxSteps sets the step cap applied to every run.
func WithMaxSteps(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}

// WithTimeout bounds the wall time of a single run. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.timeout = d
	}
}

// WithLogger sets the logger used for requests and machines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a server with its own metrics registry.
func NewServer(opts ...Option) *Server {
	s := &Server{
		maxSteps: DefaultMaxSteps,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = observability.NewMetrics(s.registry)
	return s
}

// NewHandler creates a new HTTP handler serving the run API.
func NewHandler(opts ...Option) http.Handler {
	return NewServer(opts...).Handler()
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/v1/info", s.GetInfo)
	r.Post("/v1/run", s.Run)
	r.Post("/v1/validate", s.Validate)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RunRequest is the body of POST /v1/run.
type RunRequest struct {
	// Program is a rule dump, in the same shape (and with the same aliases)
	// as the JSON files read by program.LoadJSON.
	Program  any     `json:"program"`
	Tape     []any   `json:"tape"`
	Position int     `json:"position"`
	State    *string `json:"state,omitempty"`
	Sparse   bool    `json:"sparse"`
	Blank    *string `json:"blank,omitempty"`
	MaxSteps int     `json:"max_steps"`
}

// RunResponse is the machine after the run. Offset is the tape position of Tape[0].
type RunResponse struct {
	RunID    string   `json:"run_id"`
	State    string   `json:"state"`
	Position int      `json:"position"`
	Cycles   int      `json:"cycles"`
	Offset   int      `json:"offset"`
	Tape     []string `json:"tape"`
	Halted   bool     `json:"halted"`
	Error    string   `json:"error,omitempty"`
	Kind     string   `json:"kind,omitempty"`
}

// ValidateRequest is the body of POST /v1/validate.
type ValidateRequest struct {
	Program any `json:"program"`
}

// Run handles the POST /v1/run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Run: Invalid request body", "error", err)
		return
	}

	p, err := compileProgram(body.Program)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid program: %v", err), http.StatusBadRequest)
		return
	}

	start := ""
	switch {
	case body.State != nil:
		start = *body.State
	default:
		q, ok := p.Initial()
		if !ok {
			http.Error(w, "Invalid program: no initial state and no state in request", http.StatusBadRequest)
			return
		}
		start = q.Value()
	}

	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID)

	tp := s.newTape(body)
	m := turing.New(turing.NewDriver(start, tp),
		turing.WithLogger(logger),
		turing.WithLifecycleHooks(s.metrics.Hooks()),
	)
	m.Load(p)

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	runner := &turing.Runner[string, string]{MaxSteps: s.stepLimit(body.MaxSteps)}
	res, runErr := runner.Run(ctx, m)

	resp := RunResponse{
		RunID:    runID,
		State:    res.State,
		Position: res.Position,
		Cycles:   res.Cycles,
		Tape:     res.Cells,
		Halted:   res.Status == domain.StatusHalted,
	}
	if sp, ok := tp.(*tape.Sparse[string]); ok {
		if lo, _, written := sp.Bounds(); written {
			resp.Offset = lo
		}
	}

	status := http.StatusOK
	if runErr != nil {
		resp.Error = runErr.Error()
		resp.Kind = domain.ErrorKind(runErr)
		status = http.StatusUnprocessableEntity
		logger.Info("run ended without halting", "kind", resp.Kind, "cycles", resp.Cycles)
		if errors.Is(runErr, domain.ErrExitWithoutHalting) {
			s.metrics.Errors.WithLabelValues(domain.KindExitWithoutHalting).Inc()
		}
	}
	writeJSON(w, s.logger, status, resp)
}

// Validate handles the POST /v1/validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Validate: Invalid request body", "error", err)
		return
	}

	p, err := compileProgram(body.Program)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid program: %v", err), http.StatusBadRequest)
		return
	}

	report := validator.Validate(p)
	if report.Findings == nil {
		report.Findings = []validator.Finding{}
	}
	writeJSON(w, s.logger, http.StatusOK, struct {
		Valid bool `json:"valid"`
		validator.Report
	}{report.OK(), report})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /v1/info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]any{
		"app":       "turing-http",
		"version":   turing.Version,
		"max_steps": s.maxSteps,
	})
}

func (s *Server) stepLimit(requested int) int {
	if requested <= 0 || requested > s.maxSteps {
		return s.maxSteps
	}
	return requested
}

func (s *Server) newTape(body RunRequest) ports.Tape[string] {
	cells := make([]string, len(body.Tape))
	for i, c := range body.Tape {
		cells[i] = fmt.Sprint(c)
	}

	if body.Sparse {
		blank := DefaultBlank
		if body.Blank != nil {
			blank = *body.Blank
		}
		t := tape.NewSparse(blank, cells...)
		t.Seek(body.Position)
		return t
	}

	var t *tape.Bounded[string]
	if body.Blank != nil {
		t = tape.NewBoundedBlank(*body.Blank, cells...)
	} else {
		t = tape.NewBounded(cells...)
	}
	t.Seek(body.Position)
	return t
}

func compileProgram(tree any) (*program.Program[string, string], error) {
	if tree == nil {
		return nil, errors.New("missing program")
	}
	cfg, err := program.DecodeConfig[string, string](tree)
	if err != nil {
		return nil, err
	}
	return program.New(cfg)
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/copyrightchain/ai-verifier/internal/application/analysis"
	domain "github.com/copyrightchain/ai-verifier/internal/domain/analysis"
	"github.com/copyrightchain/ai-verifier/internal/middleware"
)

// ServiceName appears in the health payload and startup logs.
const ServiceName = "CopyrightChain AI Verifier"

// Options tunes transport-level behaviour.
type Options struct {
	Version            string
	RateLimitCapacity  int
	RateLimitPerSecond int
}

type Router struct {
	svc     *appanalysis.Service
	version string
}

// NewRouter wires the analysis service behind the HTTP surface.
func NewRouter(svc *appanalysis.Service, opts Options) http.Handler {
	r := &Router{svc: svc, version: opts.Version}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
	}))
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Logging)
	mux.Use(middleware.CountRequests)
	if opts.RateLimitCapacity > 0 {
		mux.Use(middleware.RateLimit(opts.RateLimitCapacity, opts.RateLimitPerSecond))
	}

	mux.Get("/health", r.handleHealth)
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Post("/analyze-artwork", r.wrap(r.handleAnalyze))
	mux.Get("/analysis/{ipfsHash}", r.wrap(r.handleCachedAnalysis))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap maps handler errors onto the response contract: a missing identifier
// is the caller's fault, anything else that escapes the degrade policy is a
// generic service failure.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, domain.ErrMissingObjectID) {
				writeJSON(w, http.StatusBadRequest, errorResponse{
					Success: false,
					Error:   err.Error(),
				})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Success: false,
				Error:   "AI analysis service temporarily unavailable",
			})
		}
	}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Endpoints []string  `json:"endpoints"`
}

type analyzeResponse struct {
	Success         bool           `json:"success"`
	IPFSHash        string         `json:"ipfsHash"`
	ArtworkTitle    string         `json:"artworkTitle"`
	FetchedFromIPFS bool           `json:"fetchedFromIPFS"`
	Timestamp       time.Time      `json:"timestamp"`
	AIAnalysis      domain.Verdict `json:"aiAnalysis"`
}

type cachedResponse struct {
	Success    bool           `json:"success"`
	IPFSHash   string         `json:"ipfsHash"`
	Cached     bool           `json:"cached"`
	Timestamp  time.Time      `json:"timestamp"`
	AIAnalysis domain.Verdict `json:"aiAnalysis"`
}

// GET /health
func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   r.version,
		Timestamp: r.svc.Clock.Now(),
		Endpoints: []string{"/analyze-artwork", "/analysis/:hash"},
	})
}

// POST /analyze-artwork
// Body: {"ipfsHash": "<content address>", "artworkTitle": "<optional>"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		IPFSHash     string `json:"ipfsHash"`
		ArtworkTitle string `json:"artworkTitle"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		// An unreadable body carries no identifier either way.
		return domain.ErrMissingObjectID
	}

	result, err := r.svc.Analyze(req.Context(), body.IPFSHash, middleware.SanitizeTitle(body.ArtworkTitle))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:         true,
		IPFSHash:        result.ObjectID,
		ArtworkTitle:    result.Title,
		FetchedFromIPFS: result.FetchedFromGateway,
		Timestamp:       r.svc.Clock.Now(),
		AIAnalysis:      result.Verdict,
	})
	return nil
}

// GET /analysis/{ipfsHash}
func (r *Router) handleCachedAnalysis(w http.ResponseWriter, req *http.Request) error {
	hash := chi.URLParam(req, "ipfsHash")

	result, err := r.svc.Recompute(req.Context(), hash)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, cachedResponse{
		Success:    true,
		IPFSHash:   result.ObjectID,
		Cached:     result.Cached,
		Timestamp:  r.svc.Clock.Now(),
		AIAnalysis: result.Verdict,
	})
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/resale-intel/internal/authenticity"
	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/research"
	"github.com/sells-group/resale-intel/internal/rules"
	"github.com/sells-group/resale-intel/internal/valuation"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		src, err := initRuleSource()
		if err != nil {
			return err
		}

		limiter := rate.NewLimiter(rate.Limit(cfg.Server.RatePerSecond), cfg.Server.RateBurst)
		router := buildRouter(src, limiter)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// buildRouter wires the API routes. The override source may be nil, in
// which case requests run against the built-in rules.
func buildRouter(src rules.OverrideSource, limiter *rate.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	if limiter != nil {
		r.Use(rateLimitMiddleware(limiter))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/decode", handleDecode(src))
		r.Post("/appraise", handleAppraise(src))
		r.Post("/verify", handleVerify(src))
		r.Post("/research", handleResearch(src))
	})

	return r
}

func rateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type decodeRequest struct {
	Category   model.CategoryID          `json:"category"`
	Identifier model.ExtractedIdentifier `json:"identifier"`
}

func handleDecode(src rules.OverrideSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req decodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !req.Category.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", req.Category))
			return
		}

		reg, err := rules.Build(r.Context(), src, req.Category, "")
		if err != nil {
			writeError(w, http.StatusInternalServerError, "rule registry unavailable")
			return
		}

		dv := decoder.NewDispatcher(reg.Routing()).DecodeIdentifier(req.Identifier, req.Category)
		if dv == nil {
			writeError(w, http.StatusUnprocessableEntity, "no decoder matched the identifier")
			return
		}
		writeJSON(w, http.StatusOK, dv)
	}
}

type appraiseRequest struct {
	Category model.CategoryID  `json:"category"`
	Brand    string            `json:"brand"`
	Fields   model.FieldStates `json:"fields"`
}

type appraiseResponse struct {
	Matches         []model.ValueDriverMatch `json:"matches"`
	PriceMultiplier float64                  `json:"price_multiplier"`
}

func handleAppraise(src rules.OverrideSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appraiseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !req.Category.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", req.Category))
			return
		}

		reg, err := rules.Build(r.Context(), src, req.Category, req.Brand)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "rule registry unavailable")
			return
		}

		engine := valuation.NewEngine(reg.Drivers())
		matches := engine.DetectValueDrivers(req.Fields, req.Category, req.Brand)
		writeJSON(w, http.StatusOK, appraiseResponse{
			Matches:         matches,
			PriceMultiplier: valuation.CalculateValueMultiplier(matches),
		})
	}
}

type verifyRequest struct {
	Category      model.CategoryID            `json:"category"`
	Brand         string                      `json:"brand"`
	Identifiers   []model.ExtractedIdentifier `json:"identifiers"`
	ExtractedText []string                    `json:"extracted_text"`
}

func handleVerify(src rules.OverrideSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !req.Category.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", req.Category))
			return
		}

		reg, err := rules.Build(r.Context(), src, req.Category, req.Brand)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "rule registry unavailable")
			return
		}

		engine := authenticity.NewEngine(reg.Markers())
		result := engine.CheckAuthenticity(req.Identifiers, req.ExtractedText, req.Category, req.Brand)
		writeJSON(w, http.StatusOK, result)
	}
}

func handleResearch(src rules.OverrideSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item research.Item
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !item.Category.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", item.Category))
			return
		}

		reg, err := rules.Build(r.Context(), src, item.Category, item.Brand)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "rule registry unavailable")
			return
		}

		snapshot, err := research.NewAssembler(reg).Research(item)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

package rest

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RouterConfig collects everything the HTTP surface serves.
type RouterConfig struct {
	Predictions *PredictionHandler
	Health      *HealthHandler
	Metrics     http.Handler

	CORSAllowedOrigins []string
	RateLimit          float64
	RateBurst          int

	Logger *slog.Logger
}

// NewRouter builds the mux and wraps it in the middleware stack. Health and
// metrics sit outside the rate limiter so probes and scrapes keep working
// under load.
func NewRouter(cfg RouterConfig) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /{$}", root)
	cfg.Predictions.RegisterRoutes(api)

	mux := http.NewServeMux()
	cfg.Health.RegisterRoutes(mux)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}
	mux.Handle("/", RateLimit(cfg.RateLimit, cfg.RateBurst)(api))

	handler := Chain(mux,
		RequestID(),
		Logging(cfg.Logger),
		Recovery(cfg.Logger),
		CORS(cfg.CORSAllowedOrigins),
	)
	return otelhttp.NewHandler(handler, "premiumd",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

type welcomeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

func root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{
		Message: "Welcome to InsureMate API.",
		Endpoints: map[string]string{
			"health":      "/health",
			"predict":     "/predict",
			"results":     "/results",
			"by_city":     "/results/city/{city}",
			"by_category": "/results/category/{category}",
			"recent":      "/results/recent",
			"statistics":  "/results/statistics",
			"metrics":     "/metrics",
		},
	})
}

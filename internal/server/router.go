package server

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/jumaanebey/tbd-property-management/auth"
	"github.com/jumaanebey/tbd-property-management/httpx"
	"github.com/jumaanebey/tbd-property-management/internal/config"
	"github.com/jumaanebey/tbd-property-management/internal/events"
	"github.com/jumaanebey/tbd-property-management/internal/gateway"
	"github.com/jumaanebey/tbd-property-management/internal/handlers"
	"github.com/jumaanebey/tbd-property-management/internal/middleware"
	"github.com/jumaanebey/tbd-property-management/internal/models"
	"github.com/jumaanebey/tbd-property-management/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	// RequireAuth checks that the session's user still exists.
	auth.SetUserVerifier(func(_ context.Context, uid uint) bool {
		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", uid).Limit(1).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Auth endpoints
	handlers.NewAuthHandler(db).Register(mux)

	paySvc := services.NewPaymentService(db, newCharger(cfg), events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))

	// Tenant profile
	th := handlers.NewTenantHandler(db)
	mux.Handle("/api/tenant", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet: th.Profile,
		http.MethodPut: th.Update,
	})))

	// Payments
	ph := handlers.NewPaymentHandler(db, paySvc)
	mux.Handle("/api/payments", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet: ph.List,
	})))
	mux.Handle("/api/payments/summary", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet: ph.Summary,
	})))
	mux.Handle("/api/payments/pay", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodPost: ph.Pay,
	})))
	mux.Handle("/api/payments/receipt", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet: ph.Receipt,
	})))

	// Maintenance
	mh := handlers.NewMaintenanceHandler(db)
	mux.Handle("/api/maintenance", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet:  mh.List,
		http.MethodPost: mh.Create,
	})))
	mux.Handle("/api/maintenance/update", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodPost: mh.Update,
	})))
	mux.Handle("/api/maintenance/stats", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet: mh.Stats,
	})))

	// Documents
	dh := handlers.NewDocumentHandler(db)
	mux.Handle("/api/documents", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet:  dh.List,
		http.MethodPost: dh.Create,
	})))

	// Notifications
	nh := handlers.NewNotificationHandler(db)
	mux.Handle("/api/notifications", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodGet: nh.List,
	})))
	mux.Handle("/api/notifications/read", protect(methodSwitch(map[string]http.HandlerFunc{
		http.MethodPost: nh.MarkRead,
	})))

	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		httpx.Text(w, http.StatusOK, "Tenant Portal API")
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(middleware.Recover(middleware.Logging(mux)))
}

func newCharger(cfg config.Config) gateway.Charger {
	if cfg.PaymentMode == "stripe" && cfg.StripeSecretKey != "" {
		return gateway.NewStripeCharger(cfg.StripeSecretKey)
	}
	return gateway.NewMockCharger(0.95)
}

// protect wraps a handler with session parsing plus the auth requirement.
func protect(h http.Handler) http.Handler {
	return auth.Middleware(auth.RequireAuth(h))
}

// methodSwitch dispatches by HTTP method and answers 405 with an Allow
// header otherwise.
func methodSwitch(byMethod map[string]http.HandlerFunc) http.Handler {
	methods := make([]string, 0, len(byMethod))
	for m := range byMethod {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	allow := strings.Join(methods, ",")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := byMethod[r.Method]; ok {
			h(w, r)
			return
		}
		w.Header().Set("Allow", allow)
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	})
}

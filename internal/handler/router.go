package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/recruitme/recruitme-go/internal/metrics"
	"github.com/recruitme/recruitme-go/internal/middleware"
	"github.com/recruitme/recruitme-go/internal/service"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Auth          *service.AuthService
	Companies     *service.CompanyService
	Programs      *service.ProgramService
	Enrollments   *service.EnrollmentService
	SavedPrograms *service.SavedProgramService

	Tokens      middleware.TokenVerifier
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger
	FrontendURL string

	// TrustProxy takes client addresses from X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool

	// Metrics and Gatherer are optional; /metrics is only mounted with a Gatherer.
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
}

// NewRouter builds the API router.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var events AuthRecorder
	if d.Metrics != nil {
		events = d.Metrics
	}

	authHandler := NewAuthHandler(d.Auth, events)
	companyHandler := NewCompanyHandler(d.Companies, d.Programs, events)
	programHandler := NewProgramHandler(d.Programs)
	enrollmentHandler := NewEnrollmentHandler(d.Enrollments)
	savedHandler := NewSavedProgramHandler(d.SavedPrograms)
	systemHandler := NewSystemHandler()

	requireAuth := middleware.JWTAuth(d.Tokens)
	limit := func(next http.Handler) http.Handler { return next }
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Middleware()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	if d.FrontendURL != "" {
		r.Use(middleware.CORS(d.FrontendURL))
	}

	r.NotFound(systemHandler.HandleNotFound)
	r.MethodNotAllowed(systemHandler.HandleMethodNotAllowed)

	r.Get("/", systemHandler.HandleIndex)
	r.Get("/health", systemHandler.HandleHealth)
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(d.Gatherer))
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(limit).Post("/signup", authHandler.HandleSignup)
		r.With(limit).Post("/login", authHandler.HandleLogin)

		r.With(requireAuth).Get("/profile", authHandler.HandleProfile)
		r.With(requireAuth).Put("/profile", authHandler.HandleUpdateProfile)
	})

	r.Route("/companies", func(r chi.Router) {
		r.With(limit).Post("/register", companyHandler.HandleRegister)
		r.With(limit).Post("/login", companyHandler.HandleLogin)

		r.With(requireAuth).Get("/me", companyHandler.HandleMe)
		r.With(requireAuth).Get("/me/programs", companyHandler.HandleMyPrograms)
	})

	r.Route("/programs", func(r chi.Router) {
		r.Get("/", programHandler.HandleList)
		r.Get("/{id}", programHandler.HandleGet)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", programHandler.HandleCreate)
			r.Put("/{id}", programHandler.HandleUpdate)
			r.Delete("/{id}", programHandler.HandleDelete)
		})
	})

	r.Route("/enrollments", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", enrollmentHandler.HandleEnroll)
		r.Get("/my", enrollmentHandler.HandleListMine)
		r.Delete("/{id}", enrollmentHandler.HandleCancel)
	})

	r.Route("/saved-programs", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", savedHandler.HandleSave)
		r.Get("/my", savedHandler.HandleListMine)
		r.Delete("/{id}", savedHandler.HandleUnsave)
	})

	return r
}

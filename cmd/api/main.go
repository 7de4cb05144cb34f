// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/dwellfix/dwellfix/internal/auth"
	"github.com/dwellfix/dwellfix/internal/config"
	"github.com/dwellfix/dwellfix/internal/email"
	"github.com/dwellfix/dwellfix/internal/handler"
	"github.com/dwellfix/dwellfix/internal/invite"
	"github.com/dwellfix/dwellfix/internal/middleware"
	"github.com/dwellfix/dwellfix/internal/repository"
	"github.com/dwellfix/dwellfix/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)

	// Initialize identity verification
	verifier := auth.NewVerifier(cfg.Identity.Secret, cfg.Identity.Issuer, cfg.Identity.ExpiryPeriod)

	// Initialize invite code generation
	codes := invite.NewGenerator(cfg.Invite.CodeLength, cfg.Invite.MaxAttempts)

	// Initialize email service. Running without a provider is allowed; role
	// invites then return an error instead of sending.
	emailService, err := setupEmail(cfg)
	if err != nil {
		return fmt.Errorf("setting up email service: %w", err)
	}
	if emailService == nil {
		logger.Warn("no email provider configured, role invites disabled")
	}

	// Initialize services
	companyService := service.NewCompanyService(companyRepo, codes, emailService, cfg.BaseURL+"/signup")
	profileService := service.NewProfileService(profileRepo, companyRepo, codes)
	propertyService := service.NewPropertyService(propertyRepo)
	workOrderService := service.NewWorkOrderService(workOrderRepo)

	// Initialize handlers
	companyHandler := handler.NewCompanyHandler(companyService)
	profileHandler := handler.NewProfileHandler(profileService, !cfg.IsProduction())
	propertyHandler := handler.NewPropertyHandler(propertyService)
	workOrderHandler := handler.NewWorkOrderHandler(workOrderService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(middleware.HTTPMetrics())
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Protected API routes. Every data route requires a verified identity
	// token; per-company and per-user routes additionally verify the parent
	// record exists.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(verifier))

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.List)
			r.Post("/", companyHandler.Create)
			r.Put("/", companyHandler.Update)
			r.Get("/roles", companyHandler.AllRoles)
			r.Get("/roles/{code}", companyHandler.RoleByCode)
			r.Get("/{id}", companyHandler.Get)
			r.Put("/{id}", companyHandler.Update)
			r.Delete("/{id}", companyHandler.Delete)
			r.Get("/{id}/roles", companyHandler.Roles)
			r.Post("/{id}/roles", companyHandler.CreateRole)
			r.Post("/{id}/roles/{roleID}/invite", companyHandler.Invite)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", propertyHandler.List)
			r.Post("/", propertyHandler.Create)
			r.Put("/", propertyHandler.Update)
			r.Get("/{id}", propertyHandler.Get)
			r.Put("/{id}", propertyHandler.Update)
			r.Delete("/{id}", propertyHandler.Delete)
		})

		r.Route("/company", func(r chi.Router) {
			r.Post("/new", profileHandler.CreateWithNewCompany)
			r.Post("/user/{code}", profileHandler.CreateWithCode)
			r.Put("/user/{code}", profileHandler.Assign)

			r.Route("/{companyID}", func(r chi.Router) {
				r.Use(middleware.CompanyCheck(companyRepo, !cfg.IsProduction()))

				r.Get("/users", profileHandler.CompanyUsers)
				r.Post("/users", profileHandler.Create)
				r.Get("/properties", propertyHandler.ByCompany)
				r.Get("/orders", workOrderHandler.ByCompany)
				r.Get("/orders/{id}", workOrderHandler.Get)

				r.Route("/user/{userID}", func(r chi.Router) {
					r.Use(middleware.UserCheck(profileRepo))

					r.Get("/", profileHandler.CompanyUser)
					r.Put("/", profileHandler.Update)
					r.Delete("/", profileHandler.Delete)
				})
			})
		})

		r.Route("/workOrders", func(r chi.Router) {
			r.Get("/", workOrderHandler.ListMine)
			r.Post("/", workOrderHandler.Create)
			r.Put("/", workOrderHandler.Update)
			r.Get("/{id}", workOrderHandler.Get)
			r.Put("/{id}", workOrderHandler.Update)
			r.Delete("/{id}", workOrderHandler.Delete)

			r.Route("/{id}/comments", func(r chi.Router) {
				r.Get("/", workOrderHandler.Comments)
				r.Post("/", workOrderHandler.AddComment)
				r.Put("/{commentID}", workOrderHandler.UpdateComment)
				r.Delete("/{commentID}", workOrderHandler.DeleteComment)
			})

			r.Route("/{id}/images", func(r chi.Router) {
				r.Get("/", workOrderHandler.Images)
				r.Post("/", workOrderHandler.AddImage)
				r.Delete("/{imageID}", workOrderHandler.DeleteImage)
			})
		})

		// Singular alias kept for older clients.
		r.Get("/workOrder/{id}", workOrderHandler.Get)

		r.Get("/property/{propertyID}/orders", workOrderHandler.ByProperty)
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "env", cfg.Environment)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// setupEmail picks the configured provider, preferring Sendgrid. Returns nil
// when neither provider is configured.
func setupEmail(cfg *config.Config) (*email.Service, error) {
	switch {
	case cfg.Sendgrid.APIKey != "":
		return email.NewService(cfg, email.ProviderSendgrid)
	case cfg.SMTP.Host != "":
		return email.NewService(cfg, email.ProviderSMTP)
	default:
		return nil, nil
	}
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"ok":false,"error":"internal server error"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Entry point. Loads configuration, connects to Postgres, runs migrations,
// wires the feature services and handlers together, and serves the HTTP API
// with graceful shutdown.
//
// @title EduBackend API
// @version 1.0
// @description Backend for an educational platform: accounts, courses, audit logs, recommendations and AI helpers.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/shipekarrohit/backend-project/ai"
	"github.com/shipekarrohit/backend-project/apperror"
	"github.com/shipekarrohit/backend-project/audit"
	"github.com/shipekarrohit/backend-project/auth"
	"github.com/shipekarrohit/backend-project/config"
	"github.com/shipekarrohit/backend-project/courses"
	"github.com/shipekarrohit/backend-project/db"
	_ "github.com/shipekarrohit/backend-project/docs" // Generated Swagger docs
	"github.com/shipekarrohit/backend-project/recommendations"
)

func main() {
	// .env is a development convenience. In production the variables are set
	// directly in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Manual dependency injection: services get the pool and config, handlers
	// get the services behind small interfaces.
	tokens := auth.NewTokenService(*cfg.Auth)
	authService := auth.NewAuthService(pool, tokens)
	recorder := audit.NewRecorder(pool, logger)

	authHandlers := auth.NewHandlers(authService, recorder)
	logHandlers := audit.NewHandlers(audit.NewLogService(pool))
	courseHandlers := courses.NewHandlers(courses.NewCourseService(pool), recorder)
	recHandlers := recommendations.NewHandlers(recommendations.NewService(pool))
	aiHandlers := ai.NewHandlers(recorder)

	authenticate := auth.Authenticate(tokens, authService)
	teacherOnly := auth.Authorize(auth.RoleTeacher)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that answers in the standard envelope. Panic values are
	// echoed back only outside production.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered", "panic", rvr, "path", req.URL.Path)
					message := "Something went wrong!"
					if !cfg.Server.IsProduction() {
						message = fmt.Sprintf("%v", rvr)
					}
					auth.WriteError(ww, req, apperror.NewInternalError(message, nil))
				}
			}()
			next.ServeHTTP(ww, req)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		auth.WriteJSON(w, http.StatusNotFound, auth.Envelope{Success: false, Message: "Route not found"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		auth.WriteSuccess(w, http.StatusOK, "Server is running", map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.With(authenticate).Get("/profile", authHandlers.HandleGetProfile())
	})

	r.Route("/api/courses", func(r chi.Router) {
		// Reads are public, writes need an authenticated teacher.
		r.Get("/", courseHandlers.HandleList())
		r.Get("/{id}", courseHandlers.HandleGet())

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(teacherOnly)
			r.Post("/", courseHandlers.HandleCreate())
			r.Put("/{id}", courseHandlers.HandleUpdate())
			r.Delete("/{id}", courseHandlers.HandleDelete())
		})
	})

	r.Route("/api/logs", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(teacherOnly)
		r.Get("/", logHandlers.HandleListLogs())
	})

	r.Route("/api/recommendations", func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/{userId}", recHandlers.HandleGetRecommendations())
	})

	r.Route("/api/ai", func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/summarize", aiHandlers.HandleSummarize())
		r.Post("/quiz", aiHandlers.HandleQuiz())
		r.Post("/transcribe", aiHandlers.HandleTranscribe())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	// Let in-flight audit writes finish before the pool closes.
	recorder.Close()
	log.Println("Server stopped gracefully")
}

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fitquest/FitQuest_Go/internal/challenge"
	"github.com/fitquest/FitQuest_Go/internal/handler"
	"github.com/fitquest/FitQuest_Go/internal/logger"
	"github.com/fitquest/FitQuest_Go/internal/meal"
	"github.com/fitquest/FitQuest_Go/internal/metrics"
	"github.com/fitquest/FitQuest_Go/internal/planner"
	"github.com/fitquest/FitQuest_Go/internal/progress"
	"github.com/fitquest/FitQuest_Go/internal/rpg"
	"github.com/fitquest/FitQuest_Go/internal/user"
	"github.com/fitquest/FitQuest_Go/internal/workout"
)

// Services bundles everything the router needs
type Services struct {
	User      user.Service
	Workout   workout.Service
	Meal      meal.Service
	Progress  progress.Service
	Challenge challenge.Service
	RPG       rpg.Service
	Planner   planner.Service
}

type Server struct {
	httpServer *http.Server
	store      handler.HealthChecker
	services   Services
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, store handler.HealthChecker, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(trustedProxies, store, services),
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:    store,
		services: services,
	}
}

// NewRouter builds the full route tree with the middleware stack
func NewRouter(trustedProxies []string, store handler.HealthChecker, services Services) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(services.User))
			r.Post("/login", handler.HandleLogin(services.User))
			r.Get("/user/{id}", handler.HandleGetUser(services.User))
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", handler.HandleListWorkouts(services.Workout))
			r.Post("/", handler.HandleCreateWorkout(services.Workout))
			r.Get("/{id}", handler.HandleGetWorkout(services.Workout))
			r.Put("/{id}", handler.HandleUpdateWorkout(services.Workout))
			r.Delete("/{id}", handler.HandleDeleteWorkout(services.Workout))
			r.Get("/{id}/exercises", handler.HandleGetWorkoutExercises(services.Workout))
			r.Post("/{id}/exercises", handler.HandleAddWorkoutExercise(services.Workout))
			r.Delete("/{workoutId}/exercises/{exerciseId}", handler.HandleRemoveWorkoutExercise(services.Workout))
		})

		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", handler.HandleListExercises(services.Workout))
			r.Post("/", handler.HandleCreateExercise(services.Workout))
			r.Get("/{id}", handler.HandleGetExercise(services.Workout))
		})

		r.Route("/meals", func(r chi.Router) {
			r.Get("/", handler.HandleListMeals(services.Meal))
			r.Post("/", handler.HandleCreateMeal(services.Meal))
			r.Get("/{id}", handler.HandleGetMeal(services.Meal))
			r.Put("/{id}", handler.HandleUpdateMeal(services.Meal))
			r.Delete("/{id}", handler.HandleDeleteMeal(services.Meal))
		})

		r.Route("/progress", func(r chi.Router) {
			r.Post("/", handler.HandleCreateProgressRecord(services.Progress))
			r.Get("/{userId}", handler.HandleGetUserProgress(services.Progress))
		})

		r.Route("/challenges", func(r chi.Router) {
			r.Get("/", handler.HandleListChallenges(services.Challenge))
			r.Post("/", handler.HandleCreateChallenge(services.Challenge))
			r.Get("/{id}", handler.HandleGetChallenge(services.Challenge))
			r.Post("/{id}/join", handler.HandleJoinChallenge(services.Challenge))
			r.Delete("/{id}/leave", handler.HandleLeaveChallenge(services.Challenge))
			r.Get("/{id}/participants", handler.HandleGetChallengeParticipants(services.Challenge))
		})

		r.Get("/users/{id}/challenges", handler.HandleGetUserChallenges(services.Challenge))

		r.Route("/rpg", func(r chi.Router) {
			r.Route("/characters", func(r chi.Router) {
				r.Post("/", handler.HandleCreateCharacter(services.RPG))
				r.Get("/{id}", handler.HandleGetCharacter(services.RPG))
				r.Post("/{id}/xp", handler.HandleGrantXP(services.RPG))
			})
			r.Get("/users/{userId}/characters", handler.HandleGetUserCharacters(services.RPG))
			r.Get("/classes", handler.HandleGetClasses(services.RPG))
			r.Route("/quests", func(r chi.Router) {
				r.Get("/", handler.HandleListQuests(services.RPG))
				r.Post("/", handler.HandleCreateQuest(services.RPG))
			})
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/workout-plan", handler.HandleGenerateWorkoutPlan(services.Planner))
			r.Post("/diet-plan", handler.HandleGenerateDietPlan(services.Planner))
			r.Post("/form-analysis", handler.HandleAnalyzeForm(services.Planner))
			r.Post("/fitness-insights", handler.HandleGenerateInsights(services.Planner))
			r.Post("/fitness-question", handler.HandleFitnessQuestion(services.Planner))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

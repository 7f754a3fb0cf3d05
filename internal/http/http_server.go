package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/semaphore"

	"gitlab.com/codecamp-2025.net/internal/core/ports/primary"
	auth2 "gitlab.com/codecamp-2025.net/internal/core/services/auth"
	"gitlab.com/codecamp-2025.net/internal/core/services/exercise"
	execsvc "gitlab.com/codecamp-2025.net/internal/core/services/execution"
	"gitlab.com/codecamp-2025.net/internal/handlers"
	"gitlab.com/codecamp-2025.net/internal/handlers/auth"
	"gitlab.com/codecamp-2025.net/internal/handlers/execution"
	"gitlab.com/codecamp-2025.net/internal/handlers/exercises"
)

type ServiceProvider struct {
	executionService execsvc.IExecutionService
	exerciseService  exercise.IExerciseService

	ggAuth    auth2.IAuthService
	localAuth auth2.IAuthService

	// MaxConcurrent caps simultaneous sandbox executions across requests
	MaxConcurrent int
}

func NewServiceProvider(
	executionService execsvc.IExecutionService,
	exerciseService exercise.IExerciseService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
	maxConcurrent int,
) *ServiceProvider {
	return &ServiceProvider{
		executionService: executionService,
		exerciseService:  exerciseService,
		ggAuth:           ggAuth,
		localAuth:        localAuth,
		MaxConcurrent:    maxConcurrent,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	auth.NewHandler().RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})

	api := r.PathPrefix("/api").Subrouter()
	api.Use(handlers.New().JWTMiddleware)

	// One ceiling for every route that launches sandbox containers:
	// free-form execution, submission grading and reference comparison
	// all draw permits from the same semaphore.
	maxConcurrent := s.ServiceProvider.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	sem := semaphore.NewWeighted(int64(maxConcurrent))

	execution.
		NewExecutionHandler(s.ServiceProvider.executionService, sem, s.logger).
		RegisterRoutes(api)
	exercises.
		NewExerciseHandler(s.ServiceProvider.exerciseService, sem, s.logger).
		RegisterRoutes(api)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

}

func (s *Server) Stop() {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Failed to shut down http server", "error", err)
	}
}

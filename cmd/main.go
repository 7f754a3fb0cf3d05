package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codecamp-2025.net/internal/adapter/crypto"
	"gitlab.com/codecamp-2025.net/internal/adapter/docker"
	"gitlab.com/codecamp-2025.net/internal/adapter/postgres/exerciserepository"
	"gitlab.com/codecamp-2025.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/codecamp-2025.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codecamp-2025.net/internal/adapter/redis/attemptport"
	"gitlab.com/codecamp-2025.net/internal/config"
	auth2 "gitlab.com/codecamp-2025.net/internal/core/services/auth"
	"gitlab.com/codecamp-2025.net/internal/core/services/exercise"
	"gitlab.com/codecamp-2025.net/internal/core/services/execution"
	"gitlab.com/codecamp-2025.net/internal/core/services/hint"
	"gitlab.com/codecamp-2025.net/internal/core/services/validation"
	logger2 "gitlab.com/codecamp-2025.net/internal/global/logger"
	http2 "gitlab.com/codecamp-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting code execution service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password, // no password set
		DB:       sysCfg.RedisConfig.DB,       // use default DB
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	runner := docker.NewSandboxRunner(sysCfg.SandboxConfig, logger)
	exerciseRepo := exerciserepository.NewExerciseRepository(db, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	attemptCache := attemptport.NewAttemptCache(redisClient, logger)
	userPort := userrepository.New(db, logger)

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	executionSvc := execution.NewExecutionService(runner, sysCfg.SandboxConfig, logger)
	validationSvc := validation.NewValidationService(executionSvc, sysCfg.SandboxConfig, logger)
	hintSvc := hint.NewHintService()
	exerciseSvc := exercise.NewExerciseService(exerciseRepo, submissionRepo, attemptCache, validationSvc, hintSvc, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(executionSvc, exerciseSvc, ggAuth, localAuth, int(sysCfg.SandboxConfig.MaxConcurrent))

	//server
	httServer := http2.NewServer(8082, "codeExecution", *serviceProvider, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	ctxBg, stopSweeper := context.WithCancel(context.Background())
	httServer.Start(ctxBg)
	runner.StartSweeper(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	stopSweeper()
	httServer.Stop()

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}

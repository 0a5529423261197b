package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/tourhub/backend/internal/api/http"
	"github.com/tourhub/backend/internal/cache"
	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/db"
	"github.com/tourhub/backend/internal/queue/asynqserver"
	"github.com/tourhub/backend/internal/queue/client"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/internal/server"
	"github.com/tourhub/backend/internal/service"
	"github.com/tourhub/backend/internal/storage"
	"github.com/tourhub/backend/internal/worker"
	"github.com/tourhub/backend/pkg/auth"
	"github.com/tourhub/backend/pkg/email/smtp"
	"github.com/tourhub/backend/pkg/hash"
	"github.com/tourhub/backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Info("starting tourhub api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	objectStorage, err := storage.NewMinio(cfg.Storage)
	if err != nil {
		appLogger.Error("object storage creation failed", zap.Error(err))
		os.Exit(1)
	}

	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation failed", zap.Error(err))
		return
	}

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Repos:        repos,
		Storage:      objectStorage,
		PresignCache: cache.NewPresignCache(redisClient, cfg.Storage.PresignTTL),
		Hasher:       hasher,
		TokenManager: tokenManager,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg, objectStorage)

	// Queue client + worker for enquiry notification emails
	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer func() {
		if err := asynqClient.Close(); err != nil {
			appLogger.Error("error when closing asynq client", zap.Error(err))
		}
	}()
	client.SetClient(asynqClient)

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})
	queueSrv, queueMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := queueSrv.Run(queueMux); err != nil {
			appLogger.Error("error occurred while running queue server", zap.Error(err))
		}
	}()

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	queueSrv.Shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nossumusTM/vinvinio-sub003/internal/config"
	"github.com/nossumusTM/vinvinio-sub003/internal/handler"
	"github.com/nossumusTM/vinvinio-sub003/internal/intent"
	"github.com/nossumusTM/vinvinio-sub003/internal/repository"
	"github.com/nossumusTM/vinvinio-sub003/internal/service"
	"github.com/nossumusTM/vinvinio-sub003/internal/session"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	defer logger.Sync()
	sugar := logger.Sugar()

	sugar.Infow("vinvinio concierge", "version", Version, "build_time", BuildTime, "git_commit", GitCommit)

	gin.SetMode(cfg.Server.GinMode)

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer repo.Close()
	sugar.Info("connected to PostgreSQL")

	sessions, cleanup, err := newSessionStore(cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to initialize session store", "error", err)
	}
	defer cleanup()

	ranker := service.NewRanker(cfg.Ranking)
	chatService := service.NewChatService(repo, repo, repo, intent.NewParser(), ranker, cfg.Search, sugar)

	chatHandler := handler.NewChatHandler(chatService, sessions, sugar)
	feedbackHandler := handler.NewFeedbackHandler(chatService)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "concierge-engine",
			"version": Version,
		})
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/concierge/chat", chatHandler.Chat)
		apiV1.GET("/listings/:slug", chatHandler.GetListing)
		apiV1.POST("/feedback", feedbackHandler.Submit)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	sugar.Infow("starting server", "addr", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			sugar.Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("shutting down")
}

func newLogger(cfg config.LoggingConfig) *zap.Logger {
	var logger *zap.Logger
	var err error
	if cfg.Format == "console" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func newSessionStore(cfg *config.Config, sugar *zap.SugaredLogger) (session.Store, func(), error) {
	ttl := session.DefaultTTL
	if cfg.Session.TTLMinutes > 0 {
		ttl = time.Duration(cfg.Session.TTLMinutes) * time.Minute
	}

	switch session.StoreType(cfg.Session.Store) {
	case session.RedisStore:
		store, err := session.NewRedis(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, ttl)
		if err != nil {
			return nil, nil, err
		}
		sugar.Infow("session store ready", "backend", "redis", "addr", cfg.Redis.Addr)
		return store, func() { store.Close() }, nil
	default:
		sugar.Infow("session store ready", "backend", "memory")
		return session.NewInMemory(ttl), func() {}, nil
	}
}

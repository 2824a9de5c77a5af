package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/collectif-avenir/campaign-api/internal/api"
	"github.com/collectif-avenir/campaign-api/internal/api/handler"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
	"github.com/collectif-avenir/campaign-api/internal/core/service"
	"github.com/collectif-avenir/campaign-api/internal/infrastructure/config"
	redisdb "github.com/collectif-avenir/campaign-api/internal/infrastructure/db/redis"
	"github.com/collectif-avenir/campaign-api/internal/infrastructure/session"
	"github.com/collectif-avenir/campaign-api/internal/infrastructure/storage/jsonfile"
	"github.com/collectif-avenir/campaign-api/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		lg := logger.Init(logger.Options{})
		lg.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	// --- Storage ---
	store, err := jsonfile.NewStore(cfg.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init failed")
	}
	userRepo := jsonfile.NewUserRepository(store)
	articleRepo := jsonfile.NewArticleRepository(store)
	messageRepo := jsonfile.NewMessageRepository(store)

	// --- Sessions ---
	var sessions ports.SessionStore
	var rdb *goredis.Client
	switch cfg.SessionStore {
	case "redis":
		rdb, err = redisdb.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL())
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis session store")
	default:
		sessions = session.NewMemoryStore(cfg.SessionTTL())
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessions, log)
	userService := service.NewUserService(userRepo, log)
	articleService := service.NewArticleService(articleRepo, log)
	contactService := service.NewContactService(messageRepo, log)
	uploadService, err := service.NewUploadService(cfg.UploadsDir, cfg.MaxUploadBytes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("uploads init failed")
	}

	// --- Router & HTTP server ---
	e := api.NewRouter(
		api.Services{
			Auth:     authService,
			Users:    userService,
			Articles: articleService,
			Contact:  contactService,
			Uploads:  uploadService,
		},
		api.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			UploadsDir:     cfg.UploadsDir,
			Cookie: handler.CookieConfig{
				Secure: cfg.CookieSecure,
				TTL:    cfg.SessionTTL(),
			},
			Redis: rdb,
		},
		log,
	)

	server := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Strs("allowed_origins", cfg.AllowedOrigins).Msg("api listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

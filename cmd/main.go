package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"lawmanBack/internal/config"
	"lawmanBack/internal/database"
	"lawmanBack/internal/logger"
	"lawmanBack/internal/repositories"
	"lawmanBack/internal/services"
	"lawmanBack/utils"
)

func main() {
	envErr := godotenv.Load()

	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	addr := flag.String("addr", "", "HTTP network address (overrides PORT)")
	store := flag.String("store", "", "store driver: mongo or memory (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		bootLog := logger.New(config.LogConfig{})
		bootLog.Fatal().Err(err).Msg("load config")
	}
	if *store != "" {
		cfg.Database.Driver = *store
	}

	log := logger.New(cfg.Log)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("no .env file loaded")
	}

	tokens, err := utils.NewManager(cfg.Auth.SecretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serviceRepo, reviewRepo, closeStore, err := openStore(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}

	app := initializeApp(serviceRepo, reviewRepo, tokens, cfg, log)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization", cfg.Auth.Header},
	})

	listen := cfg.Addr()
	if *addr != "" {
		listen = *addr
	}
	srv := &http.Server{
		Addr:         listen,
		Handler:      c.Handler(app.routes()),
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", listen).Str("store", cfg.Database.Driver).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("listen")
	}

	closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := closeStore(closeCtx); err != nil {
		log.Error().Err(err).Msg("close store")
	}
	log.Info().Msg("server stopped")
}

// openStore returns the repositories for the configured driver and the
// function releasing them.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (services.ServiceStore, services.ReviewStore, func(context.Context) error, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return &repositories.MemoryServiceRepository{}, &repositories.MemoryReviewRepository{},
			func(context.Context) error { return nil }, nil
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info().Str("database", cfg.Name).Msg("connected to mongo")
	return &repositories.ServiceRepository{Collection: db.Services()},
		&repositories.ReviewRepository{Collection: db.Reviews()},
		db.Close, nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"car-shopper/config"
	httpLayer "car-shopper/http"
	"car-shopper/logger"
	"car-shopper/repository"
	"car-shopper/service"
)

func main() {
	cfg, err := config.Load(".env")
	log := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("Server exited")
}

func run(cfg config.Config, log zerolog.Logger) error {
	cars, err := repository.NewCarRepositoryMemory()
	if err != nil {
		return err
	}

	cache, closeCache, err := newCache(cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	loanService := service.NewLoanService(repository.NewLoanRepositoryMemory(), cache)
	listingService := service.NewListingService(cars)
	comparisonService := service.NewComparisonService(cars, repository.NewComparisonRepositoryMemory())
	assistantService := service.NewAssistantService(repository.NewMessageRepositoryMemory())

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitTokens, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.Handlers{
		Loan:               httpLayer.NewLoanHandler(loanService),
		TermRecommendation: httpLayer.NewTermRecommendationHandler(service.NewTermRecommendationService()),
		Listing:            httpLayer.NewListingHandler(listingService),
		Comparison:         httpLayer.NewComparisonHandler(comparisonService),
		Assistant:          httpLayer.NewAssistantHandler(assistantService),
	}, rateLimiter, log)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

// newCache picks the quote cache backend. Redis must answer a ping at
// startup; the in-memory cache needs nothing.
func newCache(cfg config.Config, log zerolog.Logger) (repository.CacheRepository, func(), error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		log.Info().Msg("using in-memory quote cache")
		return repository.NewMemoryCache(), func() {}, nil
	}

	cache := repository.NewRedisCache(repository.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, nil, err
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("using redis quote cache")
	return cache, func() {
		if err := cache.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing redis")
		}
	}, nil
}

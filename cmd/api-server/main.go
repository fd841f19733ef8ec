package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinelog/database"
	"cinelog/internal/cache"
	"cinelog/internal/config"
	"cinelog/internal/http-api/handlers"
	"cinelog/internal/http-api/repository"
	"cinelog/internal/http-api/service"
	"cinelog/internal/middleware/ratelimit"
	"cinelog/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// The cache is optional: a dead redis degrades to direct reads.
	cch, err := cache.New(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL, logger)
	if err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
		cch = nil
	}

	store := storage.NewStore(cfg.UploadDir)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	seriesRepo := repository.NewSeriesRepository(db)
	episodeRepo := repository.NewEpisodeRepository(db)
	actorRepo := repository.NewActorRepository(db)
	directorRepo := repository.NewDirectorRepository(db)
	genreRepo := repository.NewGenresRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, tokenRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, logger)
	accountSvc := service.NewAccountService(userRepo, tokenRepo, logger)
	movieSvc := service.NewMovieService(movieRepo, store, cch, logger)
	seriesSvc := service.NewSeriesService(seriesRepo, store, cch, logger)
	episodeSvc := service.NewEpisodeService(episodeRepo, seriesRepo, cch, logger)
	actorSvc := service.NewActorService(actorRepo, store, logger)
	directorSvc := service.NewDirectorService(directorRepo, store, logger)
	genreSvc := service.NewGenresService(genreRepo, logger)
	commentSvc := service.NewCommentService(commentRepo, movieRepo, seriesRepo, cch, logger)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo, seriesRepo, cch, logger)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, movieRepo, seriesRepo, logger)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, movieRepo, seriesRepo, logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	limiter := ratelimit.NewPerIP(cfg.AuthRatePerSecond, cfg.AuthRateBurst)

	handlers.RegisterRoutes(engine, handlers.Handlers{
		Auth:      handlers.NewAuthHandler(authSvc, logger),
		Account:   handlers.NewAccountHandler(accountSvc, logger),
		Movie:     handlers.NewMovieHandler(movieSvc, logger),
		Series:    handlers.NewSeriesHandler(seriesSvc, logger),
		Episode:   handlers.NewEpisodeHandler(episodeSvc, logger),
		Actor:     handlers.NewActorHandler(actorSvc, logger),
		Director:  handlers.NewDirectorHandler(directorSvc, logger),
		Genre:     handlers.NewGenreHandler(genreSvc, logger),
		Comment:   handlers.NewCommentHandler(commentSvc, logger),
		Rating:    handlers.NewRatingHandler(ratingSvc, logger),
		Favorite:  handlers.NewFavoriteHandler(favoriteSvc, logger),
		Watchlist: handlers.NewWatchlistHandler(watchlistSvc, logger),
	}, authSvc, limiter, cfg.UploadDir)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: engine,
	}

	go func() {
		logger.Info("server listening", "port", cfg.HTTPPort, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

// Command server exposes the Spanish / Nasa Yuwe translator as a JSON
// REST API. See package api for the endpoints.
//
// The dictionary file is reloaded when it changes on disk (if watching
// is enabled) and on SIGHUP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nasayuwe/yuwe"
	"github.com/nasayuwe/yuwe/internal/api"
	"github.com/nasayuwe/yuwe/internal/cache"
	"github.com/nasayuwe/yuwe/internal/config"
	"github.com/nasayuwe/yuwe/internal/dictwatch"
	"github.com/nasayuwe/yuwe/internal/logging"
	"github.com/nasayuwe/yuwe/internal/store"
	"github.com/nasayuwe/yuwe/internal/translation"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	version   string
	buildDate string
	gitCommit string
)

func createCache(conf config.CacheConfig) (cache.Cache, string) {
	if !conf.Enabled() {
		log.Info().Msg("translation cache disabled")
		return cache.NewNullCache(), "none"
	}
	rc := cache.NewRedisCache(cache.RedisConf{
		Addr:     conf.RedisAddr,
		DB:       conf.RedisDB,
		Password: conf.Password,
		TTL:      conf.TTL,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", conf.RedisAddr).Msg("Redis not reachable, cache lookups will fail until it is")
	} else {
		log.Info().Str("addr", conf.RedisAddr).Int("db", conf.RedisDB).Msg("connected to Redis cache")
	}
	return rc, "redis"
}

func corsHandler(conf config.CORSConfig, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: config.SplitList(conf.AllowedOrigins),
		AllowedMethods: config.SplitList(conf.AllowedMethods),
		AllowedHeaders: config.SplitList(conf.AllowedHeaders),
		ExposedHeaders: []string{logging.RequestIDHeader},
		MaxAge:         conf.MaxAge,
	}).Handler(h)
}

func main() {
	configPath := flag.String("config", "", "path to YAML configuration (default: $CONFIG_PATH or ./config.yaml)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("yuwe server %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %s\n", err)
		os.Exit(1)
	}
	logFile, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %s\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	holder, err := dictwatch.New(cfg.Dictionary.Path, nil)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Dictionary.Path).Msg("failed to load dictionary")
	}
	resultCache, cacheKind := createCache(cfg.Cache)
	translator := translation.NewService(holder, resultCache)
	holder.OnReload(func(*yuwe.Engine) {
		translator.Invalidate(context.Background())
	})
	dictStore := store.New(cfg.Dictionary.Path)
	dictStore.OnChange(holder.Swap)

	router := api.NewRouter(&api.Deps{
		Engines:       holder,
		Translator:    translator,
		Store:         dictStore,
		MaxTextLength: cfg.Server.MaxTextLength,
		RateLimit:     cfg.Server.RateLimit,
		RateBurst:     cfg.Server.RateBurst,
		CacheKind:     cacheKind,
		Version: api.VersionInfo{
			Version:   version,
			BuildDate: buildDate,
			GitCommit: gitCommit,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)
	go func() {
		for range hupChan {
			log.Warn().Msg("received SIGHUP, reloading dictionary")
			if err := holder.Reload(); err != nil {
				log.Error().Err(err).Msg("failed to reload dictionary")
			}
		}
	}()

	srv := &http.Server{
		Handler:      corsHandler(cfg.CORS, router),
		Addr:         cfg.Server.Addr(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", srv.Addr).
			Int("entries", holder.Engine().Dictionary().Len()).
			Msg("starting to listen")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	})
	if cfg.Dictionary.Watch {
		g.Go(func() error {
			// a failing watcher must not take the server down
			if err := holder.Watch(gctx); err != nil {
				log.Error().Err(err).Msg("dictionary watcher stopped")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Send()
	}
	if rc, ok := resultCache.(*cache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis client")
		}
	}
	log.Info().Msg("graceful shutdown completed")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"figure-catalog/internal/catalog/service"
	"figure-catalog/internal/config"
	"figure-catalog/internal/store"
	serverhttp "figure-catalog/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	var st store.Store
	if cfg.DBPath != "" {
		var err error
		st, err = store.OpenSQLite(cfg.DBPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open store")
		}
		logger.Info().Str("path", cfg.DBPath).Msg("sqlite store")
	} else {
		st = store.NewMemory()
		logger.Info().Msg("in-memory store")
	}
	defer st.Close()

	mcfg := service.DefaultMatcherConfig()
	if cfg.MatchThreshold > 0 {
		mcfg.Threshold = cfg.MatchThreshold
	}
	if len(cfg.ExcludeKeywords) > 0 {
		mcfg.KeywordExclusions = cfg.ExcludeKeywords
	}
	if cfg.ExcludeSymbols == "-" {
		mcfg.SymbolPattern = ""
	} else if cfg.ExcludeSymbols != "" {
		mcfg.SymbolPattern = cfg.ExcludeSymbols
	}
	matcher, err := service.NewMatcher(st, mcfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("build matcher")
	}

	r := serverhttp.NewRouter(cfg, logger, st, matcher)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}

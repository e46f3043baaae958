package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/config"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/infra"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/pending"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/repository"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/router"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Structured logger: pretty in dev, JSON in prod
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to connect to database")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := router.Deps{DB: db}

	// Without Redis the server still sells: pending sales live in memory
	// (lost on restart) and no receipts are produced.
	rdb, err := infra.NewRedis(cfg.RedisURL)
	var pool *worker.Pool
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory pending sales and disabling receipts")
		deps.Pendentes = pending.NewMemoryRegistry()
	} else {
		deps.Redis = rdb
		deps.Pendentes = pending.NewRedisRegistry(rdb, cfg.PendingSaleTTL())

		// Worker handlers are wired here (composition root) so that the
		// pool has full access to all infrastructure dependencies.
		dispatcher := worker.NewDispatcher(rdb)
		deps.Dispatcher = dispatcher

		mailer := infra.NewMailer(cfg)
		vendaRepo := repository.NewVendaRepository(db)
		recibos := worker.NewReciboWorker(vendaRepo, dispatcher, mailer, cfg.StoreName, cfg.PDFStoragePath, cfg.Location())

		pool = worker.NewPool(rdb, cfg.MaxJobAttempts)
		pool.Handle(worker.QueueRecibo, recibos.Process)
		pool.Handle(worker.QueueEmail, worker.NewEmailWorker(mailer).Process)
		pool.Start(ctx, cfg.WorkerPoolSize)

		worker.StartReciboSweeper(ctx, worker.ReciboSweeperConfig{
			Vendas:     vendaRepo,
			Dispatcher: dispatcher,
		})
	}

	r := router.New(ctx, cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("env", cfg.Env).Msgf("sistema de vendas listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	// Stop workers after the last request so no new jobs are lost.
	cancel()
	if pool != nil {
		pool.Wait()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server exited")
}

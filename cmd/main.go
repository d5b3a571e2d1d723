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

	"github.com/rotisserie/eris"

	httpadapter "campaign-sim/internal/adapter/http"
	"campaign-sim/internal/adapter/memory"
	"campaign-sim/internal/adapter/oracle"
	"campaign-sim/internal/adapter/postgres"
	"campaign-sim/internal/adapter/usecase"
	"campaign-sim/internal/config"
	"campaign-sim/internal/config/configs"
	"campaign-sim/internal/core/channel"
	"campaign-sim/internal/core/port"
	"campaign-sim/internal/db"
)

// main is the entry point of the campaign simulation service. It loads
// configuration, selects the response oracle and run repository, optionally
// migrates and seeds the database, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	respOracle, err := newOracle(cfg.Oracle, logger)
	if err != nil {
		logger.Error("oracle setup error", slog.Any("error", err))
		return
	}

	var repo port.RunRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewRunRepository(pool)
	} else {
		logger.Warn("postgres disabled, runs are kept in memory")
		repo = memory.NewRunRepository()
	}

	sim := usecase.NewSimulationUseCase(respOracle, logger, usecase.DispatchOptions{
		ChunkSize:     cfg.Sim.ChunkSize,
		Concurrency:   cfg.Sim.Concurrency,
		BatchPause:    cfg.Sim.BatchPause,
		OracleTimeout: cfg.Oracle.Timeout,
	})
	svc := usecase.NewCampaignUseCase(sim, repo, channel.Default(), logger, usecase.TrialLimits{
		Default: cfg.Sim.DefaultTrials,
		Max:     cfg.Sim.MaxTrials,
	})

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, svc, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		}
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

func newOracle(cfg configs.Oracle, logger *slog.Logger) (port.ResponseOracle, error) {
	switch cfg.Provider {
	case configs.OracleOpenAI:
		if cfg.APIKey == "" {
			return nil, eris.New("ORACLE_API_KEY is required for the openai provider")
		}
		logger.Info("using openai response oracle", slog.String("model", cfg.Model))
		return oracle.NewOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, logger), nil
	case configs.OracleRandom, "":
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.Info("using random response oracle", slog.Uint64("seed", seed))
		return oracle.NewRandom(seed, oracle.DefaultWeights), nil
	default:
		return nil, eris.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/icarogtavares/counter-strike/internal/config"
	"github.com/icarogtavares/counter-strike/internal/domain/corpus"
	"github.com/icarogtavares/counter-strike/internal/domain/rating"
	"github.com/icarogtavares/counter-strike/internal/infrastructure/datasource/file"
	"github.com/icarogtavares/counter-strike/internal/infrastructure/datasource/memory"
	"github.com/icarogtavares/counter-strike/internal/platform/logging"
	"github.com/icarogtavares/counter-strike/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("service", cfg.ServiceName)
	logging.SetDefault(logger)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := buildSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("build corpus source", "error", err)
		os.Exit(1)
	}

	svc := usecase.NewDatasetService(source, rating.NewWindow(), logger)
	svc.SetTimeFilter(-1, cfg.LoadWindow)
	svc.SetGracePeriod(cfg.GracePeriod)
	svc.SetHveMod(cfg.HveMod)
	svc.SetNthHighest(cfg.NthHighest)

	result, err := svc.LoadData(ctx, cfg.VersionTimestamp)
	if err != nil {
		logger.Error("load dataset", "error", err)
		os.Exit(1)
	}

	for _, r := range result.Rosters {
		logger.Info("roster resolved",
			"id", r.ID,
			"name", r.Name,
			"matches", len(r.Matches),
			"events", len(r.Participations),
			"prize_winnings", r.PrizeWinnings(),
			"seeding_modifier", r.SeedingModifier,
		)
	}

	logger.Info("load complete",
		"matches", len(result.Matches),
		"events", len(result.Events),
		"rosters", len(result.Rosters),
	)
}

func buildSource(ctx context.Context, cfg config.Config, logger *logging.Logger) (corpus.Source, error) {
	if cfg.CorpusGlob == "" {
		logger.Info("no corpus glob configured, using built-in seed corpus")
		return memory.NewSource(memory.SeedEvents(), memory.SeedMatches()), nil
	}

	paths, err := filepath.Glob(cfg.CorpusGlob)
	if err != nil {
		return nil, err
	}

	source := file.NewSource(file.Config{
		Paths:      paths,
		MaxWorkers: cfg.CorpusMaxWorkers,
		Logger:     logger,
	})
	if err := source.Load(ctx); err != nil {
		return nil, err
	}
	return source, nil
}

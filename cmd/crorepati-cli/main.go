package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crorepati-games/crorepati/internal/cache/cachelru"
	"github.com/crorepati-games/crorepati/internal/crorepati"
	"github.com/crorepati-games/crorepati/internal/crorepati/match"
	"github.com/crorepati-games/crorepati/internal/crorepati/questions"
	"github.com/crorepati-games/crorepati/internal/crorepati/resource"
	"github.com/crorepati-games/crorepati/internal/crorepati/variation"
	"github.com/crorepati-games/crorepati/internal/database"
	resultDb "github.com/crorepati-games/crorepati/internal/database/result/database"
	"github.com/crorepati-games/crorepati/internal/logging"
	"github.com/crorepati-games/crorepati/internal/shutdown"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, resource.Graffiti)
	_, _ = fmt.Fprintf(os.Stdout, "%s v%s\n\n", resource.ProjectName, resource.ProjectVersion)

	ctx, done := shutdown.New()
	defer done()
	logger := logging.FromContext(ctx)
	if err := realMain(ctx); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context) error {
	// a missing .env is fine, envconfig falls back to the environment
	_ = godotenv.Load()

	config := crorepati.Config{}
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("processing the config: %w", err)
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	db, err := database.NewFromEnv(ctx, &config.Db)
	if err != nil {
		return fmt.Errorf("new database from env: %w", err)
	}
	defer db.Close(ctx)

	bank, err := questions.NewBank(resource.SampleQuestions)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	if err := bank.Validate(config.MaxTeams); err != nil {
		return fmt.Errorf("question bank cannot serve %d teams: %w", config.MaxTeams, err)
	}

	variationCache, err := cachelru.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	// no varier is wired by default, so the source passes questions
	// through untouched until one is configured
	var source match.QuestionSource = variation.NewSource(
		bank,
		nil,
		config.VariationChance,
		variation.WithCache(variationCache),
		variation.WithLogger(logger),
	)

	manager := crorepati.NewManager(&config, source, resultDb.New(db), os.Stdin, os.Stdout)
	if err := manager.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}

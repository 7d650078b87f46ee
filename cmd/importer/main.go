package main

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"property_search/internal/adapters/observability"
	redisad "property_search/internal/adapters/redis"
	"property_search/internal/app"
	"property_search/internal/shared"
	mysqlrepo "property_search/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "importer")

	log.Info().
		Str("file", cfg.ImportCSV).
		Str("default_city", cfg.ImportCity).
		Int("workers", cfg.ImportWorkers).
		Int("batch", cfg.ImportBatchSize).
		Msg("importer starting")

	f, err := os.Open(cfg.ImportCSV)
	if err != nil {
		log.Fatal().Err(err).Msg("open listings file failed")
	}
	ps, err := app.ParseListingsCSV(f, cfg.ImportCity)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("parse listings failed")
	}
	log.Info().Int("rows", len(ps)).Msg("listings parsed")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	imp := app.NewImportService(repo, cache)

	sem := semaphore.NewWeighted(int64(max(cfg.ImportWorkers, 1)))
	var wg sync.WaitGroup
	var failed atomic.Int64

	for i, batch := range app.Batches(ps, cfg.ImportBatchSize) {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			defer sem.Release(1)

			if err := imp.ImportBatch(ctx, batch); err != nil {
				failed.Add(int64(len(batch)))
				log.Warn().Int("batch", n).Err(err).Msg("import batch failed")
				return
			}
			log.Debug().Int("batch", n).Int("rows", len(batch)).Msg("import batch ok")
		}(i)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Error().Int64("failed_rows", n).Int("rows", len(ps)).Msg("import finished with failures")
		os.Exit(1)
	}
	log.Info().Int("rows", len(ps)).Msg("import completed")
}

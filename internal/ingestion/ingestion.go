// Package ingestion loads the yearly ComexStat CSV extracts into the
// database. File discovery, idempotency and parallelism live here; row
// parsing and scope filtering live in the parser.
package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
	"github.com/avnergomes/comexstat-parana/internal/logger"
	"github.com/avnergomes/comexstat-parana/internal/pipeline"
	"github.com/avnergomes/comexstat-parana/internal/storage"
)

const (
	defaultBatchSize = 5000
	maxParallelCap   = 7
)

// filePrefixes lists the extract filename prefixes in processing order.
var filePrefixes = []struct {
	prefix string
	flow   models.Flow
}{
	{"EXP", models.FlowExport},
	{"IMP", models.FlowImport},
}

// Options configures one ingestion run.
type Options struct {
	// YearStart and YearEnd bound the yearly files looked for, inclusive.
	YearStart int
	YearEnd   int
	// Parallel caps concurrent files; 0 means min(NumCPU, 7).
	Parallel int
	// Force re-ingests years already present in the ingestion log.
	Force bool
	// BatchSize is rows per insert transaction; 0 means the default.
	BatchSize int
	// Filter is the scope applied per row before persisting.
	Filter pipeline.FilterOptions
}

// repoCtor is an indirection for creating the repository; tests override it.
var repoCtor = func(db *sql.DB) storage.TradeRepository {
	return storage.NewTradeRepository(db)
}

// ProcessDirectory ingests every EXP_<year>.csv and IMP_<year>.csv found in
// dir for the configured year window.
//
// Behavior:
//   - Years whose file is absent are skipped with a warning; the portal
//     publishes the current year late, so a missing file is normal.
//   - A (flow, year) already in the ingestion log is skipped unless Force,
//     in which case its records are deleted and reloaded.
//   - Files process concurrently; the first error cancels the rest.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, opts Options) error {
	repo := repoCtor(db)

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.YearStart == 0 || opts.YearEnd == 0 || opts.YearEnd < opts.YearStart {
		return fmt.Errorf("invalid year window %d..%d", opts.YearStart, opts.YearEnd)
	}

	type job struct {
		path string
		flow models.Flow
		year int
	}
	var jobs []job
	for year := opts.YearStart; year <= opts.YearEnd; year++ {
		for _, fp := range filePrefixes {
			name := fmt.Sprintf("%s_%d.csv", fp.prefix, year)
			full := filepath.Join(dir, name)
			if _, err := os.Stat(full); err != nil {
				if os.IsNotExist(err) {
					logger.L().Warn().Str("file", name).Msg("extract not published, skipping")
					continue
				}
				return fmt.Errorf("stat failed for %s: %w", full, err)
			}
			jobs = append(jobs, job{path: full, flow: fp.flow, year: year})
		}
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no extracts found in %s for %d..%d", dir, opts.YearStart, opts.YearEnd)
	}

	maxParallel := maxParallelCap
	if opts.Parallel > 0 {
		maxParallel = opts.Parallel
		if maxParallel > maxParallelCap {
			maxParallel = maxParallelCap
		}
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("files", len(jobs)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("ingestion start")

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, j := range jobs {
		idx := i
		j := j
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(j.path)
			logger.L().Info().Int("idx", idx+1).Int("total", len(jobs)).Str("file", base).Msg("file start")

			exists, err := repo.HasIngestion(j.flow, j.year)
			if err != nil {
				return fmt.Errorf("file %s: check ingestion log: %w", j.path, err)
			}
			if exists && !opts.Force {
				logger.L().Info().Str("file", base).Bool("skipped", true).Msg("already ingested")
				return nil
			}
			if exists && opts.Force {
				if err := repo.DeleteRecords(j.flow, j.year); err != nil {
					return fmt.Errorf("file %s: delete existing: %w", j.path, err)
				}
			}

			inserted, skipped, err := parseAndPersistFile(gctx, j.path, j.flow, repo, opts)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", j.path, err)
			}
			if err := repo.UpsertIngestionLog(j.flow, j.year, base, inserted); err != nil {
				return fmt.Errorf("file %s: upsert ingestion log: %w", j.path, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(jobs)).Str("file", base).
				Int("rows", inserted).Int("skipped", skipped).
				Dur("elapsed", time.Since(start)).Bool("force", opts.Force).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}

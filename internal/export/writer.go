// Package export writes the derived views as static JSON artifacts, the
// drop-in data files a dashboard can serve without a running API.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avnergomes/comexstat-parana/internal/logger"
	"github.com/avnergomes/comexstat-parana/internal/service"
)

const (
	aggregatedFile = "aggregated.json"
	sankeyFile     = "sankey_data.json"
	forecastFile   = "forecasts.json"
)

// WriteAll writes every artifact into dir, creating it if needed. An empty
// dataset is not an error for a batch export; it logs and writes nothing.
func WriteAll(ctx context.Context, svc *service.SummaryService, dir string) error {
	sum, err := svc.Summary(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoRecords) {
			logger.L().Warn().Str("dir", dir).Msg("no records in scope, nothing exported")
			return nil
		}
		return fmt.Errorf("build summary: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, aggregatedFile), sum); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, sankeyFile), sum.FlowGraph); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, forecastFile), sum.Forecast); err != nil {
		return err
	}

	logger.L().Info().Str("dir", dir).Msg("export done")
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

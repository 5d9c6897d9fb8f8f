package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
	"github.com/avnergomes/comexstat-parana/internal/logger"
	"github.com/avnergomes/comexstat-parana/internal/pipeline"
	"github.com/avnergomes/comexstat-parana/internal/storage"
)

// Canonical column names the parser maps every header variant onto. The
// ComexStat portal has renamed columns across extract generations; all
// known spellings normalize here so the rest of the pipeline never sees
// them.
const (
	colYear         = "year"
	colMonth        = "month"
	colCode         = "code"
	colRegion       = "region"
	colMunicipality = "municipality"
	colCountry      = "country"
	colValue        = "value"
	colWeight       = "weight"
	colQuantity     = "quantity"
	colFreight      = "freight"
	colInsurance    = "insurance"
)

var columnAliases = map[string]string{
	"CO_ANO":     colYear,
	"ANO":        colYear,
	"CO_MES":     colMonth,
	"MES":        colMonth,
	"CO_NCM":     colCode,
	"NCM":        colCode,
	"SH4":        colCode,
	"CO_SH4":     colCode,
	"SG_UF_NCM":  colRegion,
	"SG_UF_MUN":  colRegion,
	"SG_UF":      colRegion,
	"UF":         colRegion,
	"CO_MUN":     colMunicipality,
	"CO_MUN_GEO": colMunicipality,
	"CO_PAIS":    colCountry,
	"PAIS":       colCountry,
	"VL_FOB":     colValue,
	"KG_LIQUIDO": colWeight,
	"QT_ESTAT":   colQuantity,
	"VL_FRETE":   colFreight,
	"VL_SEGURO":  colInsurance,
}

// requiredColumns must all resolve from the header or the file is unusable.
var requiredColumns = []string{colYear, colMonth, colCode, colCountry, colValue}

// Product codes are fixed-width, but CSV tooling along the way strips
// leading zeros. The width to restore depends on which code column the
// extract carries: 4 digits for SH4 municipality extracts, 8 for NCM.
const (
	ncmCodeWidth     = 8
	headingCodeWidth = 4
)

var headingCodeAliases = map[string]bool{
	"SH4":    true,
	"CO_SH4": true,
}

// columnIndex maps canonical column names to their position in this file
// and records the fixed width of the file's product-code column.
type columnIndex struct {
	pos       map[string]int
	codeWidth int
}

// resolveHeader normalizes the header row into a column index. Unknown
// columns are ignored; missing required columns fail the file.
func resolveHeader(header []string) (columnIndex, error) {
	idx := columnIndex{pos: make(map[string]int), codeWidth: ncmCodeWidth}
	for i, h := range header {
		name := strings.ToUpper(strings.TrimSpace(strings.Trim(h, "\uFEFF\"")))
		if canonical, ok := columnAliases[name]; ok {
			if _, dup := idx.pos[canonical]; !dup {
				idx.pos[canonical] = i
				if canonical == colCode && headingCodeAliases[name] {
					idx.codeWidth = headingCodeWidth
				}
			}
		}
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx.pos[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("header missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseAndPersistFile opens, parses, filters and persists one yearly
// extract in batches. The header must resolve; after that, rows that fail
// to parse or fall outside the configured scope are skipped, not fatal.
// The portal publishes these extracts with occasional stray rows and the
// run must survive them.
func parseAndPersistFile(ctx context.Context, path string, flow models.Flow, repo storage.TradeRepository, opts Options) (inserted, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Extracts are published in Latin-1.
	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}
	idx, err := resolveHeader(header)
	if err != nil {
		return 0, 0, err
	}

	buf := make([]models.TradeRecord, 0, opts.BatchSize)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertRecordsBatch(flow, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	line := 1
	for {
		select {
		case <-ctx.Done():
			return inserted, skipped, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return inserted, skipped, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		tr, err := recordToTrade(rec, idx)
		if err != nil {
			skipped++
			continue
		}
		if !pipeline.InScope(tr, opts.Filter) {
			skipped++
			continue
		}

		buf = append(buf, tr)
		inserted++
		if len(buf) >= opts.BatchSize {
			if err := flush(); err != nil {
				return inserted, skipped, fmt.Errorf("flush batch ending line %d: %w", line, err)
			}
		}
	}

	if err := flush(); err != nil {
		return inserted, skipped, fmt.Errorf("final flush: %w", err)
	}
	if skipped > 0 {
		logger.L().Warn().Str("file", path).Int("skipped", skipped).Msg("rows skipped")
	}
	return inserted, skipped, nil
}

// recordToTrade converts one CSV row using the resolved column index.
// Optional columns missing from the file or empty in the row become zero
// values; a malformed required field is an error the caller counts as a
// skip.
func recordToTrade(rec []string, idx columnIndex) (models.TradeRecord, error) {
	var t models.TradeRecord

	field := func(col string) string {
		i, ok := idx.pos[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	year, err := strconv.Atoi(field(colYear))
	if err != nil {
		return t, fmt.Errorf("invalid year: %w", err)
	}
	t.Year = year

	month, err := strconv.Atoi(field(colMonth))
	if err != nil || month < 1 || month > 12 {
		return t, fmt.Errorf("invalid month %q", field(colMonth))
	}
	t.Month = month

	code := field(colCode)
	if code == "" {
		return t, fmt.Errorf("empty product code")
	}
	// Restore leading zeros lost upstream, e.g. SH4 "302" is chapter 03.
	if len(code) < idx.codeWidth {
		code = strings.Repeat("0", idx.codeWidth-len(code)) + code
	}
	t.ProductCode = code

	t.Region = field(colRegion)
	t.Municipality = field(colMunicipality)
	t.CountryCode = field(colCountry)

	value, err := parseAmount(field(colValue))
	if err != nil {
		return t, fmt.Errorf("invalid value: %w", err)
	}
	t.Value = value

	// The remaining measures are tolerated when absent or unparseable;
	// a record with a good FOB value is still worth keeping.
	t.Weight, _ = parseAmount(field(colWeight))
	t.Quantity, _ = parseAmount(field(colQuantity))
	t.Freight, _ = parseAmount(field(colFreight))
	t.Insurance, _ = parseAmount(field(colInsurance))

	return t, nil
}

// parseAmount reads a numeric cell, accepting the comma decimal separator
// some extract generations use. Empty cells are zero.
func parseAmount(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

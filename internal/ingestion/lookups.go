package ingestion

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/avnergomes/comexstat-parana/internal/logger"
	"github.com/avnergomes/comexstat-parana/internal/pipeline"
)

// LookupSource is one named way of producing a code→name table. Sources
// for the same table are tried in order and the first that loads wins;
// the name makes the chosen fallback visible in the logs.
type LookupSource struct {
	Name string
	Load func() (map[string]string, error)
}

// LoadLookups reads the auxiliary reference tables from dir. Each table is
// best effort: when every source for it fails, the table stays empty and
// enrichment degrades to placeholders.
func LoadLookups(dir string) pipeline.Lookups {
	return pipeline.Lookups{
		Products: loadFirst("products", []LookupSource{
			{Name: "NCM.csv", Load: func() (map[string]string, error) {
				return loadCodeNameCSV(filepath.Join(dir, "NCM.csv"), "CO_NCM", "NO_NCM_POR")
			}},
		}),
		Countries: loadFirst("countries", []LookupSource{
			{Name: "PAIS.csv", Load: func() (map[string]string, error) {
				return loadCodeNameCSV(filepath.Join(dir, "PAIS.csv"), "CO_PAIS", "NO_PAIS")
			}},
		}),
		Municipalities: loadFirst("municipalities", []LookupSource{
			{Name: "UF_MUN.csv", Load: func() (map[string]string, error) {
				return loadCodeNameCSV(filepath.Join(dir, "UF_MUN.csv"), "CO_MUN_GEO", "NO_MUN_MIN")
			}},
			{Name: "municipios_PR.json", Load: func() (map[string]string, error) {
				return loadMunicipalityGeoJSON(filepath.Join(dir, "municipios_PR.json"))
			}},
		}),
	}
}

func loadFirst(table string, sources []LookupSource) map[string]string {
	for _, src := range sources {
		m, err := src.Load()
		if err != nil {
			logger.L().Warn().Str("table", table).Str("source", src.Name).Err(err).Msg("lookup source unavailable")
			continue
		}
		logger.L().Info().Str("table", table).Str("source", src.Name).Int("entries", len(m)).Msg("lookup loaded")
		return m
	}
	logger.L().Warn().Str("table", table).Msg("no lookup source available, using placeholders")
	return nil
}

// loadCodeNameCSV reads a two-column reference table out of a semicolon
// separated Latin-1 CSV, locating the columns by header name.
func loadCodeNameCSV(path, codeCol, nameCol string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	codeIdx, nameIdx := -1, -1
	for i, h := range header {
		switch strings.ToUpper(strings.TrimSpace(strings.Trim(h, "\uFEFF\""))) {
		case codeCol:
			codeIdx = i
		case nameCol:
			nameIdx = i
		}
	}
	if codeIdx < 0 || nameIdx < 0 {
		return nil, fmt.Errorf("columns %s/%s not found in %s", codeCol, nameCol, filepath.Base(path))
	}

	out := make(map[string]string)
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if codeIdx >= len(rec) || nameIdx >= len(rec) {
			continue
		}
		code := strings.TrimSpace(rec[codeIdx])
		name := strings.TrimSpace(rec[nameIdx])
		if code != "" && name != "" {
			out[code] = name
		}
	}
	return out, nil
}

// loadMunicipalityGeoJSON extracts the code→name table from the IBGE
// municipality boundary file, the fallback when the portal's UF_MUN table
// is absent.
func loadMunicipalityGeoJSON(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	out := make(map[string]string)
	for _, feat := range doc.Features {
		code := firstString(feat.Properties, "CD_MUN", "codigo", "id")
		name := firstString(feat.Properties, "NM_MUN", "nome", "name")
		if code != "" && name != "" {
			out[code] = name
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no municipality features in %s", filepath.Base(path))
	}
	return out, nil
}

func firstString(props map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

package pipeline

import (
	"github.com/avnergomes/comexstat-parana/internal/chains"
	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

// unknownCountry is the display name used when the country lookup misses.
const unknownCountry = "Desconhecido"

// Lookups are the auxiliary reference tables joined in during enrichment.
// All three maps are optional; a missing table degrades to placeholders,
// it never fails the run.
type Lookups struct {
	// Products maps an 8-digit NCM code to its official description.
	Products map[string]string
	// Countries maps a ComexStat country code to its Portuguese name.
	Countries map[string]string
	// Municipalities maps an IBGE municipality code to its name.
	Municipalities map[string]string
}

// Enrich derives the display and classification fields for each record.
// Input records are left untouched. Records reaching here have already
// passed the filter, so the chapter parse cannot miss.
func Enrich(records []models.TradeRecord, lk Lookups) []models.EnrichedRecord {
	out := make([]models.EnrichedRecord, 0, len(records))
	for _, r := range records {
		chapter, ok := r.Chapter()
		if !ok {
			continue
		}

		desc := lk.Products[r.ProductCode]
		if desc == "" {
			desc = chains.HeadingDescription(r.Heading())
		}

		country := lk.Countries[r.CountryCode]
		if country == "" {
			country = unknownCountry
		}

		var chain chains.Chain
		if len(r.ProductCode) <= 4 {
			// Municipality extracts carry 4-digit headings and no
			// official description worth keyword-matching.
			chain = chains.ClassifyHeading(r.Heading())
		} else {
			chain = chains.Classify(r.ProductCode, lk.Products[r.ProductCode], chapter)
		}

		out = append(out, models.EnrichedRecord{
			TradeRecord:      r,
			Description:      desc,
			CountryName:      country,
			MunicipalityName: lk.Municipalities[r.Municipality],
			Chapter:          chapter,
			ChainID:          chain.ID(),
			Chain:            chain.Name(),
		})
	}
	return out
}

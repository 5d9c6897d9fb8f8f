package models

// Flow distinguishes the two sides of the trade balance.
type Flow string

const (
	FlowExport Flow = "export"
	FlowImport Flow = "import"
)

// TradeRecord is one customs declaration line from a ComexStat extract,
// already normalized to the canonical column set. Records are immutable
// after parsing; enrichment produces a new value, it never mutates one.
//
// ProductCode is the NCM code as a zero-padded numeric string (8 digits in
// the detailed extracts, 4 digits in the municipality extracts). The leading
// two digits are the chapter, the leading four the heading.
type TradeRecord struct {
	Year         int
	Month        int
	ProductCode  string
	Region       string // UF of the declaring establishment, e.g. "PR"
	Municipality string // IBGE code; empty in the state-level extracts
	CountryCode  string
	Value        float64 // FOB value in US$
	Weight       float64 // net weight in kg
	Quantity     float64
	Freight      float64 // imports only
	Insurance    float64 // imports only
}

// Chapter returns the chapter encoded in the leading two digits of the
// product code. ok is false when the code is too short or non-numeric;
// such records are dropped by the filter, never treated as errors.
func (r TradeRecord) Chapter() (int, bool) {
	return chapterOf(r.ProductCode)
}

// Heading returns the 4-digit heading prefix of the product code,
// zero-padded when the code itself is shorter.
func (r TradeRecord) Heading() string {
	code := r.ProductCode
	for len(code) < 4 {
		code = "0" + code
	}
	return code[:4]
}

func chapterOf(code string) (int, bool) {
	if len(code) < 2 {
		return 0, false
	}
	n := 0
	for _, c := range code[:2] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// EnrichedRecord is a TradeRecord plus the fields derived by the enricher:
// joined display names, the recomputed chapter and the productive chain.
// Chain is always a member of the closed chain enumeration ("outros" when
// nothing more specific applies) and Chapter always agrees with the leading
// two digits of ProductCode.
type EnrichedRecord struct {
	TradeRecord
	Description      string
	CountryName      string
	MunicipalityName string
	Chapter          int
	ChainID          string
	Chain            string // display name of the chain
}

// Origin is the locality key used for flow-pair grouping: the municipality
// name when the extract carries one, otherwise the UF.
func (r EnrichedRecord) Origin() string {
	if r.MunicipalityName != "" {
		return r.MunicipalityName
	}
	return r.Region
}

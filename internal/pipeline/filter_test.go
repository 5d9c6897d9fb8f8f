package pipeline

import (
	"testing"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

func rec(year int, code, region string, value float64) models.TradeRecord {
	return models.TradeRecord{Year: year, Month: 1, ProductCode: code, Region: region, CountryCode: "160", Value: value, Weight: 1}
}

func TestFilterScope(t *testing.T) {
	records := []models.TradeRecord{
		rec(2023, "12019000", "PR", 100), // chapter 12, in scope
		rec(2023, "84799090", "PR", 50),  // chapter 84, out of scope
		rec(2023, "12019000", "SP", 30),  // wrong region
		rec(2019, "12019000", "PR", 20),  // before window
		rec(2026, "12019000", "PR", 20),  // after window
		rec(2023, "31021010", "PR", 10),  // chapter 31, in scope
	}
	opts := FilterOptions{
		Region:    "PR",
		Chapters:  map[int]bool{12: true, 31: true},
		YearStart: 2020,
		YearEnd:   2025,
	}
	got := Filter(records, opts)
	if len(got) != 2 {
		t.Fatalf("Filter kept %d records, want 2", len(got))
	}
	if got[0].ProductCode != "12019000" || got[1].ProductCode != "31021010" {
		t.Errorf("Filter kept wrong records: %v", got)
	}
}

func TestFilterDropsMalformedCodes(t *testing.T) {
	records := []models.TradeRecord{
		rec(2023, "XX019000", "PR", 100),
		rec(2023, "1", "PR", 100),
		rec(2023, "", "PR", 100),
		rec(2023, "12019000", "PR", 100),
	}
	got := Filter(records, FilterOptions{})
	if len(got) != 1 {
		t.Fatalf("Filter kept %d records, want 1", len(got))
	}
	if got[0].ProductCode != "12019000" {
		t.Errorf("Filter kept %s", got[0].ProductCode)
	}
}

func TestFilterZeroOptionsKeepsWellFormed(t *testing.T) {
	records := []models.TradeRecord{
		rec(2023, "12019000", "PR", 100),
		rec(1999, "99999999", "AC", 1),
	}
	if got := Filter(records, FilterOptions{}); len(got) != 2 {
		t.Errorf("Filter with zero options kept %d records, want 2", len(got))
	}
}

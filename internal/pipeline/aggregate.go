package pipeline

import (
	"sort"

	"github.com/avnergomes/comexstat-parana/internal/chains"
	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

// ByChain rolls records up per productive chain: summed value and weight,
// distinct product count, and each chain's share of the grand total. Rows
// come back sorted by value descending; equal values keep first-seen order.
func ByChain(records []models.EnrichedRecord) []models.ChainRow {
	type acc struct {
		row      models.ChainRow
		products map[string]bool
	}
	groups := make(map[string]*acc)
	var order []string
	var total float64

	for _, r := range records {
		g, ok := groups[r.ChainID]
		if !ok {
			c := chains.Chain(r.ChainID)
			g = &acc{
				row: models.ChainRow{
					ChainID: r.ChainID,
					Chain:   c.Name(),
					Color:   c.Color(),
					Kind:    string(c.Kind()),
				},
				products: make(map[string]bool),
			}
			groups[r.ChainID] = g
			order = append(order, r.ChainID)
		}
		g.row.Value += r.Value
		g.row.Weight += r.Weight
		g.products[r.ProductCode] = true
		total += r.Value
	}

	rows := make([]models.ChainRow, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.row.Products = len(g.products)
		g.row.Share = share(g.row.Value, total)
		rows = append(rows, g.row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	return rows
}

// ByCountry rolls records up per partner country and truncates to the top
// n rows by value. Shares are computed against the grand total before
// truncation, so a top-N view still reports shares of the whole dataset.
// n <= 0 disables truncation.
func ByCountry(records []models.EnrichedRecord, n int) []models.CountryRow {
	type acc struct {
		row      models.CountryRow
		products map[string]bool
	}
	groups := make(map[string]*acc)
	var order []string
	var total float64

	for _, r := range records {
		g, ok := groups[r.CountryCode]
		if !ok {
			g = &acc{
				row:      models.CountryRow{CountryCode: r.CountryCode, Country: r.CountryName},
				products: make(map[string]bool),
			}
			groups[r.CountryCode] = g
			order = append(order, r.CountryCode)
		}
		g.row.Value += r.Value
		g.row.Weight += r.Weight
		g.products[r.ProductCode] = true
		total += r.Value
	}

	rows := make([]models.CountryRow, 0, len(order))
	for _, code := range order {
		g := groups[code]
		g.row.Products = len(g.products)
		g.row.Share = share(g.row.Value, total)
		rows = append(rows, g.row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// ByYear rolls records up per year, sorted chronologically.
func ByYear(records []models.EnrichedRecord) []models.PeriodRow {
	return byPeriod(records, false)
}

// ByMonth rolls records up per (year, month), sorted chronologically.
func ByMonth(records []models.EnrichedRecord) []models.PeriodRow {
	return byPeriod(records, true)
}

func byPeriod(records []models.EnrichedRecord, monthly bool) []models.PeriodRow {
	type key struct{ year, month int }
	type acc struct {
		row      models.PeriodRow
		products map[string]bool
	}
	groups := make(map[key]*acc)

	for _, r := range records {
		k := key{year: r.Year}
		if monthly {
			k.month = r.Month
		}
		g, ok := groups[k]
		if !ok {
			g = &acc{
				row:      models.PeriodRow{Year: k.year, Month: k.month},
				products: make(map[string]bool),
			}
			groups[k] = g
		}
		g.row.Value += r.Value
		g.row.Weight += r.Weight
		g.products[r.ProductCode] = true
	}

	rows := make([]models.PeriodRow, 0, len(groups))
	for _, g := range groups {
		g.row.Products = len(g.products)
		rows = append(rows, g.row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})
	return rows
}

// ByChainYear rolls records up per (year, chain), sorted by year then by
// chain display name.
func ByChainYear(records []models.EnrichedRecord) []models.ChainPeriodRow {
	type key struct {
		year  int
		chain string
	}
	groups := make(map[key]*models.ChainPeriodRow)

	for _, r := range records {
		k := key{year: r.Year, chain: r.Chain}
		g, ok := groups[k]
		if !ok {
			g = &models.ChainPeriodRow{Year: r.Year, Chain: r.Chain}
			groups[k] = g
		}
		g.Value += r.Value
		g.Weight += r.Weight
	}

	rows := make([]models.ChainPeriodRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, *g)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Chain < rows[j].Chain
	})
	return rows
}

// ByPair rolls records up per (origin, destination) pair, sorted by value
// descending. The origin is the municipality name when present, the UF
// otherwise; the destination is the partner country name.
func ByPair(records []models.EnrichedRecord) []models.PairRow {
	type key struct{ origin, dest string }
	groups := make(map[key]*models.PairRow)
	var order []key

	for _, r := range records {
		k := key{origin: r.Origin(), dest: r.CountryName}
		g, ok := groups[k]
		if !ok {
			g = &models.PairRow{Origin: k.origin, Destination: k.dest}
			groups[k] = g
			order = append(order, k)
		}
		g.Value += r.Value
		g.Weight += r.Weight
	}

	rows := make([]models.PairRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *groups[k])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	return rows
}

// ByPairChain is ByPair with chain-level detail retained.
func ByPairChain(records []models.EnrichedRecord) []models.PairRow {
	type key struct{ origin, dest, chain string }
	groups := make(map[key]*models.PairRow)
	var order []key

	for _, r := range records {
		k := key{origin: r.Origin(), dest: r.CountryName, chain: r.Chain}
		g, ok := groups[k]
		if !ok {
			g = &models.PairRow{Origin: k.origin, Destination: k.dest, Chain: k.chain}
			groups[k] = g
			order = append(order, k)
		}
		g.Value += r.Value
		g.Weight += r.Weight
	}

	rows := make([]models.PairRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *groups[k])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	return rows
}

// ByProduct rolls records up per product code and truncates to the top n
// rows by value. n <= 0 disables truncation.
func ByProduct(records []models.EnrichedRecord, n int) []models.ProductRow {
	groups := make(map[string]*models.ProductRow)
	var order []string

	for _, r := range records {
		g, ok := groups[r.ProductCode]
		if !ok {
			g = &models.ProductRow{
				Code:        r.ProductCode,
				Description: r.Description,
				Chapter:     r.Chapter,
				ChapterName: chains.ChapterName(r.Chapter),
				Chain:       r.Chain,
			}
			groups[r.ProductCode] = g
			order = append(order, r.ProductCode)
		}
		g.Value += r.Value
		g.Weight += r.Weight
	}

	rows := make([]models.ProductRow, 0, len(order))
	for _, code := range order {
		rows = append(rows, *groups[code])
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func share(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}

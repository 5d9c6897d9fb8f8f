package pipeline

import (
	"sort"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

// Reconcile joins the export and import period rollups into one balance
// series. The join is a full outer join on (year, month): a period present
// on only one side gets the other side zero-filled, so balance and gross
// flow are always computed over both sides. Rows come back chronological.
func Reconcile(exports, imports []models.PeriodRow) []models.BalanceRow {
	type key struct{ year, month int }
	rows := make(map[key]*models.BalanceRow)

	for _, p := range exports {
		k := key{p.Year, p.Month}
		rows[k] = &models.BalanceRow{
			Year:         p.Year,
			Month:        p.Month,
			ExportValue:  p.Value,
			ExportWeight: p.Weight,
		}
	}
	for _, p := range imports {
		k := key{p.Year, p.Month}
		r, ok := rows[k]
		if !ok {
			r = &models.BalanceRow{Year: p.Year, Month: p.Month}
			rows[k] = r
		}
		r.ImportValue = p.Value
		r.ImportWeight = p.Weight
	}

	out := make([]models.BalanceRow, 0, len(rows))
	for _, r := range rows {
		r.Balance = r.ExportValue - r.ImportValue
		r.GrossFlow = r.ExportValue + r.ImportValue
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// ReconcileChains outer-joins the per-(year, chain) rollups of both sides,
// zero-filling the missing side. Rows come back sorted by year then chain.
func ReconcileChains(exports, imports []models.ChainPeriodRow) []models.ChainBalanceRow {
	type key struct {
		year  int
		chain string
	}
	rows := make(map[key]*models.ChainBalanceRow)

	for _, p := range exports {
		k := key{p.Year, p.Chain}
		rows[k] = &models.ChainBalanceRow{
			Year:         p.Year,
			Chain:        p.Chain,
			ExportValue:  p.Value,
			ExportWeight: p.Weight,
		}
	}
	for _, p := range imports {
		k := key{p.Year, p.Chain}
		r, ok := rows[k]
		if !ok {
			r = &models.ChainBalanceRow{Year: p.Year, Chain: p.Chain}
			rows[k] = r
		}
		r.ImportValue = p.Value
		r.ImportWeight = p.Weight
	}

	out := make([]models.ChainBalanceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Chain < out[j].Chain
	})
	return out
}

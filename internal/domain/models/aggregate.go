package models

// ChainRow is one row of the by-chain rollup. Share is the percentage of
// the grand total across the whole result set, so shares sum to 100 over
// the full, non-truncated rollup.
type ChainRow struct {
	ChainID  string  `json:"cadeiaId"`
	Chain    string  `json:"categoria"`
	Color    string  `json:"cor"`
	Kind     string  `json:"tipo"` // "produto" or "insumo"
	Value    float64 `json:"valor"`
	Weight   float64 `json:"peso"`
	Products int     `json:"produtos"`
	Share    float64 `json:"percentual"`
}

// CountryRow is one row of the by-country rollup. Share is computed against
// the pre-truncation total, so a top-N view still reports shares of the
// whole dataset.
type CountryRow struct {
	CountryCode string  `json:"codigo"`
	Country     string  `json:"pais"`
	Value       float64 `json:"valor"`
	Weight      float64 `json:"peso"`
	Products    int     `json:"produtos"`
	Share       float64 `json:"percentual"`
}

// PeriodRow is one row of the by-period rollup. Month is zero for yearly
// granularity.
type PeriodRow struct {
	Year     int     `json:"ano"`
	Month    int     `json:"mes,omitempty"`
	Value    float64 `json:"valor"`
	Weight   float64 `json:"peso"`
	Products int     `json:"produtos"`
}

// ChainPeriodRow is one row of the (year, chain) rollup feeding the
// per-chain reconciled timeseries.
type ChainPeriodRow struct {
	Year   int     `json:"ano"`
	Chain  string  `json:"cadeia"`
	Value  float64 `json:"valor"`
	Weight float64 `json:"peso"`
}

// PairRow is one row of the (origin, destination) rollup. Chain is set only
// when chain-level detail was requested.
type PairRow struct {
	Origin      string  `json:"origem"`
	Destination string  `json:"destino"`
	Chain       string  `json:"cadeia,omitempty"`
	Value       float64 `json:"valor"`
	Weight      float64 `json:"peso"`
}

// ProductRow is one row of the top-products rollup.
type ProductRow struct {
	Code        string  `json:"ncm"`
	Description string  `json:"descricao"`
	Chapter     int     `json:"capituloNcm"`
	ChapterName string  `json:"capitulo"`
	Chain       string  `json:"cadeia"`
	Value       float64 `json:"valor"`
	Weight      float64 `json:"peso"`
}

// BalanceRow is one reconciled period: both sides zero-filled, balance and
// gross flow derived after the fill. Month is zero for yearly series.
type BalanceRow struct {
	Year         int     `json:"ano"`
	Month        int     `json:"mes,omitempty"`
	ExportValue  float64 `json:"valorExp"`
	ExportWeight float64 `json:"pesoExp"`
	ImportValue  float64 `json:"valorImp"`
	ImportWeight float64 `json:"pesoImp"`
	Balance      float64 `json:"saldo"`
	GrossFlow    float64 `json:"corrente"`
}

// ChainBalanceRow is the (year, chain) reconciliation used by the dashboard
// chain filter.
type ChainBalanceRow struct {
	Year         int     `json:"ano"`
	Chain        string  `json:"cadeia"`
	ExportValue  float64 `json:"valorExp"`
	ExportWeight float64 `json:"pesoExp"`
	ImportValue  float64 `json:"valorImp"`
	ImportWeight float64 `json:"pesoImp"`
}

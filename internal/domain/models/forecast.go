package models

// HistoryPoint is one observed year of a forecast input series.
type HistoryPoint struct {
	Year   int     `json:"ano"`
	Value  float64 `json:"valor"`
	Weight float64 `json:"peso"`
}

// ForecastPoint is one projected year with its confidence band. Bounds are
// clamped at zero; trade values are never negative.
type ForecastPoint struct {
	Year        int     `json:"ano"`
	Value       float64 `json:"valor"`
	ValueLower  float64 `json:"valorLower"`
	ValueUpper  float64 `json:"valorUpper"`
	Weight      float64 `json:"peso"`
	WeightLower float64 `json:"pesoLower"`
	WeightUpper float64 `json:"pesoUpper"`
}

// BalanceForecastPoint is the projected trade balance for one year, derived
// from the two side forecasts after they are computed.
type BalanceForecastPoint struct {
	Year       int     `json:"ano"`
	Balance    float64 `json:"saldo"`
	BalanceLow float64 `json:"saldoLower"`
	BalanceUp  float64 `json:"saldoUpper"`
}

// Forecast is the full projection artifact: history on both sides, the
// projected points, the derived balance projection, and the method that
// produced it ("ExponentialSmoothing" or "LinearTrend").
type Forecast struct {
	Method        string                 `json:"modelo"`
	GeneratedAt   string                 `json:"geradoEm"`
	Years         []int                  `json:"anosPrevisao"`
	ExportHistory []HistoryPoint         `json:"historicoExp"`
	ImportHistory []HistoryPoint         `json:"historicoImp"`
	Exports       []ForecastPoint        `json:"exportacoes"`
	Imports       []ForecastPoint        `json:"importacoes"`
	Balance       []BalanceForecastPoint `json:"balanca"`
}

package models

// Metadata describes the dataset behind a summary: coverage and totals for
// each side.
type Metadata struct {
	YearMin        int     `json:"anoMin"`
	YearMax        int     `json:"anoMax"`
	Years          []int   `json:"anos"`
	ExportRecords  int     `json:"totalExportacoes"`
	ImportRecords  int     `json:"totalImportacoes"`
	ExportProducts int     `json:"produtosExp"`
	ImportProducts int     `json:"produtosImp"`
	Destinations   int     `json:"paisesDestino"`
	Origins        int     `json:"paisesOrigem"`
	ExportValue    float64 `json:"valorTotalExp"`
	ImportValue    float64 `json:"valorTotalImp"`
	ExportWeight   float64 `json:"pesoTotalExp"`
	ImportWeight   float64 `json:"pesoTotalImp"`
}

// ChainFilter is one selectable chain with its presentation attributes.
type ChainFilter struct {
	Name  string `json:"nome"`
	Color string `json:"cor"`
	Kind  string `json:"tipo"`
}

// ChapterFilter is one selectable chapter with its legacy display name.
type ChapterFilter struct {
	Code int    `json:"codigo"`
	Name string `json:"nome"`
}

// Filters lists the dimension values present in the dataset, for the
// dashboard filter widgets.
type Filters struct {
	Chapters        []ChapterFilter `json:"capitulos"`
	Chains          []ChainFilter   `json:"cadeias"`
	ExportCountries []string        `json:"paisesExp"`
	ImportCountries []string        `json:"paisesImp"`
}

// SideRollups groups the rollups that exist once per flow direction.
type SideRollups struct {
	Exports []ChainRow `json:"exportacoes"`
	Imports []ChainRow `json:"importacoes"`
}

// CountryRollups groups the by-country rollups per flow direction.
type CountryRollups struct {
	Exports []CountryRow `json:"exportacoes"`
	Imports []CountryRow `json:"importacoes"`
}

// ProductRollups groups the top-product rollups per flow direction.
type ProductRollups struct {
	Exports []ProductRow `json:"exportacoes"`
	Imports []ProductRow `json:"importacoes"`
}

// Summary is the complete derived view of one region/chapter dataset,
// everything the presentation layer consumes.
type Summary struct {
	Metadata          Metadata          `json:"metadata"`
	Filters           Filters           `json:"filters"`
	Timeseries        []BalanceRow      `json:"timeseries"`
	TimeseriesMonthly []BalanceRow      `json:"timeseriesMensal"`
	TimeseriesByChain []ChainBalanceRow `json:"timeseriesByCadeia"`
	ByChain           SideRollups       `json:"byCategoria"`
	ByCountry         CountryRollups    `json:"byPais"`
	TopProducts       ProductRollups    `json:"topProdutos"`
	FlowGraph         FlowGraph         `json:"sankey"`
	Forecast          Forecast          `json:"forecasts"`
}

// Package chains holds the productive-chain enumeration and the layered
// rule tables that classify NCM product codes into chains. The tables are
// static data loaded once at process start; classification is a total
// function with "outros" as the absorbing default.
package chains

// Chain identifies one productive chain. The set is closed; values outside
// it never leave this package.
type Chain string

const (
	Soy         Chain = "sojicultura"
	Poultry     Chain = "avicultura"
	Cattle      Chain = "bovinocultura"
	Swine       Chain = "suinocultura"
	Coffee      Chain = "cafeicultura"
	Cereals     Chain = "cerealicultura"
	SugarCane   Chain = "canavicultura"
	Fruits      Chain = "fruticultura"
	Vegetables  Chain = "olericultura"
	Aquaculture Chain = "aquicultura"
	Forestry    Chain = "florestal"
	Flowers     Chain = "floricultura"
	Honey       Chain = "apicultura"
	Dairy       Chain = "laticinios"
	Oilseeds    Chain = "oleaginosas"
	MeatAgro    Chain = "agroind_carnes"
	GrainAgro   Chain = "agroind_graos"
	Beverages   Chain = "bebidas"
	Tobacco     Chain = "tabaco"
	Other       Chain = "outros"

	Fertilizers  Chain = "fertilizantes"
	Herbicides   Chain = "herbicidas"
	Fungicides   Chain = "fungicidas"
	Insecticides Chain = "inseticidas"
	OtherInputs  Chain = "outros_insumos"
)

// Kind tags a chain as an agricultural product (output) or an agricultural
// supply (input) for downstream grouping.
type Kind string

const (
	KindProduct Kind = "produto"
	KindInput   Kind = "insumo"
)

// all lists every chain in a fixed presentation order.
var all = []Chain{
	Soy, Poultry, Cattle, Swine, Coffee, Cereals, SugarCane, Fruits,
	Vegetables, Aquaculture, Forestry, Flowers, Honey, Dairy, Oilseeds,
	MeatAgro, GrainAgro, Beverages, Tobacco, Other,
	Fertilizers, Herbicides, Fungicides, Insecticides, OtherInputs,
}

var names = map[Chain]string{
	Soy:          "Sojicultura",
	Poultry:      "Avicultura",
	Cattle:       "Bovinocultura",
	Swine:        "Suinocultura",
	Coffee:       "Cafeicultura",
	Cereals:      "Cerealicultura",
	SugarCane:    "Canavicultura",
	Fruits:       "Fruticultura",
	Vegetables:   "Olericultura",
	Aquaculture:  "Aquicultura",
	Forestry:     "Florestal",
	Flowers:      "Floricultura",
	Honey:        "Apicultura",
	Dairy:        "Laticínios",
	Oilseeds:     "Oleaginosas",
	MeatAgro:     "Agroind. Carnes",
	GrainAgro:    "Agroind. Grãos",
	Beverages:    "Bebidas",
	Tobacco:      "Tabaco",
	Other:        "Outros",
	Fertilizers:  "Fertilizantes",
	Herbicides:   "Herbicidas",
	Fungicides:   "Fungicidas",
	Insecticides: "Inseticidas",
	OtherInputs:  "Outros Insumos",
}

// colors follow the VBP rainbow palette used by the dashboard.
var colors = map[Chain]string{
	Soy:          "#22c55e",
	Poultry:      "#0ea5e9",
	Cattle:       "#f59e0b",
	Swine:        "#ef4444",
	Coffee:       "#78350f",
	Cereals:      "#eab308",
	SugarCane:    "#84cc16",
	Fruits:       "#f97316",
	Vegetables:   "#14b8a6",
	Aquaculture:  "#06b6d4",
	Forestry:     "#15803d",
	Flowers:      "#ec4899",
	Honey:        "#fbbf24",
	Dairy:        "#e0f2fe",
	Oilseeds:     "#fcd34d",
	MeatAgro:     "#dc2626",
	GrainAgro:    "#ca8a04",
	Beverages:    "#8b5cf6",
	Tobacco:      "#78716c",
	Other:        "#64748b",
	Fertilizers:  "#10b981",
	Herbicides:   "#f59e0b",
	Fungicides:   "#6366f1",
	Insecticides: "#ef4444",
	OtherInputs:  "#6b7280",
}

var kinds = map[Chain]Kind{
	Fertilizers:  KindInput,
	Herbicides:   KindInput,
	Fungicides:   KindInput,
	Insecticides: KindInput,
	OtherInputs:  KindInput,
}

// All returns every chain in a deterministic order.
func All() []Chain {
	out := make([]Chain, len(all))
	copy(out, all)
	return out
}

// ID returns the chain identifier as a plain string.
func (c Chain) ID() string { return string(c) }

// Name returns the display name of the chain.
func (c Chain) Name() string {
	if n, ok := names[c]; ok {
		return n
	}
	return names[Other]
}

// Color returns the display color of the chain.
func (c Chain) Color() string {
	if col, ok := colors[c]; ok {
		return col
	}
	return colors[Other]
}

// Kind reports whether the chain is an agricultural product or an input.
func (c Chain) Kind() Kind {
	if k, ok := kinds[c]; ok {
		return k
	}
	return KindProduct
}

// ByName resolves a display name back to its chain; ok is false for
// unknown names.
func ByName(name string) (Chain, bool) {
	for c, n := range names {
		if n == name {
			return c, true
		}
	}
	return Other, false
}

package chains

import "testing"

func TestClassifyExactCodeWins(t *testing.T) {
	// 0405 is a dairy heading but 04051000 (butter) stays on dairy while
	// 15021012 (bovine tallow) overrides the oils chapter.
	tests := []struct {
		name        string
		code        string
		description string
		chapter     int
		want        Chain
	}{
		{"soybeans", "12019000", "Soja, mesmo triturada, exceto para semeadura", 12, Soy},
		{"soybean meal", "23040090", "Bagaços e outros resíduos sólidos da extração do óleo de soja", 23, Soy},
		{"frozen chicken", "02071400", "Pedaços e miudezas de galos/galinhas, congelados", 2, Poultry},
		{"butter", "04051000", "Manteiga", 4, Dairy},
		{"bovine tallow", "15021012", "Sebo bovino fundido", 15, Cattle},
		{"urea", "31021010", "Ureia com teor de nitrogênio superior a 45%", 31, Fertilizers},
		{"herbicide", "38089324", "Herbicida à base de glifosato", 38, Herbicides},
		{"exact beats keywords", "22071090", "Álcool etílico não desnaturado", 22, SugarCane},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.code, tt.description, tt.chapter); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassifyKeywordLayer(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		description string
		chapter     int
		want        Chain
	}{
		{"chicken keyword in chapter 2", "02079900", "Carnes de frango não especificadas", 2, Poultry},
		{"bovine keyword in chapter 2", "02068000", "Miudezas comestíveis de bovino, frescas", 2, Cattle},
		{"swine keyword in chapter 2", "02091000", "Toucinho sem partes magras", 2, Swine},
		{"case insensitive", "02079900", "CARNE DE FRANGO", 2, Poultry},
		{"coffee keyword elsewhere", "19019099", "Preparação à base de café solúvel", 19, Coffee},
		{"no keyword falls to chapter", "08109090", "Outras frutas frescas não especificadas", 8, Fruits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.code, tt.description, tt.chapter); got != tt.want {
				t.Errorf("Classify(%s, %q) = %s, want %s", tt.code, tt.description, got, tt.want)
			}
		})
	}
}

func TestClassifyEmptyDescriptionSkipsKeywords(t *testing.T) {
	// With no description, a chapter-2 record cannot refine by species and
	// must land on the chapter default.
	if got := Classify("02079900", "", 2); got != Other {
		t.Errorf("Classify with empty description = %s, want %s", got, Other)
	}
	if got := Classify("10059099", "", 10); got != Cereals {
		t.Errorf("Classify with empty description = %s, want %s", got, Cereals)
	}
}

func TestClassifyChapterFallback(t *testing.T) {
	tests := []struct {
		chapter int
		want    Chain
	}{
		{3, Aquaculture},
		{4, Dairy},
		{6, Flowers},
		{9, Coffee},
		{12, Soy},
		{17, SugarCane},
		{24, Tobacco},
		{31, Fertilizers},
		{38, OtherInputs},
	}
	for _, tt := range tests {
		if got := Classify("99999999", "mercadoria sem regra", tt.chapter); got != tt.want {
			t.Errorf("Classify(chapter %d) = %s, want %s", tt.chapter, got, tt.want)
		}
	}
}

func TestClassifyUnknownEverything(t *testing.T) {
	if got := Classify("99999999", "mercadoria desconhecida", 99); got != Other {
		t.Errorf("Classify unknown = %s, want %s", got, Other)
	}
}

func TestClassifyHeading(t *testing.T) {
	tests := []struct {
		heading string
		want    Chain
	}{
		{"1201", Soy},
		{"0207", Poultry},
		{"1701", SugarCane},
		{"0409", Honey},
		{"3808", OtherInputs},
		{"0999", Coffee},  // unmapped heading, chapter 9 fallback
		{"9999", Other},   // unmapped heading and chapter
		{"", Other},       // malformed
	}
	for _, tt := range tests {
		if got := ClassifyHeading(tt.heading); got != tt.want {
			t.Errorf("ClassifyHeading(%q) = %s, want %s", tt.heading, got, tt.want)
		}
	}
}

func TestHeadingDescription(t *testing.T) {
	if got := HeadingDescription("1201"); got != "Soja em grãos" {
		t.Errorf("HeadingDescription(1201) = %q", got)
	}
	if got := HeadingDescription("9999"); got != "Produto 9999" {
		t.Errorf("HeadingDescription(9999) = %q", got)
	}
}

func TestChapterName(t *testing.T) {
	if got := ChapterName(10); got != "Cereais" {
		t.Errorf("ChapterName(10) = %q", got)
	}
	if got := ChapterName(99); got != "Cap. 99" {
		t.Errorf("ChapterName(99) = %q", got)
	}
}

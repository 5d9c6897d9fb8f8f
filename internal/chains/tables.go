package chains

// Rule tables, consolidated from the scattered per-script copies into one
// versioned data asset. Three layers feed Classify, in precedence order:
// exactCodes (8-digit NCM), keywordRules (ordered substring match on the
// description), chapterChains (fallback). headingChains serves
// description-less SH4 classification, with chapterChains as its fallback.

// chapterChains maps an NCM chapter to its default chain. Chapters 1 and 2
// stay on "outros" here; keyword rules refine them by species.
var chapterChains = map[int]Chain{
	1:  Other,
	2:  Other,
	3:  Aquaculture,
	4:  Dairy,
	5:  Other,
	6:  Flowers,
	7:  Vegetables,
	8:  Fruits,
	9:  Coffee,
	10: Cereals,
	11: GrainAgro,
	12: Soy,
	13: Forestry,
	14: Forestry,
	15: Oilseeds,
	16: MeatAgro,
	17: SugarCane,
	18: GrainAgro,
	19: GrainAgro,
	20: Fruits,
	21: GrainAgro,
	22: Beverages,
	23: Soy,
	24: Tobacco,
	31: Fertilizers,
	38: OtherInputs,
}

type keywordRule struct {
	chain    Chain
	keywords []string
}

// keywordRules is scanned in declared order; within a rule, keywords are
// scanned in declared order and the first substring hit wins. Keywords are
// stored lowercase; the description is lowercased before matching.
var keywordRules = []keywordRule{
	{Poultry, []string{
		"galo", "galinha", "frango", "peru", "pato", "ganso", "aves",
		"pintinho", "pintainho", "ovos de aves", "domesticus",
	}},
	{Cattle, []string{
		"bovino", "boi", "vaca", "búfalo", "vitela", "novilho",
		"leite de vaca", "sebo bovino", "couro bovino",
	}},
	{Swine, []string{
		"suíno", "porco", "leitão", "presunto", "bacon", "toucinho",
	}},
	{Soy, []string{
		"soja", "bagaço de soja", "farelo de soja", "óleo de soja",
	}},
	{Cereals, []string{
		"milho", "trigo", "arroz", "cevada", "aveia", "sorgo", "centeio",
		"cereal", "farinha de trigo", "farinha de milho",
	}},
	{Coffee, []string{
		"café", "coffee",
	}},
	{SugarCane, []string{
		"açúcar", "cana", "sacarose", "melaço", "etanol", "álcool etílico",
	}},
	{Fruits, []string{
		"laranja", "limão", "lima", "tangerina", "pomelo", "uva",
		"maçã", "pera", "pêssego", "ameixa", "damasco", "cereja",
		"banana", "manga", "abacate", "mamão", "melão", "melancia",
		"morango", "framboesa", "amora", "mirtilo", "kiwi",
		"abacaxi", "coco", "castanha", "noz", "amêndoa",
		"suco de laranja", "suco de uva", "vinho",
	}},
	{Vegetables, []string{
		"batata", "tomate", "cebola", "alho", "cenoura", "beterraba",
		"repolho", "couve", "alface", "espinafre", "brócolis",
		"pepino", "abobrinha", "abóbora", "berinjela", "pimentão",
		"feijão", "ervilha", "lentilha", "grão-de-bico", "fava",
		"mandioca", "inhame", "azeitona",
	}},
	{Aquaculture, []string{
		"peixe", "tilápia", "salmão", "atum", "sardinha", "bacalhau",
		"camarão", "lagosta", "caranguejo", "lula", "polvo",
		"molusco", "crustáceo", "pescado",
	}},
	{Forestry, []string{
		"madeira", "celulose", "papel", "resina", "goma",
		"bambu", "vime", "palha",
	}},
	{Honey, []string{
		"mel", "própolis", "cera de abelha", "geleia real",
	}},
	{Oilseeds, []string{
		"óleo de palma", "óleo de palmiste", "óleo de girassol",
		"óleo de milho", "óleo de canola", "óleo de amendoim",
		"azeite de oliva", "óleo de coco", "margarina",
		"gordura vegetal", "gordura animal",
	}},
	{Fertilizers, []string{
		"adubo", "fertilizante", "ureia", "nitrato", "fosfato", "potássio",
		"npk", "superfosfato", "cloreto de potássio", "sulfato de amônio",
		"fosfato de amônio", "map", "dap", "nitrato de amônio", "kcl",
		"fosfato diamônico", "fosfato monoamônico", "nitrogênio", "fósforo",
	}},
	{Herbicides, []string{
		"herbicida", "glifosato", "glyphosate", "2,4-d", "atrazina",
		"paraquat", "dicamba", "mesotrione", "nicosulfuron", "imazetapir",
		"matador de ervas", "inibidor de germinação",
	}},
	{Fungicides, []string{
		"fungicida", "mancozeb", "azoxistrobina", "tebuconazol",
		"carbendazim", "tiofanato", "trifloxistrobina", "propiconazol",
		"cobre", "enxofre", "sulfato de cobre",
	}},
	{Insecticides, []string{
		"inseticida", "imidacloprido", "fipronil", "lambda-cialotrina",
		"clorpirifós", "tiametoxam", "acefato", "cipermetrina",
		"permetrina", "piretróide", "organofosforado",
	}},
	{OtherInputs, []string{
		"acaricida", "nematicida", "rodenticida", "formicida",
		"regulador de crescimento", "desfolhante", "maturador",
		"defensivo agrícola", "agroquímico", "agrotóxico",
	}},
}

// exactCodes maps specific 8-digit NCM codes to chains, overriding both
// keyword and chapter layers.
var exactCodes = map[string]Chain{
	// Soy complex
	"12019000": Soy,
	"23040090": Soy,
	"23040010": Soy,
	"15071000": Soy,
	"15079011": Soy,
	"15079019": Soy,

	// Poultry
	"02071400": Poultry,
	"02071200": Poultry,
	"02071220": Poultry,
	"02071422": Poultry,
	"02071423": Poultry,
	"02071413": Poultry,
	"02071421": Poultry,
	"02071424": Poultry,
	"02071412": Poultry,
	"02109911": Poultry,
	"02071434": Poultry,
	"02072700": Poultry,
	"04071100": Poultry,
	"01051190": Poultry,

	// Swine
	"02032900": Swine,
	"02032200": Swine,
	"02064900": Swine,

	// Cattle
	"02023000": Cattle,
	"02013000": Cattle,
	"02062990": Cattle,
	"01022990": Cattle,
	"04051000": Dairy,
	"15021012": Cattle,

	// Sugar and ethanol
	"17011400": SugarCane,
	"17019900": SugarCane,
	"22071090": SugarCane,
	"22071010": SugarCane,

	// Coffee
	"09011110": Coffee,
	"21011110": Coffee,
	"21011190": Coffee,
	"21011200": Coffee,

	// Corn
	"10059010": Cereals,
	"10051000": Cereals,
	"11022000": Cereals,
	"11081200": Cereals,
	"11031300": Cereals,

	// Wheat
	"10019900": Cereals,
	"11010010": Cereals,

	// Mate
	"09030090": Forestry,
	"09030010": Forestry,

	// Orange juice
	"20091900": Fruits,
	"20091100": Fruits,

	// Chapter 31, fertilizers
	"31010000": Fertilizers,
	"31021010": Fertilizers,
	"31021090": Fertilizers,
	"31022100": Fertilizers,
	"31022910": Fertilizers,
	"31022990": Fertilizers,
	"31023000": Fertilizers,
	"31024000": Fertilizers,
	"31025011": Fertilizers,
	"31025019": Fertilizers,
	"31025090": Fertilizers,
	"31026000": Fertilizers,
	"31028000": Fertilizers,
	"31029000": Fertilizers,
	"31031100": Fertilizers,
	"31031900": Fertilizers,
	"31039011": Fertilizers,
	"31039019": Fertilizers,
	"31039090": Fertilizers,
	"31041000": Fertilizers,
	"31042010": Fertilizers,
	"31042090": Fertilizers,
	"31043010": Fertilizers,
	"31043090": Fertilizers,
	"31049010": Fertilizers,
	"31049090": Fertilizers,
	"31051000": Fertilizers,
	"31052000": Fertilizers,
	"31053010": Fertilizers,
	"31053090": Fertilizers,
	"31054000": Fertilizers,
	"31055100": Fertilizers,
	"31055900": Fertilizers,
	"31056000": Fertilizers,
	"31059011": Fertilizers,
	"31059019": Fertilizers,
	"31059090": Fertilizers,

	// Heading 3808, insecticides
	"38085200": Insecticides,
	"38085910": Insecticides,
	"38085921": Insecticides,
	"38085922": Insecticides,
	"38085923": Insecticides,
	"38085929": Insecticides,
	"38086100": Insecticides,
	"38086210": Insecticides,
	"38086290": Insecticides,
	"38086910": Insecticides,
	"38086990": Insecticides,
	"38089111": Insecticides,
	"38089119": Insecticides,
	"38089120": Insecticides,
	"38089191": Insecticides,
	"38089192": Insecticides,
	"38089193": Insecticides,
	"38089194": Insecticides,
	"38089195": Insecticides,
	"38089196": Insecticides,
	"38089197": Insecticides,
	"38089198": Insecticides,
	"38089199": Insecticides,

	// Heading 3808, fungicides
	"38089211": Fungicides,
	"38089219": Fungicides,
	"38089220": Fungicides,
	"38089291": Fungicides,
	"38089292": Fungicides,
	"38089293": Fungicides,
	"38089294": Fungicides,
	"38089295": Fungicides,
	"38089296": Fungicides,
	"38089297": Fungicides,
	"38089299": Fungicides,

	// Heading 3808, herbicides and growth regulators
	"38089311": Herbicides,
	"38089319": Herbicides,
	"38089321": Herbicides,
	"38089322": Herbicides,
	"38089323": Herbicides,
	"38089324": Herbicides,
	"38089325": Herbicides,
	"38089326": Herbicides,
	"38089327": Herbicides,
	"38089328": Herbicides,
	"38089329": Herbicides,
	"38089331": Herbicides,
	"38089332": Herbicides,
	"38089333": Herbicides,
	"38089341": OtherInputs,
	"38089349": OtherInputs,
	"38089351": OtherInputs,
	"38089352": OtherInputs,
	"38089359": OtherInputs,

	// Heading 3808, disinfectants, acaricides and the rest
	"38089411": OtherInputs,
	"38089419": OtherInputs,
	"38089421": OtherInputs,
	"38089422": OtherInputs,
	"38089429": OtherInputs,
	"38089911": OtherInputs,
	"38089919": OtherInputs,
	"38089920": OtherInputs,
	"38089991": OtherInputs,
	"38089992": OtherInputs,
	"38089993": OtherInputs,
	"38089994": OtherInputs,
	"38089995": OtherInputs,
	"38089996": OtherInputs,
	"38089999": OtherInputs,
}

// headingChains maps a 4-digit SH4 heading straight to a chain, for the
// municipality extracts that carry no description.
var headingChains = map[string]Chain{
	// Chapter 01, live animals
	"0101": Other,
	"0102": Cattle,
	"0103": Swine,
	"0104": Other,
	"0105": Poultry,

	// Chapter 02, meat
	"0201": Cattle,
	"0202": Cattle,
	"0203": Swine,
	"0204": Other,
	"0205": Other,
	"0206": MeatAgro,
	"0207": Poultry,
	"0208": Other,
	"0209": Swine,
	"0210": MeatAgro,

	// Chapter 03, fish and crustaceans
	"0301": Aquaculture,
	"0302": Aquaculture,
	"0303": Aquaculture,
	"0304": Aquaculture,
	"0305": Aquaculture,
	"0306": Aquaculture,
	"0307": Aquaculture,
	"0308": Aquaculture,

	// Chapter 04, dairy and eggs
	"0401": Dairy,
	"0402": Dairy,
	"0403": Dairy,
	"0404": Dairy,
	"0405": Dairy,
	"0406": Dairy,
	"0407": Poultry,
	"0408": Poultry,
	"0409": Honey,
	"0410": Other,

	// Chapter 05, other animal products
	"0501": Other,
	"0502": Other,
	"0503": Other,
	"0504": Other,
	"0505": Other,
	"0506": Other,
	"0507": Other,
	"0508": Other,
	"0509": Other,
	"0510": Other,
	"0511": Other,

	// Chapter 06, live plants
	"0601": Flowers,
	"0602": Flowers,
	"0603": Flowers,
	"0604": Flowers,

	// Chapter 07, vegetables
	"0701": Vegetables,
	"0702": Vegetables,
	"0703": Vegetables,
	"0704": Vegetables,
	"0705": Vegetables,
	"0706": Vegetables,
	"0707": Vegetables,
	"0708": Vegetables,
	"0709": Vegetables,
	"0710": Vegetables,
	"0711": Vegetables,
	"0712": Vegetables,
	"0713": Vegetables,
	"0714": Vegetables,

	// Chapter 08, fruit
	"0801": Fruits,
	"0802": Fruits,
	"0803": Fruits,
	"0804": Fruits,
	"0805": Fruits,
	"0806": Fruits,
	"0807": Fruits,
	"0808": Fruits,
	"0809": Fruits,
	"0810": Fruits,
	"0811": Fruits,
	"0812": Fruits,
	"0813": Fruits,
	"0814": Fruits,

	// Chapter 09, coffee, tea and spices
	"0901": Coffee,
	"0902": Other,
	"0903": Forestry,
	"0904": Other,
	"0905": Other,
	"0906": Other,
	"0907": Other,
	"0908": Other,
	"0909": Other,
	"0910": Other,

	// Chapter 10, cereals
	"1001": Cereals,
	"1002": Cereals,
	"1003": Cereals,
	"1004": Cereals,
	"1005": Cereals,
	"1006": Cereals,
	"1007": Cereals,
	"1008": Cereals,

	// Chapter 11, milling products
	"1101": GrainAgro,
	"1102": GrainAgro,
	"1103": GrainAgro,
	"1104": GrainAgro,
	"1105": GrainAgro,
	"1106": GrainAgro,
	"1107": GrainAgro,
	"1108": GrainAgro,
	"1109": GrainAgro,

	// Chapter 12, oilseeds
	"1201": Soy,
	"1202": Oilseeds,
	"1203": Oilseeds,
	"1204": Oilseeds,
	"1205": Oilseeds,
	"1206": Oilseeds,
	"1207": Oilseeds,
	"1208": Oilseeds,
	"1209": Other,
	"1210": Other,
	"1211": Other,
	"1212": Other,
	"1213": Other,
	"1214": Other,

	// Chapters 13 and 14, gums, resins and plaiting materials
	"1301": Forestry,
	"1302": Forestry,
	"1401": Forestry,
	"1402": Forestry,
	"1403": Forestry,
	"1404": Forestry,

	// Chapter 15, fats and oils
	"1501": Oilseeds,
	"1502": Cattle,
	"1503": Oilseeds,
	"1504": Aquaculture,
	"1505": Other,
	"1506": Other,
	"1507": Soy,
	"1508": Oilseeds,
	"1509": Oilseeds,
	"1510": Oilseeds,
	"1511": Oilseeds,
	"1512": Oilseeds,
	"1513": Oilseeds,
	"1514": Oilseeds,
	"1515": Oilseeds,
	"1516": Oilseeds,
	"1517": Oilseeds,
	"1518": Oilseeds,
	"1519": Other,
	"1520": Other,
	"1521": Other,
	"1522": Other,

	// Chapter 16, meat and fish preparations
	"1601": MeatAgro,
	"1602": MeatAgro,
	"1603": MeatAgro,
	"1604": Aquaculture,
	"1605": Aquaculture,

	// Chapter 17, sugars
	"1701": SugarCane,
	"1702": SugarCane,
	"1703": SugarCane,
	"1704": GrainAgro,

	// Chapter 18, cocoa
	"1801": GrainAgro,
	"1802": GrainAgro,
	"1803": GrainAgro,
	"1804": GrainAgro,
	"1805": GrainAgro,
	"1806": GrainAgro,

	// Chapter 19, cereal preparations
	"1901": GrainAgro,
	"1902": GrainAgro,
	"1903": GrainAgro,
	"1904": GrainAgro,
	"1905": GrainAgro,

	// Chapter 20, vegetable and fruit preparations
	"2001": Fruits,
	"2002": Vegetables,
	"2003": Vegetables,
	"2004": Vegetables,
	"2005": Vegetables,
	"2006": Fruits,
	"2007": Fruits,
	"2008": Fruits,
	"2009": Fruits,

	// Chapter 21, miscellaneous food preparations
	"2101": Coffee,
	"2102": Beverages,
	"2103": GrainAgro,
	"2104": GrainAgro,
	"2105": Dairy,
	"2106": GrainAgro,

	// Chapter 22, beverages
	"2201": Beverages,
	"2202": Beverages,
	"2203": Beverages,
	"2204": Beverages,
	"2205": Beverages,
	"2206": Beverages,
	"2207": SugarCane,
	"2208": Beverages,
	"2209": Beverages,

	// Chapter 23, food residues and feed
	"2301": Aquaculture,
	"2302": GrainAgro,
	"2303": GrainAgro,
	"2304": Soy,
	"2305": Oilseeds,
	"2306": Oilseeds,
	"2307": Beverages,
	"2308": Other,
	"2309": GrainAgro,

	// Chapter 24, tobacco
	"2401": Tobacco,
	"2402": Tobacco,
	"2403": Tobacco,

	// Chapter 31, fertilizers
	"3101": Fertilizers,
	"3102": Fertilizers,
	"3103": Fertilizers,
	"3104": Fertilizers,
	"3105": Fertilizers,

	// Heading 3808, agrochemicals; refined by exact NCM when available
	"3808": OtherInputs,
}

// chapterNames are the legacy per-chapter display labels.
var chapterNames = map[int]string{
	1:  "Animais vivos",
	2:  "Carnes e miudezas",
	3:  "Peixes e crustaceos",
	4:  "Laticinios e ovos",
	5:  "Outros prod. animais",
	6:  "Plantas e floricultura",
	7:  "Horticolas e raizes",
	8:  "Frutas",
	9:  "Cafe, cha e especiarias",
	10: "Cereais",
	11: "Produtos de moagem",
	12: "Sementes oleaginosas",
	13: "Gomas e resinas",
	14: "Mat. para entrancar",
	15: "Gorduras e oleos",
	16: "Prep. carne/peixe",
	17: "Acucares",
	18: "Cacau e preparacoes",
	19: "Prep. de cereais",
	20: "Prep. de horticolas",
	21: "Prep. alimenticias",
	22: "Bebidas e vinagres",
	23: "Residuos alimentares",
	24: "Tabaco",
	31: "Fertilizantes",
	38: "Defensivos Agricolas",
}

// headingNames are Portuguese product descriptions per SH4 heading, used as
// the placeholder description when the lookup table has no entry.
var headingNames = map[string]string{
	"0101": "Cavalos, asininos e muares vivos",
	"0102": "Bovinos vivos",
	"0103": "Suínos vivos",
	"0104": "Ovinos e caprinos vivos",
	"0105": "Aves domésticas vivas",
	"0201": "Carne bovina fresca ou refrigerada",
	"0202": "Carne bovina congelada",
	"0203": "Carne suína fresca, refrigerada ou congelada",
	"0204": "Carne ovina ou caprina",
	"0205": "Carne de cavalo, asinino ou muar",
	"0206": "Miudezas comestíveis",
	"0207": "Carne e miudezas de aves",
	"0208": "Outras carnes e miudezas",
	"0209": "Toucinho e gordura de porco",
	"0210": "Carnes salgadas, secas ou defumadas",
	"0301": "Peixes vivos",
	"0302": "Peixes frescos ou refrigerados",
	"0303": "Peixes congelados",
	"0304": "Filés de peixe e outras carnes de peixe",
	"0305": "Peixes secos, salgados ou defumados",
	"0306": "Crustáceos",
	"0307": "Moluscos",
	"0308": "Invertebrados aquáticos",
	"0401": "Leite e creme de leite",
	"0402": "Leite concentrado ou adoçado",
	"0403": "Iogurte e leite fermentado",
	"0404": "Soro de leite",
	"0405": "Manteiga e gorduras lácteas",
	"0406": "Queijos e requeijão",
	"0407": "Ovos de aves com casca",
	"0408": "Ovos sem casca e gemas",
	"0409": "Mel natural",
	"0410": "Produtos comestíveis de origem animal",
	"0601": "Bulbos, tubérculos e rizomas",
	"0602": "Plantas vivas e mudas",
	"0603": "Flores e botões de flores cortados",
	"0604": "Folhagem e ramos para ornamentação",
	"0701": "Batatas frescas ou refrigeradas",
	"0702": "Tomates frescos ou refrigerados",
	"0703": "Cebolas, alhos e alhos-porros",
	"0704": "Couves, couve-flor e repolhos",
	"0705": "Alfaces e chicórias",
	"0706": "Cenouras, nabos e raízes comestíveis",
	"0707": "Pepinos e pepininhos",
	"0708": "Leguminosas (ervilhas e feijões)",
	"0709": "Outros produtos hortícolas frescos",
	"0710": "Produtos hortícolas congelados",
	"0711": "Produtos hortícolas conservados",
	"0712": "Produtos hortícolas secos",
	"0713": "Legumes de vagem secos",
	"0714": "Mandioca e raízes amiláceas",
	"0801": "Cocos, castanhas e nozes",
	"0802": "Outras frutas de casca rija",
	"0803": "Bananas frescas ou secas",
	"0804": "Tâmaras, figos, abacates e mangas",
	"0805": "Frutas cítricas (laranjas, limões)",
	"0806": "Uvas frescas ou secas",
	"0807": "Melões e melancias",
	"0808": "Maçãs, peras e marmelos",
	"0809": "Damascos, cerejas e pêssegos",
	"0810": "Outras frutas frescas",
	"0811": "Frutas congeladas",
	"0812": "Frutas conservadas provisoriamente",
	"0813": "Frutas secas",
	"0814": "Cascas de frutas cítricas",
	"0901": "Café (grão ou torrado)",
	"0902": "Chá",
	"0903": "Mate (erva-mate)",
	"0904": "Pimenta e pimentão",
	"0905": "Baunilha",
	"0906": "Canela",
	"0907": "Cravo-da-índia",
	"0908": "Noz-moscada e cardamomo",
	"0909": "Sementes de anis, cominho e funcho",
	"0910": "Gengibre e outras especiarias",
	"1001": "Trigo e mistura de trigo com centeio",
	"1002": "Centeio",
	"1003": "Cevada",
	"1004": "Aveia",
	"1005": "Milho",
	"1006": "Arroz",
	"1007": "Sorgo de grão",
	"1008": "Trigo mourisco e outros cereais",
	"1101": "Farinhas de trigo",
	"1102": "Farinhas de outros cereais",
	"1103": "Grumos, sêmolas e pellets de cereais",
	"1104": "Grãos de cereais trabalhados",
	"1105": "Farinha e flocos de batata",
	"1106": "Farinhas de leguminosas",
	"1107": "Malte",
	"1108": "Amidos e féculas",
	"1109": "Glúten de trigo",
	"1201": "Soja em grãos",
	"1202": "Amendoim",
	"1203": "Copra",
	"1204": "Sementes de linhaça",
	"1205": "Sementes de colza ou canola",
	"1206": "Sementes de girassol",
	"1207": "Outras sementes oleaginosas",
	"1208": "Farinhas de sementes oleaginosas",
	"1209": "Sementes para semeadura",
	"1210": "Cones de lúpulo",
	"1211": "Plantas aromáticas e medicinais",
	"1212": "Alfarroba e algas",
	"1213": "Palhas e cascas de cereais",
	"1214": "Nabo forrageiro e feno",
	"1301": "Goma-laca e resinas naturais",
	"1302": "Sucos e extratos vegetais",
	"1401": "Matérias vegetais para entrançar",
	"1404": "Produtos vegetais diversos",
	"1501": "Gordura de porco e de aves",
	"1502": "Gorduras de bovinos, ovinos ou caprinos",
	"1503": "Estearina e óleo de banha",
	"1504": "Gorduras e óleos de peixes",
	"1505": "Suarda e gorduras derivadas",
	"1506": "Outras gorduras animais",
	"1507": "Óleo de soja",
	"1508": "Óleo de amendoim",
	"1509": "Azeite de oliva",
	"1510": "Outros óleos de oliva",
	"1511": "Óleo de dendê (palma)",
	"1512": "Óleos de girassol, cártamo ou algodão",
	"1513": "Óleos de coco ou palmiste",
	"1514": "Óleos de colza, mostarda ou canola",
	"1515": "Outras gorduras e óleos vegetais",
	"1516": "Gorduras e óleos hidrogenados",
	"1517": "Margarina e misturas",
	"1518": "Gorduras e óleos modificados",
	"1520": "Glicerol em bruto",
	"1521": "Ceras vegetais e de abelhas",
	"1522": "Dégras e resíduos de gorduras",
	"1601": "Enchidos e produtos semelhantes de carne",
	"1602": "Outras preparações de carne",
	"1603": "Extratos e sucos de carne",
	"1604": "Preparações de peixes",
	"1605": "Preparações de crustáceos e moluscos",
	"1701": "Açúcar de cana ou beterraba",
	"1702": "Outros açúcares (lactose, glicose)",
	"1703": "Melaços",
	"1704": "Produtos de confeitaria sem cacau",
	"1801": "Cacau em grãos",
	"1802": "Cascas e resíduos de cacau",
	"1803": "Pasta de cacau",
	"1804": "Manteiga e gordura de cacau",
	"1805": "Cacau em pó sem açúcar",
	"1806": "Chocolate e preparações com cacau",
	"1901": "Extratos de malte e preparações lácteas",
	"1902": "Massas alimentícias",
	"1903": "Tapioca e seus sucedâneos",
	"1904": "Cereais expandidos ou em flocos",
	"1905": "Pães, bolachas e produtos de padaria",
	"2001": "Hortícolas e frutas em vinagre",
	"2002": "Tomates preparados ou conservados",
	"2003": "Cogumelos e trufas preparados",
	"2004": "Outros hortícolas congelados",
	"2005": "Outros hortícolas preparados",
	"2006": "Hortícolas e frutas cristalizados",
	"2007": "Doces, geleias e purês de frutas",
	"2008": "Frutas e partes de plantas preparadas",
	"2009": "Sucos de frutas ou hortícolas",
	"2101": "Extratos de café, chá e mate",
	"2102": "Leveduras e fermentos",
	"2103": "Molhos e condimentos",
	"2104": "Preparações para sopas",
	"2105": "Sorvetes",
	"2106": "Outras preparações alimentícias",
	"2201": "Águas (mineral e gaseificada)",
	"2202": "Águas e bebidas não alcoólicas",
	"2203": "Cervejas de malte",
	"2204": "Vinhos de uvas frescas",
	"2205": "Vermutes e vinhos aromatizados",
	"2206": "Outras bebidas fermentadas",
	"2207": "Álcool etílico não desnaturado",
	"2208": "Álcool etílico e aguardentes",
	"2209": "Vinagres",
	"2301": "Farinhas de carnes e peixes",
	"2302": "Farelos e resíduos de cereais",
	"2303": "Resíduos de amido e açúcar",
	"2304": "Farelo e torta de soja",
	"2305": "Farelo e torta de amendoim",
	"2306": "Farelos de outras oleaginosas",
	"2307": "Borras de vinho e tártaro",
	"2308": "Matérias vegetais para ração",
	"2309": "Preparações para alimentação animal",
	"2401": "Tabaco não manufaturado",
	"2402": "Charutos e cigarros",
	"2403": "Outros produtos de tabaco",
	"3101": "Adubos orgânicos (origem animal ou vegetal)",
	"3102": "Adubos minerais nitrogenados (ureia, nitrato de amônio)",
	"3103": "Adubos minerais fosfatados (superfosfatos)",
	"3104": "Adubos minerais potássicos (cloreto de potássio)",
	"3105": "Adubos NPK e misturas (MAP, DAP)",
	"3808": "Inseticidas, fungicidas, herbicidas e similares",
}

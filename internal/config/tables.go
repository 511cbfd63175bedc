package config

import "github.com/Denger878/landscape-data-pipeline/internal/model"

// DefaultLandmarks maps description keywords to canonical landmark
// names. Order is precedence: specific keywords must be matched before
// broader ones, so the table is an ordered slice, never a map.
var DefaultLandmarks = model.KeywordTable{
	// Iceland
	{Keyword: "jokulsarlon", Canonical: "Jökulsárlón Glacier Lagoon"},
	{Keyword: "skogafoss", Canonical: "Skógafoss"},
	{Keyword: "seljalandsfoss", Canonical: "Seljalandsfoss"},
	{Keyword: "gulfoss", Canonical: "Gullfoss"},
	{Keyword: "reynisfjara", Canonical: "Reynisfjara Black Beach"},
	{Keyword: "kirkjufell", Canonical: "Kirkjufell"},

	// USA - National Parks
	{Keyword: "yosemite", Canonical: "Yosemite Valley"},
	{Keyword: "grand canyon", Canonical: "Grand Canyon"},
	{Keyword: "yellowstone", Canonical: "Yellowstone"},
	{Keyword: "zion", Canonical: "Zion National Park"},
	{Keyword: "bryce canyon", Canonical: "Bryce Canyon"},
	{Keyword: "arches", Canonical: "Arches National Park"},
	{Keyword: "antelope canyon", Canonical: "Antelope Canyon"},
	{Keyword: "crater lake", Canonical: "Crater Lake"},
	{Keyword: "death valley", Canonical: "Death Valley"},
	{Keyword: "monument valley", Canonical: "Monument Valley"},
	{Keyword: "sedona", Canonical: "Sedona"},
	{Keyword: "havasu falls", Canonical: "Havasu Falls"},

	// Canada
	{Keyword: "banff", Canonical: "Banff National Park"},
	{Keyword: "moraine lake", Canonical: "Moraine Lake"},
	{Keyword: "lake louise", Canonical: "Lake Louise"},
	{Keyword: "peyto lake", Canonical: "Peyto Lake"},
	{Keyword: "jasper", Canonical: "Jasper National Park"},

	// South America
	{Keyword: "patagonia", Canonical: "Patagonia"},
	{Keyword: "torres del paine", Canonical: "Torres del Paine"},
	{Keyword: "iguazu", Canonical: "Iguazu Falls"},
	{Keyword: "salar de uyuni", Canonical: "Salar de Uyuni"},
	{Keyword: "machu picchu", Canonical: "Machu Picchu"},
	{Keyword: "atacama", Canonical: "Atacama Desert"},
	{Keyword: "perito moreno", Canonical: "Perito Moreno Glacier"},

	// Europe
	{Keyword: "dolomites", Canonical: "Dolomites"},
	{Keyword: "matterhorn", Canonical: "Matterhorn"},
	{Keyword: "lofoten", Canonical: "Lofoten Islands"},
	{Keyword: "faroe", Canonical: "Faroe Islands"},
	{Keyword: "plitvice", Canonical: "Plitvice Lakes"},
	{Keyword: "lake bled", Canonical: "Lake Bled"},
	{Keyword: "swiss alps", Canonical: "Swiss Alps"},
	{Keyword: "scottish highlands", Canonical: "Scottish Highlands"},
	{Keyword: "amalfi", Canonical: "Amalfi Coast"},
	{Keyword: "cinque terre", Canonical: "Cinque Terre"},
	{Keyword: "santorini", Canonical: "Santorini"},
	{Keyword: "meteora", Canonical: "Meteora"},
	{Keyword: "cappadocia", Canonical: "Cappadocia"},
	{Keyword: "pamukkale", Canonical: "Pamukkale"},

	// Asia & Oceania
	{Keyword: "mount fuji", Canonical: "Mount Fuji"},
	{Keyword: "zhangjiajie", Canonical: "Zhangjiajie"},
	{Keyword: "guilin", Canonical: "Guilin"},
	{Keyword: "halong bay", Canonical: "Halong Bay"},
	{Keyword: "phi phi", Canonical: "Phi Phi Islands"},
	{Keyword: "bali", Canonical: "Bali"},
	{Keyword: "milford sound", Canonical: "Milford Sound"},
	{Keyword: "mount cook", Canonical: "Mount Cook"},
	{Keyword: "lake tekapo", Canonical: "Lake Tekapo"},

	// Other
	{Keyword: "uluru", Canonical: "Uluru"},
	{Keyword: "twelve apostles", Canonical: "Twelve Apostles"},
	{Keyword: "fiordland", Canonical: "Fiordland"},
}

// DefaultCountries maps description keywords to canonical country
// names, checked after landmarks. US state names map to United States.
var DefaultCountries = model.KeywordTable{
	{Keyword: "iceland", Canonical: "Iceland"},
	{Keyword: "norway", Canonical: "Norway"},
	{Keyword: "switzerland", Canonical: "Switzerland"},
	{Keyword: "italy", Canonical: "Italy"},
	{Keyword: "canada", Canonical: "Canada"},
	{Keyword: "new zealand", Canonical: "New Zealand"},
	{Keyword: "chile", Canonical: "Chile"},
	{Keyword: "bolivia", Canonical: "Bolivia"},
	{Keyword: "peru", Canonical: "Peru"},
	{Keyword: "greece", Canonical: "Greece"},
	{Keyword: "turkey", Canonical: "Turkey"},
	{Keyword: "slovenia", Canonical: "Slovenia"},
	{Keyword: "croatia", Canonical: "Croatia"},
	{Keyword: "scotland", Canonical: "Scotland"},
	{Keyword: "japan", Canonical: "Japan"},
	{Keyword: "china", Canonical: "China"},
	{Keyword: "vietnam", Canonical: "Vietnam"},
	{Keyword: "thailand", Canonical: "Thailand"},
	{Keyword: "indonesia", Canonical: "Indonesia"},
	{Keyword: "australia", Canonical: "Australia"},
	{Keyword: "usa", Canonical: "United States"},
	{Keyword: "united states", Canonical: "United States"},
	{Keyword: "california", Canonical: "United States"},
	{Keyword: "arizona", Canonical: "United States"},
	{Keyword: "utah", Canonical: "United States"},
	{Keyword: "colorado", Canonical: "United States"},
	{Keyword: "montana", Canonical: "United States"},
	{Keyword: "oregon", Canonical: "United States"},
	{Keyword: "washington", Canonical: "United States"},
}

// SearchQueries is the default query rotation for ingestion, covering
// diverse landscape types.
var SearchQueries = []string{
	// Water features
	"turquoise waterfall",
	"cascade waterfall",
	"natural hot springs",
	"geyser eruption",
	"thermal pool",
	"crystal clear lake",
	"glacier lake",
	"alpine lake reflection",

	// Mountains & peaks
	"jagged mountain peaks",
	"snow capped mountains",
	"volcanic crater",
	"volcanic landscape",
	"alpine meadow",
	"mountain summit",

	// Canyons & valleys
	"slot canyon",
	"red rock canyon",
	"canyon walls",
	"valley vista",
	"gorge landscape",

	// Caves & formations
	"sea cave",
	"limestone cave",
	"rock formations",
	"natural arch",
	"hoodoos rock",

	// Deserts
	"sand dunes sunset",
	"desert oasis",
	"salt flats",
	"badlands landscape",
	"sandstone formations",

	// Coastal
	"sea cliffs",
	"rocky coastline",
	"fjord landscape",
	"island aerial view",
	"lagoon tropical",

	// Ice & snow
	"glacier panorama",
	"ice cave blue",
	"frozen waterfall",
	"aurora landscape",
	"tundra landscape",

	// Unique features
	"terraced rice fields",
	"lava field",
	"karst mountains",
	"bioluminescent bay",
	"rainbow eucalyptus",
	"lavender fields",
	"tulip fields",
	"cherry blossom mountain",
}

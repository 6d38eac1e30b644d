package config

// Game modes. The mode string is both the config key and the CLI value.
const (
	ModeSR2030 = "SR2030"
	ModeSRU    = "SRU"
)

// Region is one entry in a game's region filter table.
type Region struct {
	Code  string // single character, or "*" for global/export
	Label string
}

// Game describes the fixed per-game conventions that are not user
// configurable: mesh extension order and the region code table.
type Game struct {
	Mode         string
	Name         string
	PrimaryExt   string // native mesh format for this game
	SecondaryExt string // the other game's format, accepted as fallback
	Regions      []Region
}

// Games lists the supported titles in quick-switch order.
var Games = []Game{
	{
		Mode:         ModeSR2030,
		Name:         "SR 2030",
		PrimaryExt:   ".cmo",
		SecondaryExt: ".x",
		Regions:      regionsSR2030,
	},
	{
		Mode:         ModeSRU,
		Name:         "SR Ultimate",
		PrimaryExt:   ".x",
		SecondaryExt: ".cmo",
		Regions:      regionsSRU,
	},
}

// GameFor resolves a mode string to its game definition.
func GameFor(mode string) (Game, bool) {
	for _, g := range Games {
		if g.Mode == mode {
			return g, true
		}
	}
	return Game{}, false
}

// SR2030 supports lowercase region codes in addition to the classic
// uppercase set, so the codes here are case-sensitive.
var regionsSR2030 = []Region{
	{"*", "Global/Export"},
	{"A", "South Africa"},
	{"B", "Argentina"},
	{"C", "China"},
	{"D", "Netherlands"},
	{"E", "Europe/Ireland"},
	{"F", "France"},
	{"G", "Germany"},
	{"H", "Italy"},
	{"I", "Israel"},
	{"J", "Japan"},
	{"K", "South Korea"},
	{"L", "North Korea"},
	{"M", "UK/British"},
	{"N", "Canada"},
	{"O", "Other"},
	{"P", "Philippines"},
	{"Q", "India"},
	{"R", "Russia"},
	{"S", "Sweden"},
	{"T", "Czech"},
	{"U", "USA"},
	{"V", "Taiwan"},
	{"W", "World Export"},
	{"X", "Balkans/Yugoslavia"},
	{"Y", "Singapore"},
	{"Z", "Arab"},
	{"a", "Austria"},
	{"b", "Brazil"},
	{"c", "Belgium"},
	{"d", "Denmark"},
	{"e", "Spain"},
	{"f", "Finland"},
	{"g", "Greece"},
	{"h", "Poland"},
	{"i", "Iran"},
	{"j", "Romania"},
	{"k", "Norway"},
	{"l", "Indonesia"},
	{"m", "Pakistan"},
	{"n", "Australia"},
	{"o", "E. Europe Generic"},
	{"p", "Portugal"},
	{"q", "Iraq"},
	{"r", "Former Soviet/Belarus"},
	{"s", "Switzerland"},
	{"t", "Turkey"},
	{"u", "Ukraine"},
	{"v", "Oceania/Pacific"},
	{"w", "Sub-Saharan Africa"},
	{"x", "SE Asia Generic"},
	{"z", "New Zealand"},
}

var regionsSRU = []Region{
	{"*", "Global/Export"},
	{"A", "South Africa"},
	{"B", "Brazil/Argentina"},
	{"C", "China"},
	{"D", "BeNeLux"},
	{"E", "Europe/Ireland/Spain/Portugal/Turkey/Greece"},
	{"F", "France"},
	{"G", "Germany"},
	{"H", "Italy"},
	{"I", "Israel"},
	{"J", "Japan"},
	{"K", "South Korea"},
	{"L", "North Korea"},
	{"M", "UK/British"},
	{"N", "Canada/Australia"},
	{"O", "Other"},
	{"Q", "India"},
	{"R", "Russia/Ukraine/Soviet/Belarus"},
	{"S", "Sweden/Swiss/Denmark/Norway"},
	{"T", "Czech/Austria/Yugoslavia/Finland/Poland/Romania"},
	{"U", "USA"},
	{"V", "Taiwan/Philippines"},
	{"W", "World Export"},
	{"X", "Yugoslav"},
	{"Y", "Pacific/Singapore"},
	{"Z", "Arab/Iran/Iraq/Pakistan"},
}

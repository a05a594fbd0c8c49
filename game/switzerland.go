package game

// CreateSwitzerland builds the built-in map of the 26 Swiss cantons grouped
// into the seven statistical regions.
func CreateSwitzerland() *Map {
	m := NewMap("switzerland")
	ids := make(map[string]int, len(cantonAbbreviations))

	for i, abbrev := range cantonAbbreviations {
		// Names and abbreviations are unique, so AddTerritory cannot fail here
		t, _ := m.AddTerritory(cantonNames[i], i%6, i/6)
		ids[abbrev] = t.ID
	}

	for _, r := range regions {
		c := m.AddContinent(r.name, r.bonus)
		for _, abbrev := range r.cantons {
			// Both IDs were just created, so Assign cannot fail here
			m.Assign(ids[abbrev], c.ID)
		}
	}

	for _, abbrev := range cantonAbbreviations {
		for _, neighbor := range adjacencyData[abbrev] {
			// Every neighbor is a known canton, so AddBorder cannot fail here
			m.AddBorder(ids[abbrev], ids[neighbor])
		}
	}

	return m
}

var cantonAbbreviations = []string{
	"AG", "AI", "AR", "BE", "BL", "BS", "FR", "GE", "GL", "GR",
	"JU", "LU", "NE", "NW", "OW", "SG", "SH", "SO", "SZ", "TG",
	"TI", "UR", "VD", "VS", "ZG", "ZH",
}

var cantonNames = []string{
	"Aargau", "Appenzell Innerrhoden", "Appenzell Ausserrhoden", "Bern",
	"Basel-Landschaft", "Basel-Stadt", "Fribourg", "Geneva", "Glarus",
	"Graubünden", "Jura", "Lucerne", "Neuchâtel", "Nidwalden", "Obwalden",
	"St. Gallen", "Schaffhausen", "Solothurn", "Schwyz", "Thurgau",
	"Ticino", "Uri", "Vaud", "Valais", "Zug", "Zürich",
}

var regions = []struct {
	name    string
	bonus   int
	cantons []string
}{
	{"Lake Geneva", 3, []string{"GE", "VD", "VS"}},
	{"Espace Mittelland", 4, []string{"BE", "FR", "SO", "NE", "JU"}},
	{"Northwestern Switzerland", 2, []string{"BS", "BL", "AG"}},
	{"Zürich", 1, []string{"ZH"}},
	{"Eastern Switzerland", 5, []string{"GL", "SH", "AR", "AI", "SG", "GR", "TG"}},
	{"Central Switzerland", 4, []string{"LU", "UR", "SZ", "OW", "NW", "ZG"}},
	{"Ticino", 1, []string{"TI"}},
}

var adjacencyData = map[string][]string{
	"AG": {"BL", "LU", "ZG", "ZH", "SO"},
	"AI": {"AR", "SG"},
	"AR": {"AI", "SG"},
	"BE": {"FR", "JU", "NE", "SO", "VD", "VS", "LU"},
	"BL": {"AG", "BS", "SO", "JU"},
	"BS": {"BL"},
	"FR": {"BE", "VD", "NE"},
	"GE": {"VD"},
	"GL": {"SG", "SZ", "GR"},
	"GR": {"SG", "TI", "GL", "UR"},
	"JU": {"BE", "SO", "BL"},
	"LU": {"AG", "BE", "NW", "OW", "ZG"},
	"NE": {"BE", "FR", "VD"},
	"NW": {"OW", "LU", "UR"},
	"OW": {"NW", "UR", "LU"},
	"SG": {"AI", "AR", "GL", "TG", "ZH", "GR"},
	"SH": {"ZH", "TG"},
	"SO": {"BE", "BL", "JU", "AG"},
	"SZ": {"ZG", "UR", "GL"},
	"TG": {"SH", "SG", "ZH"},
	"TI": {"GR", "VS", "UR"},
	"UR": {"SZ", "OW", "GR", "TI", "NW"},
	"VD": {"GE", "FR", "VS", "NE", "BE"},
	"VS": {"VD", "BE", "TI", "UR"},
	"ZG": {"AG", "SZ", "LU", "ZH"},
	"ZH": {"AG", "SG", "TG", "SH", "ZG"},
}

package domain

// Centers is the fixed CNTSCI taxonomy of distribution sites. The list
// is closed: records carrying any other value aggregate under the raw
// string they arrived with, but scope resolution only ever pins to a
// member of this list.
var Centers = []string{
	"CRTS TREICHVILLE", "CDTS BINGERVILLE", "SP PORT BOUET", "SP ABOBO BAOULE",
	"SP ANYAMA", "SP YOPOUGON ATTIE", "SP CHU COCODY", "SP YOPOUGON CHU",
	"CDTS ABOISSO", "CDTS BONOUA", "CDTS ADZOPE", "CDTS AGBOVILLE", "CDTS DABOU",
	"CRTS YAMOUSSOUKRO", "CDTS TOUMODI", "CDTS GAGNOA", "CDTS DIVO", "CDTS DIMBOKRO",
	"CRTS BOUAKE", "CRTS KORHOGO", "CDTS FERKE", "CRTS ABENGOUROU", "CDTS DAOUKRO",
	"CDTS BONGOUANOU", "CDTS BONDOUKOU", "CDTS BOUNA", "CRTS DALOA", "CDTS SEGUELA",
	"CRTS SAN-PEDRO", "CDTS DUEKOUE", "CCRTS MAN", "CDTS ODIENNE", "CDTS BOUAFLE",
}

// Assignment sentinels. They live in the same column as center names in
// the user sheet, but they are not centers: ScopeFor maps them to a
// tagged variant exactly once so that no scope decision ever compares
// against these literals again.
const (
	AllCentersSentinel   = "TOUS LES CENTRES CNTSCI"
	HeadquartersSentinel = "DIRECTION GENERALE"
)

func IsKnownCenter(name string) bool {
	for _, c := range Centers {
		if c == name {
			return true
		}
	}
	return false
}

// CenterFilter is the dashboard's site selector: either every center or
// one named center.
type CenterFilter struct {
	All    bool
	Center string
}

func AllCenters() CenterFilter { return CenterFilter{All: true} }

func OneCenter(name string) CenterFilter { return CenterFilter{Center: name} }

// ParseCenterFilter maps the query-string value to a filter. Empty and
// the historical "all sites" values select everything.
func ParseCenterFilter(raw string) CenterFilter {
	switch raw {
	case "", "TOUS", "TOUS LES SITES", AllCentersSentinel:
		return AllCenters()
	}
	return OneCenter(raw)
}

func (f CenterFilter) Matches(center string) bool {
	return f.All || f.Center == center
}

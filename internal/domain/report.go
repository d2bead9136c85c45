package domain

// CivilDate is the canonical (day, month, year) triple produced by date
// normalization: zero-padded two-digit day and month, four-digit year,
// all empty when the source string was unparsable.
type CivilDate struct {
	Day   string
	Month string
	Year  string
}

func (d CivilDate) IsZero() bool {
	return d.Day == "" && d.Month == "" && d.Year == ""
}

func (d CivilDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Day + "/" + d.Month + "/" + d.Year
}

// ProductCategory is the closed classification of free-text product
// labels.
type ProductCategory int

const (
	Unclassified ProductCategory = iota
	AdultRedCells
	PediatricRedCells
	Plasma
	Platelets
)

var categoryNames = map[ProductCategory]string{
	Unclassified:      "AUTRES",
	AdultRedCells:     "CGR ADULTE",
	PediatricRedCells: "CGR PEDIATRIQUE",
	Plasma:            "PLASMA",
	Platelets:         "PLAQUETTES",
}

func (c ProductCategory) String() string { return categoryNames[c] }

func (c ProductCategory) MarshalText() ([]byte, error) {
	return []byte(categoryNames[c]), nil
}

// Window selects a time bucket. Each field is either a concrete
// zero-padded value or empty, meaning "all".
type Window struct {
	Year  string `json:"year" query:"year"`
	Month string `json:"month" query:"month"`
	Day   string `json:"day" query:"day"`
}

func (w Window) Matches(d CivilDate) bool {
	if w.Year != "" && d.Year != w.Year {
		return false
	}
	if w.Month != "" && d.Month != w.Month {
		return false
	}
	if w.Day != "" && d.Day != w.Day {
		return false
	}
	return true
}

// StatBucket is a flat aggregation result for one window and center
// filter. Constructed fresh on every call, never mutated afterwards.
type StatBucket struct {
	Total           int                         `json:"total"`
	ByCategory      map[ProductCategory]int     `json:"byCategory"`
	MixPercent      map[ProductCategory]float64 `json:"mixPercent"`
	Structures      int                         `json:"structuresServed"`
	MatchedRecords  int                         `json:"matchedRecords"`
	UnparsableDates int                         `json:"unparsableDates"`
}

// Rollup is the nested center → structure → product → blood group view.
// Totals at every branch equal the sum of the children beneath them.
type Rollup struct {
	Total   int                    `json:"total"`
	Centers map[string]*CenterNode `json:"centers"`
}

type CenterNode struct {
	Total       int                       `json:"total"`
	GroupTotals map[string]int            `json:"groupTotals"`
	Structures  map[string]*StructureNode `json:"structures"`
}

type StructureNode struct {
	Total    int                     `json:"total"`
	Products map[string]*ProductNode `json:"products"`
}

type ProductNode struct {
	Total  int            `json:"total"`
	Groups map[string]int `json:"groups"`
}

// StructureVolume is one top-N leaderboard entry.
type StructureVolume struct {
	Structure string `json:"structure"`
	Quantity  int    `json:"quantity"`
}

// MonthlySeries holds one total per calendar month, January first.
type MonthlySeries [12]int

// PeakBucket is the busiest bucket of a series.
type PeakBucket struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// TrendPoint is one day of the dense rolling series. Days with no
// activity are present with Quantity zero so charts get contiguous axes.
type TrendPoint struct {
	Date     string `json:"date"` // DD/MM/YYYY
	Quantity int    `json:"quantity"`
}

// DayVolume is one weekday of the weekly breakdown, Monday first.
type DayVolume struct {
	Day      string `json:"day"`
	Quantity int    `json:"quantity"`
}

// Dashboard bundles everything one dashboard render needs.
type Dashboard struct {
	Bucket        StatBucket        `json:"bucket"`
	Rollup        *Rollup           `json:"rollup"`
	TopStructures []StructureVolume `json:"topStructures"`
	Monthly       MonthlySeries     `json:"monthly"`
	Peak          PeakBucket        `json:"peak"`
	Trend         []TrendPoint      `json:"trend"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

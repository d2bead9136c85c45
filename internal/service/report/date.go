package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/kdiomande/cntsci-flux/internal/domain"
)

// Layouts seen in the wild across the capture tool's revisions, tried in
// order when a date string matches neither delimiter shape.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"Mon Jan 02 2006 15:04:05",
	"Jan 2, 2006",
	"2 January 2006",
}

// NormalizeDate converts a distribution-date string into the canonical
// (day, month, year) triple. The sheet holds rows written by several
// revisions of the capture form, so three shapes must be accepted:
// ISO `YYYY-MM-DD` (possibly with a `T...` time tail), `DD/MM/YYYY`
// (possibly with trailing time after the year), and whatever generic
// date-time rendering an old Apps Script emitted. Unparsable input
// yields the all-empty triple; this function never fails.
func NormalizeDate(raw string) domain.CivilDate {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.CivilDate{}
	}

	if strings.Contains(s, "-") {
		head, _, _ := strings.Cut(s, "T")
		parts := strings.Split(head, "-")
		if len(parts) == 3 && len(parts[0]) == 4 {
			return civil(parts[2], parts[1], parts[0])
		}
		return genericParse(s)
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) == 3 {
			year := parts[2]
			if len(year) > 4 {
				year = year[:4]
			}
			return civil(parts[0], parts[1], year)
		}
		return genericParse(s)
	}

	return genericParse(s)
}

func genericParse(s string) domain.CivilDate {
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.CivilDate{
				Day:   pad2(strconv.Itoa(t.Day())),
				Month: pad2(strconv.Itoa(int(t.Month()))),
				Year:  strconv.Itoa(t.Year()),
			}
		}
	}
	return domain.CivilDate{}
}

func civil(day, month, year string) domain.CivilDate {
	d := domain.CivilDate{
		Day:   pad2(strings.TrimSpace(day)),
		Month: pad2(strings.TrimSpace(month)),
		Year:  strings.TrimSpace(year),
	}
	if !validCivil(d) {
		return domain.CivilDate{}
	}
	return d
}

func validCivil(d domain.CivilDate) bool {
	day, err := strconv.Atoi(d.Day)
	if err != nil || day < 1 || day > 31 {
		return false
	}
	month, err := strconv.Atoi(d.Month)
	if err != nil || month < 1 || month > 12 {
		return false
	}
	if _, err := strconv.Atoi(d.Year); err != nil || len(d.Year) != 4 {
		return false
	}
	return true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// civilTime converts a canonical triple back into a UTC midnight
// instant for window arithmetic. Second return is false for the zero
// triple.
func civilTime(d domain.CivilDate) (time.Time, bool) {
	if d.IsZero() {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(d.Day)
	month, _ := strconv.Atoi(d.Month)
	year, _ := strconv.Atoi(d.Year)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func civilOf(t time.Time) domain.CivilDate {
	return domain.CivilDate{
		Day:   pad2(strconv.Itoa(t.Day())),
		Month: pad2(strconv.Itoa(int(t.Month()))),
		Year:  strconv.Itoa(t.Year()),
	}
}

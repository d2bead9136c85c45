package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/kdiomande/cntsci-flux/internal/domain"
)

const (
	DefaultTopN      = 5
	DefaultTrendDays = 14
)

var monthLabels = [12]string{
	"JANVIER", "FÉVRIER", "MARS", "AVRIL", "MAI", "JUIN",
	"JUILLET", "AOÛT", "SEPTEMBRE", "OCTOBRE", "NOVEMBRE", "DÉCEMBRE",
}

var weekdayLabels = [7]string{
	"LUNDI", "MARDI", "MERCREDI", "JEUDI", "VENDREDI", "SAMEDI", "DIMANCHE",
}

// TopStructures returns the n busiest health structures by volume,
// descending. Ties keep first-seen order, which is all the dashboard
// leaderboard promises.
func TopStructures(records []domain.DistributionRecord, n int) []domain.StructureVolume {
	if n <= 0 {
		n = DefaultTopN
	}

	totals := make(map[string]int)
	order := make(map[string]int)
	for i := range records {
		key := records[i].StructureKey()
		if _, seen := totals[key]; !seen {
			order[key] = len(order)
		}
		totals[key] += records[i].Quantity.Int()
	}

	ranked := make([]domain.StructureVolume, 0, len(totals))
	for name, qty := range totals {
		ranked = append(ranked, domain.StructureVolume{Structure: name, Quantity: qty})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return order[ranked[i].Structure] < order[ranked[j].Structure]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// MonthlyTotals sums per calendar month for the given year, January
// first.
func MonthlyTotals(records []domain.DistributionRecord, year string) domain.MonthlySeries {
	var series domain.MonthlySeries
	for i := range records {
		d := NormalizeDate(records[i].DistributionDate)
		if d.Year != year {
			continue
		}
		if m, err := strconv.Atoi(d.Month); err == nil && m >= 1 && m <= 12 {
			series[m-1] += records[i].Quantity.Int()
		}
	}
	return series
}

// PeakMonth picks the bucket with the strictly greatest total. With all
// twelve equal (including all-zero) January wins by scan order.
func PeakMonth(series domain.MonthlySeries) domain.PeakBucket {
	peak := domain.PeakBucket{Label: monthLabels[0], Value: series[0]}
	for i := 1; i < len(series); i++ {
		if series[i] > peak.Value {
			peak = domain.PeakBucket{Label: monthLabels[i], Value: series[i]}
		}
	}
	return peak
}

// RollingDaily builds the dense per-day series for the most recent
// `days` days ending at now. Days with no records are present with a
// zero so trend charts render contiguous axes.
func RollingDaily(records []domain.DistributionRecord, now time.Time, days int) []domain.TrendPoint {
	if days <= 0 {
		days = DefaultTrendDays
	}

	totals := make(map[string]int)
	for i := range records {
		d := NormalizeDate(records[i].DistributionDate)
		if d.IsZero() {
			continue
		}
		totals[d.String()] += records[i].Quantity.Int()
	}

	trend := make([]domain.TrendPoint, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		day := civilOf(now.AddDate(0, 0, -offset))
		trend = append(trend, domain.TrendPoint{
			Date:     day.String(),
			Quantity: totals[day.String()],
		})
	}
	return trend
}

// WeekBreakdown totals per weekday (Monday..Sunday, dense) for the week
// containing anchor.
func WeekBreakdown(records []domain.DistributionRecord, anchor time.Time) []domain.DayVolume {
	monday := startOfWeek(anchor)
	sunday := monday.AddDate(0, 0, 6)

	breakdown := make([]domain.DayVolume, 7)
	for i := range breakdown {
		breakdown[i] = domain.DayVolume{Day: weekdayLabels[i]}
	}

	for i := range records {
		d := NormalizeDate(records[i].DistributionDate)
		t, ok := civilTime(d)
		if !ok || t.Before(monday) || t.After(sunday) {
			continue
		}
		idx := int(t.Weekday()+6) % 7 // Monday = 0
		breakdown[idx].Quantity += records[i].Quantity.Int()
	}
	return breakdown
}

func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

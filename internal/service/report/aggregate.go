package report

import (
	"strings"

	"github.com/kdiomande/cntsci-flux/internal/domain"
	"github.com/shopspring/decimal"
)

var namedCategories = []domain.ProductCategory{
	domain.AdultRedCells,
	domain.PediatricRedCells,
	domain.Plasma,
	domain.Platelets,
}

// Aggregate folds the record set into a flat bucket for the given
// window. Records whose date does not normalize are counted in
// UnparsableDates and can only match an all-wildcard window; no input
// ever makes this function fail. Zero matches yield a zero bucket.
func Aggregate(records []domain.DistributionRecord, window domain.Window) domain.StatBucket {
	bucket := domain.StatBucket{
		ByCategory: make(map[domain.ProductCategory]int, len(namedCategories)),
		MixPercent: make(map[domain.ProductCategory]float64, len(namedCategories)),
	}
	for _, c := range namedCategories {
		bucket.ByCategory[c] = 0
	}

	structures := make(map[string]struct{})
	for _, r := range records {
		d := NormalizeDate(r.DistributionDate)
		if d.IsZero() {
			bucket.UnparsableDates++
		}
		if !window.Matches(d) {
			continue
		}

		qty := r.Quantity.Int()
		bucket.Total += qty
		bucket.MatchedRecords++

		if cat := ClassifyProduct(r.ProductType); cat != domain.Unclassified {
			bucket.ByCategory[cat] += qty
		}

		if s := strings.TrimSpace(r.HealthStructure); s != "" {
			structures[s] = struct{}{}
		}
	}
	bucket.Structures = len(structures)

	if bucket.Total > 0 {
		total := decimal.NewFromInt(int64(bucket.Total))
		for _, c := range namedCategories {
			share := decimal.NewFromInt(int64(bucket.ByCategory[c] * 100)).
				Div(total).
				Round(1)
			bucket.MixPercent[c] = share.InexactFloat64()
		}
	}

	return bucket
}

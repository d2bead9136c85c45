package report

import (
	"testing"

	"github.com/kdiomande/cntsci-flux/internal/domain"
)

func sampleRecords() []domain.DistributionRecord {
	return []domain.DistributionRecord{
		{Center: "A", HealthStructure: "X", ProductType: "CGR ADULTE", BloodGroup: "O+", Quantity: 10, DistributionDate: "2025-03-05"},
		{Center: "A", HealthStructure: "X", ProductType: "PLASMA", BloodGroup: "O+", Quantity: 5, DistributionDate: "05/03/2025"},
		{Center: "B", HealthStructure: "Y", ProductType: "CGR ADULTE", BloodGroup: "A-", Quantity: 3, DistributionDate: "2025-04-10"},
	}
}

func TestAggregate_AllWildcards(t *testing.T) {
	t.Parallel()
	bucket := Aggregate(sampleRecords(), domain.Window{})

	if bucket.Total != 18 {
		t.Fatalf("total = %d, want 18", bucket.Total)
	}
	if got := bucket.ByCategory[domain.AdultRedCells]; got != 13 {
		t.Fatalf("adult red cells = %d, want 13", got)
	}
	if got := bucket.ByCategory[domain.Plasma]; got != 5 {
		t.Fatalf("plasma = %d, want 5", got)
	}
	if bucket.Structures != 2 {
		t.Fatalf("structures = %d, want 2", bucket.Structures)
	}
}

func TestAggregate_WindowMatchesAcrossDateShapes(t *testing.T) {
	t.Parallel()
	records := []domain.DistributionRecord{
		{DistributionDate: "2025-03-05T10:00:00", Quantity: 1},
		{DistributionDate: "05/03/2025", Quantity: 2},
	}
	window := domain.Window{Year: "2025", Month: "03", Day: "05"}

	bucket := Aggregate(records, window)
	if bucket.Total != 3 || bucket.MatchedRecords != 2 {
		t.Fatalf("total=%d matched=%d, want 3 and 2", bucket.Total, bucket.MatchedRecords)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	t.Parallel()
	records := sampleRecords()
	reversed := []domain.DistributionRecord{records[2], records[1], records[0]}

	a := Aggregate(records, domain.Window{Year: "2025"})
	b := Aggregate(reversed, domain.Window{Year: "2025"})
	if a.Total != b.Total || a.Structures != b.Structures {
		t.Fatalf("permuting input changed totals: %+v vs %+v", a, b)
	}
	for cat, v := range a.ByCategory {
		if b.ByCategory[cat] != v {
			t.Fatalf("category %v differs: %d vs %d", cat, v, b.ByCategory[cat])
		}
	}
}

func TestAggregate_EmptyAndUnparsable(t *testing.T) {
	t.Parallel()
	if bucket := Aggregate(nil, domain.Window{Year: "2025"}); bucket.Total != 0 || bucket.MatchedRecords != 0 {
		t.Fatalf("empty input: %+v", bucket)
	}

	records := []domain.DistributionRecord{
		{DistributionDate: "no date", ProductType: "CGR ADULTE", Quantity: 7},
	}

	// A concrete window cannot match a record without a date...
	bucket := Aggregate(records, domain.Window{Year: "2025"})
	if bucket.Total != 0 {
		t.Fatalf("undated record matched concrete window: %+v", bucket)
	}
	if bucket.UnparsableDates != 1 {
		t.Fatalf("unparsable counter = %d, want 1", bucket.UnparsableDates)
	}

	// ...but the all-wildcard window still counts it.
	if bucket := Aggregate(records, domain.Window{}); bucket.Total != 7 {
		t.Fatalf("all-wildcard total = %d, want 7", bucket.Total)
	}
}

func TestAggregate_UnclassifiedOnlyCountsTowardTotal(t *testing.T) {
	t.Parallel()
	records := []domain.DistributionRecord{
		{ProductType: "SANG TOTAL", Quantity: 4, DistributionDate: "2025-01-01"},
	}
	bucket := Aggregate(records, domain.Window{})
	if bucket.Total != 4 {
		t.Fatalf("total = %d, want 4", bucket.Total)
	}
	for cat, v := range bucket.ByCategory {
		if v != 0 {
			t.Fatalf("category %v got %d, want 0", cat, v)
		}
	}
}

func TestAggregate_MixPercent(t *testing.T) {
	t.Parallel()
	records := []domain.DistributionRecord{
		{ProductType: "CGR ADULTE", Quantity: 3, DistributionDate: "2025-01-01"},
		{ProductType: "PLASMA", Quantity: 1, DistributionDate: "2025-01-01"},
	}
	bucket := Aggregate(records, domain.Window{})
	if got := bucket.MixPercent[domain.AdultRedCells]; got != 75.0 {
		t.Fatalf("adult share = %v, want 75.0", got)
	}
	if got := bucket.MixPercent[domain.Plasma]; got != 25.0 {
		t.Fatalf("plasma share = %v, want 25.0", got)
	}
}

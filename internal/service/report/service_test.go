package report

import (
	"context"
	"testing"
	"time"

	"github.com/kdiomande/cntsci-flux/internal/domain"
)

type staticSource struct {
	records []domain.DistributionRecord
}

func (s *staticSource) Snapshot() []domain.DistributionRecord { return s.records }

func fixedNow() time.Time {
	return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
}

func newTestService(records []domain.DistributionRecord) *Service {
	svc := NewService(&staticSource{records: records})
	svc.now = fixedNow
	return svc
}

func TestDashboard_SupervisorSeesEverything(t *testing.T) {
	t.Parallel()
	svc := newTestService(sampleRecords())
	user := &domain.User{Login: "dg", Assignment: domain.HeadquartersSentinel}

	dash, err := svc.Dashboard(context.Background(), user, Filter{Center: domain.AllCenters()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.Bucket.Total != 18 {
		t.Fatalf("bucket total = %d, want 18", dash.Bucket.Total)
	}
	if dash.Rollup.Total != 18 {
		t.Fatalf("rollup total = %d, want 18", dash.Rollup.Total)
	}
	if len(dash.Trend) != DefaultTrendDays {
		t.Fatalf("trend len = %d, want %d", len(dash.Trend), DefaultTrendDays)
	}
	if dash.TopStructures[0].Structure != "X" || dash.TopStructures[0].Quantity != 15 {
		t.Fatalf("top structure = %+v", dash.TopStructures[0])
	}
}

// An agent's dashboard only ever reflects their own center, whatever
// filter the request carries.
func TestDashboard_AgentPinnedToOwnCenter(t *testing.T) {
	t.Parallel()
	svc := newTestService(sampleRecords())
	agent := &domain.User{Login: "ak", Assignment: "A"}

	dash, err := svc.Dashboard(context.Background(), agent, Filter{Center: domain.OneCenter("B")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.Bucket.Total != 15 {
		t.Fatalf("agent bucket total = %d, want 15", dash.Bucket.Total)
	}
	if _, leaked := dash.Rollup.Centers["B"]; leaked {
		t.Fatal("foreign center leaked into agent rollup")
	}
}

func TestDashboard_WindowNarrows(t *testing.T) {
	t.Parallel()
	svc := newTestService(sampleRecords())

	dash, err := svc.Dashboard(context.Background(), nil, Filter{
		Window: domain.Window{Year: "2025", Month: "03"},
		Center: domain.AllCenters(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.Bucket.Total != 15 {
		t.Fatalf("march total = %d, want 15", dash.Bucket.Total)
	}
	// The rollup ignores the window on purpose; it is the all-time view.
	if dash.Rollup.Total != 18 {
		t.Fatalf("rollup total = %d, want 18", dash.Rollup.Total)
	}
}

func TestDashboard_MonthlyDefaultsToCurrentYear(t *testing.T) {
	t.Parallel()
	svc := newTestService([]domain.DistributionRecord{
		{DistributionDate: "2025-03-01", Quantity: 4},
		{DistributionDate: "2019-03-01", Quantity: 9},
	})

	dash, err := svc.Dashboard(context.Background(), nil, Filter{Center: domain.AllCenters()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.Monthly[2] != 4 {
		t.Fatalf("march = %d, want 4 (current year only)", dash.Monthly[2])
	}
	if dash.Peak.Label != "MARS" || dash.Peak.Value != 4 {
		t.Fatalf("peak = %+v", dash.Peak)
	}
}

func TestWeekly_AnchorParsing(t *testing.T) {
	t.Parallel()
	svc := newTestService([]domain.DistributionRecord{
		{DistributionDate: "2025-01-06", Quantity: 3}, // monday
		{DistributionDate: "2025-03-13", Quantity: 7}, // week of fixedNow
	})

	week := svc.Weekly(context.Background(), nil, domain.AllCenters(), "08/01/2025")
	if week[0].Quantity != 3 {
		t.Fatalf("anchored week monday = %+v", week[0])
	}

	// Unparsable anchor falls back to the current week.
	week = svc.Weekly(context.Background(), nil, domain.AllCenters(), "whenever")
	if week[3].Quantity != 7 {
		t.Fatalf("fallback week thursday = %+v", week[3])
	}
}

func TestRollup_RespectsRequestedFilter(t *testing.T) {
	t.Parallel()
	svc := newTestService(sampleRecords())

	rollup := svc.Rollup(nil, domain.OneCenter("B"))
	if rollup.Total != 3 {
		t.Fatalf("filtered total = %d, want 3", rollup.Total)
	}
	if _, ok := rollup.Centers["A"]; ok {
		t.Fatal("unrequested center present")
	}
}

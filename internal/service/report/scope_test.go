package report

import (
	"testing"

	"github.com/kdiomande/cntsci-flux/internal/domain"
)

func scopedRecords() []domain.DistributionRecord {
	return []domain.DistributionRecord{
		{Center: "CRTS TREICHVILLE", Quantity: 10},
		{Center: "CRTS BOUAKE", Quantity: 5},
		{Center: "CDTS DABOU", Quantity: 3},
	}
}

func TestVisibleRecords_AgentPinnedToOwnCenter(t *testing.T) {
	t.Parallel()
	agent := &domain.User{Login: "a.kone", Assignment: "CRTS TREICHVILLE"}
	scope := domain.ScopeFor(agent)

	// Whatever the UI requests, an agent only sees their own center.
	for _, requested := range []domain.CenterFilter{
		domain.AllCenters(),
		domain.OneCenter("CRTS BOUAKE"),
		domain.OneCenter("CRTS TREICHVILLE"),
	} {
		visible := VisibleRecords(scopedRecords(), scope, requested)
		if len(visible) != 1 {
			t.Fatalf("requested %+v: got %d records, want 1", requested, len(visible))
		}
		if visible[0].Center != "CRTS TREICHVILLE" {
			t.Fatalf("agent saw %q", visible[0].Center)
		}
	}
}

func TestVisibleRecords_SupervisorHonorsRequest(t *testing.T) {
	t.Parallel()
	supervisor := &domain.User{Login: "dg", Assignment: domain.HeadquartersSentinel}
	scope := domain.ScopeFor(supervisor)

	if got := VisibleRecords(scopedRecords(), scope, domain.AllCenters()); len(got) != 3 {
		t.Fatalf("all centers: got %d records, want 3", len(got))
	}
	got := VisibleRecords(scopedRecords(), scope, domain.OneCenter("CRTS BOUAKE"))
	if len(got) != 1 || got[0].Center != "CRTS BOUAKE" {
		t.Fatalf("one center: got %+v", got)
	}
}

func TestVisibleRecords_VisitorHonorsRequest(t *testing.T) {
	t.Parallel()
	scope := domain.ScopeFor(nil)
	if scope.Kind != domain.ScopeVisitor {
		t.Fatalf("nil user resolved to %v", scope.Kind)
	}
	if got := VisibleRecords(scopedRecords(), scope, domain.AllCenters()); len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
}

func TestCenterFilterEnabled(t *testing.T) {
	t.Parallel()
	cases := []struct {
		assignment string
		want       bool
	}{
		{domain.AllCentersSentinel, true},
		{domain.HeadquartersSentinel, true},
		{"CRTS DALOA", false},
	}
	for _, tc := range cases {
		scope := domain.ScopeFor(&domain.User{Assignment: tc.assignment})
		if got := CenterFilterEnabled(scope); got != tc.want {
			t.Fatalf("assignment %q: enabled=%v, want %v", tc.assignment, got, tc.want)
		}
	}
	if CenterFilterEnabled(domain.ScopeFor(nil)) {
		t.Fatal("visitor should not get the center selector")
	}
}

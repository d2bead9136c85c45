package report

import (
	"github.com/kdiomande/cntsci-flux/internal/domain"
)

// VisibleRecords selects the records the acting scope may read. A
// standard agent's requested filter is ignored and replaced with the
// agent's own center: whatever the UI passes, an agent never observes
// another center's data. Supervisors and visitors get the requested
// filter verbatim, including the all-centers value.
func VisibleRecords(records []domain.DistributionRecord, scope domain.Scope, requested domain.CenterFilter) []domain.DistributionRecord {
	effective := EffectiveFilter(scope, requested)
	if effective.All {
		return records
	}

	visible := make([]domain.DistributionRecord, 0, len(records))
	for _, r := range records {
		if effective.Matches(r.Center) {
			visible = append(visible, r)
		}
	}
	return visible
}

// EffectiveFilter applies the scope's pinning rule to a requested
// center filter.
func EffectiveFilter(scope domain.Scope, requested domain.CenterFilter) domain.CenterFilter {
	if scope.Kind == domain.ScopeAgent {
		return domain.OneCenter(scope.Center)
	}
	return requested
}

// CenterFilterEnabled reports whether the center selector should be
// offered at all: agents are pinned, visitors are locked to the global
// default.
func CenterFilterEnabled(scope domain.Scope) bool {
	return scope.Kind == domain.ScopeSupervisor
}

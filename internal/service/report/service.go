package report

import (
	"context"
	"strconv"
	"time"

	"github.com/kdiomande/cntsci-flux/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Source supplies the current record snapshot. The engine treats it as
// an opaque, already-fetched collection; refresh cadence is the
// source's business.
type Source interface {
	Snapshot() []domain.DistributionRecord
}

// Service is the reporting facade: it composes scoping, aggregation,
// rollup and ranking over the current snapshot.
type Service struct {
	source Source
	now    func() time.Time
}

func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// Filter carries the dashboard's requested window and center. The
// requested center is subject to scope pinning; the window is not.
type Filter struct {
	Window domain.Window
	Center domain.CenterFilter
}

// Dashboard builds everything one dashboard render needs. The consumers
// of the filtered subset are independent pure folds, so they run in
// parallel; none of them can fail on data, the group only propagates a
// cancelled context.
func (s *Service) Dashboard(ctx context.Context, user *domain.User, filter Filter) (*domain.Dashboard, error) {
	scope := domain.ScopeFor(user)
	visible := VisibleRecords(s.source.Snapshot(), scope, filter.Center)

	year := filter.Window.Year
	if year == "" {
		year = strconv.Itoa(s.now().Year())
	}

	var out domain.Dashboard
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		out.Bucket = Aggregate(visible, filter.Window)
		return nil
	})
	eg.Go(func() error {
		out.Rollup = BuildRollup(visible)
		return nil
	})
	eg.Go(func() error {
		out.TopStructures = TopStructures(visible, DefaultTopN)
		return nil
	})
	eg.Go(func() error {
		out.Monthly = MonthlyTotals(visible, year)
		out.Peak = PeakMonth(out.Monthly)
		return nil
	})
	eg.Go(func() error {
		out.Trend = RollingDaily(visible, s.now(), DefaultTrendDays)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &out, nil
}

// Rollup builds the nested site view alone, for panels that do not need
// the rest of the dashboard bundle.
func (s *Service) Rollup(user *domain.User, requested domain.CenterFilter) *domain.Rollup {
	scope := domain.ScopeFor(user)
	return BuildRollup(VisibleRecords(s.source.Snapshot(), scope, requested))
}

// Weekly computes the per-weekday breakdown for the week containing
// anchor (today when the anchor string is empty or unparsable), under
// the same scope pinning as Dashboard.
func (s *Service) Weekly(ctx context.Context, user *domain.User, requested domain.CenterFilter, anchor string) []domain.DayVolume {
	scope := domain.ScopeFor(user)
	visible := VisibleRecords(s.source.Snapshot(), scope, requested)

	at := s.now()
	if t, ok := civilTime(NormalizeDate(anchor)); ok {
		at = t
	}
	return WeekBreakdown(visible, at)
}

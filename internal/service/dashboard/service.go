package dashboard

import (
	"context"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/dashboard"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/feed"
	leaveService "github.com/shiftboard/shiftboard-backend-go/internal/service/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/reconcile"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/settings"
	"golang.org/x/sync/errgroup"
)

type ServiceImpl struct {
	feed      *feed.Client
	overrides shift.OverrideStore
	settings  *settings.ServiceImpl
	now       func() time.Time
}

func NewService(feedClient *feed.Client, overrides shift.OverrideStore, settingsSvc *settings.ServiceImpl) *ServiceImpl {
	return &ServiceImpl{
		feed:      feedClient,
		overrides: overrides,
		settings:  settingsSvc,
		now:       time.Now,
	}
}

// document returns the requested year's feed. Year 0 means the
// current snapshot (loading it first if no load has happened yet);
// any other year goes through the archive files.
func (s *ServiceImpl) document(ctx context.Context, year int) (*feed.Document, error) {
	if year != 0 {
		if current, ok := s.feed.Current(); ok && current.Year == year {
			return current, nil
		}
		return s.feed.LoadArchive(ctx, year)
	}
	if current, ok := s.feed.Current(); ok {
		return current, nil
	}
	return s.feed.Load(ctx)
}

// Reload re-fetches the feed. Concurrent reloads are not serialized;
// the last one to complete wins the snapshot.
func (s *ServiceImpl) Reload(ctx context.Context) (*feed.Document, error) {
	return s.feed.Load(ctx)
}

// reconciled merges the document's days with the manual entries.
func (s *ServiceImpl) reconciled(doc *feed.Document) reconcile.Result {
	return reconcile.Merge(doc.Days, s.overrides.Load())
}

// Dashboard assembles the combined view model. The projections are
// independent once the data is loaded, so they run concurrently.
func (s *ServiceImpl) Dashboard(ctx context.Context, year int) (*dashboard.Response, error) {
	doc, err := s.document(ctx, year)
	if err != nil {
		return nil, err
	}

	merged := s.reconciled(doc)
	cfg := s.settings.Get()
	today := s.now().Format("2006-01-02")

	var (
		upcoming []dashboard.DayItem
		days     []dashboard.DayItem
		leaves   []dashboard.LeaveItem
		months   []dashboard.MonthRow
		summary  dashboard.Summary
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		upcoming = Upcoming(merged.Ascending, today)
		days = FilterDays(merged.Descending, FilterAll, DayListLimit)
		return nil
	})

	g.Go(func() error {
		resolved := leaveService.Resolve(doc.Leaves)
		pending := leaveService.PendingKeys(doc.Leaves)
		leaves = LeaveItems(resolved, pending)
		summary = BuildSummary(doc, resolved, pending, cfg.AnnualLeaveAllowanceDays)
		return nil
	})

	g.Go(func() error {
		months = MonthRows(doc.Stats.PerMonth)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.Response{
		Summary:  summary,
		Upcoming: upcoming,
		Days:     days,
		Leaves:   leaves,
		Months:   months,
	}, nil
}

// Days returns the reconciled day list through a filter.
func (s *ServiceImpl) Days(ctx context.Context, filter Filter, limit int) ([]dashboard.DayItem, error) {
	doc, err := s.document(ctx, 0)
	if err != nil {
		return nil, err
	}
	return FilterDays(s.reconciled(doc).Descending, filter, limit), nil
}

// UpcomingDays returns today-or-later days, ascending, capped.
func (s *ServiceImpl) UpcomingDays(ctx context.Context) ([]dashboard.DayItem, error) {
	doc, err := s.document(ctx, 0)
	if err != nil {
		return nil, err
	}
	return Upcoming(s.reconciled(doc).Ascending, s.now().Format("2006-01-02")), nil
}

// Leaves returns the resolved leave list with pending flags.
func (s *ServiceImpl) Leaves(ctx context.Context) ([]dashboard.LeaveItem, error) {
	doc, err := s.document(ctx, 0)
	if err != nil {
		return nil, err
	}
	resolved := leaveService.Resolve(doc.Leaves)
	return LeaveItems(resolved, leaveService.PendingKeys(doc.Leaves)), nil
}

// PendingLeaves returns only the requests flagged as stuck.
func (s *ServiceImpl) PendingLeaves(ctx context.Context) ([]dashboard.LeaveItem, error) {
	items, err := s.Leaves(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]dashboard.LeaveItem, 0, len(items))
	for _, item := range items {
		if item.Pending {
			pending = append(pending, item)
		}
	}
	return pending, nil
}

// Monthly returns the feed's monthly aggregate rows.
func (s *ServiceImpl) Monthly(ctx context.Context) ([]dashboard.MonthRow, error) {
	doc, err := s.document(ctx, 0)
	if err != nil {
		return nil, err
	}
	return MonthRows(doc.Stats.PerMonth), nil
}

// ReconciledDays exposes the merged descending view for the exporter.
func (s *ServiceImpl) ReconciledDays(ctx context.Context) ([]shift.Day, error) {
	doc, err := s.document(ctx, 0)
	if err != nil {
		return nil, err
	}
	return s.reconciled(doc).Descending, nil
}

package dashboard

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/feed"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/kvstore"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/override"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `{
	"anno": 2025,
	"last_update": "2025-03-10T08:00:00",
	"archives": [2024],
	"stats": {
		"ore_totali": 100,
		"ore_ordinarie": 90,
		"ore_straordinario": 10,
		"giorni_lavorati": 15,
		"media_ore_giorno": 6.67,
		"per_mese": {
			"2025-03": {"giorni": 5, "ore": 30},
			"2025-02": {"giorni": 10, "ore": 70}
		}
	},
	"giornate": [
		{"data": "2025-03-09", "ore_totali": 8, "ore_ordinarie": 6, "ore_straordinario": 2,
		 "turni": [{"tipo": "PRESENZA", "dettaglio": "Servizio esterno", "ora_inizio": "08:00", "ora_fine": "16:00"}]},
		{"data": "2025-03-12", "ore_totali": 6, "ore_ordinarie": 6,
		 "turni": [{"tipo": "PRESENZA", "dettaglio": "Servizio interno", "ora_inizio": "08:00", "ora_fine": "14:00"}]}
	],
	"licenze": [
		{"tipo": "ordinaria", "stato": "Presentata", "data_inizio": "2025-04-01", "data_fine": "2025-04-03"},
		{"tipo": "ordinaria", "stato": "Approvata", "data_inizio": "2025-01-10", "data_fine": "2025-01-12"}
	]
}`

func newTestService(t *testing.T) *ServiceImpl {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	feedDir := t.TempDir()
	feedPath := filepath.Join(feedDir, "servizi.json")
	require.NoError(t, os.WriteFile(feedPath, []byte(testFeed), 0644))

	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	svc := NewService(
		feed.NewClient(feedPath, logger),
		override.NewStore(kv, logger),
		settings.NewService(kv, logger),
	)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestDashboard_CombinedViewModel(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Dashboard(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 2025, resp.Summary.Year)
	assert.Equal(t, 100.0, resp.Summary.TotalHours)
	assert.Equal(t, 1, resp.Summary.PendingLeaves)
	assert.Equal(t, 3, resp.Summary.LeaveBalance.UsedDays)
	assert.Equal(t, 29, resp.Summary.LeaveBalance.RemainingDays)
	assert.Equal(t, []int{2024}, resp.Summary.Archives)

	// only the future day is upcoming
	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, "2025-03-12", resp.Upcoming[0].Date)

	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2025-03-12", resp.Days[0].Date)

	require.Len(t, resp.Leaves, 2)
	assert.True(t, resp.Leaves[0].Pending)

	require.Len(t, resp.Months, 2)
	assert.Equal(t, "2025-03", resp.Months[0].Month)
}

func TestDashboard_ManualEntryFillsGap(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.overrides.Put("2025-03-11", dayFixture(6)))

	days, err := svc.Days(context.Background(), FilterAll, 0)
	require.NoError(t, err)
	require.Len(t, days, 3)

	var manual int
	for _, d := range days {
		if d.IsManual {
			manual++
			assert.Equal(t, "2025-03-11", d.Date)
		}
	}
	assert.Equal(t, 1, manual)
}

func TestDashboard_FeedBeatsManualEntry(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.overrides.Put("2025-03-09", dayFixture(0)))

	days, err := svc.Days(context.Background(), FilterAll, 0)
	require.NoError(t, err)
	require.Len(t, days, 2)

	for _, d := range days {
		if d.Date == "2025-03-09" {
			assert.Equal(t, 8.0, d.TotalHours)
			assert.False(t, d.IsManual)
		}
	}
}

func TestPendingLeaves(t *testing.T) {
	svc := newTestService(t)

	pending, err := svc.PendingLeaves(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "2025-04-01", pending[0].StartDate)
}

func TestDashboard_FeedUnavailable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv, err := kvstore.New(t.TempDir())
	require.NoError(t, err)

	svc := NewService(
		feed.NewClient("/nonexistent/servizi.json", logger),
		override.NewStore(kv, logger),
		settings.NewService(kv, logger),
	)

	_, err = svc.Dashboard(context.Background(), 0)
	assert.ErrorIs(t, err, feed.ErrUnavailable)
}

func dayFixture(hours float64) shift.Day {
	return shift.Day{TotalHours: hours, OrdinaryHours: hours}
}

package dashboard

import (
	"sort"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/dashboard"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/feed"
	"github.com/shiftboard/shiftboard-backend-go/internal/service/classify"
	leaveService "github.com/shiftboard/shiftboard-backend-go/internal/service/leave"
)

// Display caps. These guard rendering cost only; they are not data
// integrity limits.
const (
	UpcomingLimit  = 5
	DayListLimit   = 50
	LeaveListLimit = 30
)

// Filter selects which reconciled days a list view shows.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterPresence Filter = "presence"
	FilterAbsence  Filter = "absence"
)

// ParseFilter maps a query value onto a filter, defaulting to all.
func ParseFilter(raw string) Filter {
	switch Filter(raw) {
	case FilterPresence, FilterAbsence:
		return Filter(raw)
	default:
		return FilterAll
	}
}

var italianWeekdays = [...]string{
	time.Sunday:    "domenica",
	time.Monday:    "lunedì",
	time.Tuesday:   "martedì",
	time.Wednesday: "mercoledì",
	time.Thursday:  "giovedì",
	time.Friday:    "venerdì",
	time.Saturday:  "sabato",
}

// WeekdayName returns the Italian weekday for an ISO date, or N/D
// when the date does not parse.
func WeekdayName(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "N/D"
	}
	return italianWeekdays[d.Weekday()]
}

// DayItem projects one reconciled day into its display row.
func DayItem(day shift.Day) dashboard.DayItem {
	kind := day.PrimaryKind()

	var code, label string
	if day.HasAbsence() && kind == shift.KindAbsence {
		code, label = classify.Absence(firstActiveDetail(day, shift.KindAbsence))
	} else {
		code, label = classify.PresenceWithLabel(firstActiveDetail(day, shift.KindPresence))
	}

	return dashboard.DayItem{
		Date:          day.Date,
		WeekdayName:   WeekdayName(day.Date),
		Kind:          kind,
		Code:          code,
		Label:         label,
		TotalHours:    day.TotalHours,
		OrdinaryHours: day.OrdinaryHours,
		OvertimeHours: day.OvertimeHours,
		IsLeave:       day.IsLeave,
		LeaveType:     day.LeaveType,
		IsManual:      day.Source == shift.SourceManual,
		Shifts:        day.ActiveShifts(),
	}
}

func firstActiveDetail(day shift.Day, kind shift.ShiftKind) string {
	for _, s := range day.Shifts {
		if s.IsActive() && s.Kind == kind {
			return s.Detail
		}
	}
	return ""
}

// Upcoming returns at most UpcomingLimit days with date >= today from
// the ascending view.
func Upcoming(ascending []shift.Day, today string) []dashboard.DayItem {
	items := make([]dashboard.DayItem, 0, UpcomingLimit)
	for _, day := range ascending {
		if day.Date < today {
			continue
		}
		items = append(items, DayItem(day))
		if len(items) == UpcomingLimit {
			break
		}
	}
	return items
}

// FilterDays projects the descending view through a filter, capped.
func FilterDays(descending []shift.Day, filter Filter, limit int) []dashboard.DayItem {
	if limit <= 0 || limit > DayListLimit {
		limit = DayListLimit
	}
	items := make([]dashboard.DayItem, 0, limit)
	for _, day := range descending {
		switch filter {
		case FilterPresence:
			if day.HasAbsence() || day.IsLeave {
				continue
			}
		case FilterAbsence:
			if !day.HasAbsence() && !day.IsLeave {
				continue
			}
		}
		items = append(items, DayItem(day))
		if len(items) == limit {
			break
		}
	}
	return items
}

// LeaveItems projects resolved requests with their pending flags.
func LeaveItems(resolved []leave.Request, pending map[leave.Key]bool) []dashboard.LeaveItem {
	items := make([]dashboard.LeaveItem, 0, LeaveListLimit)
	for _, req := range resolved {
		items = append(items, dashboard.LeaveItem{
			Type:      req.Type,
			Reason:    req.Reason,
			Status:    req.Status,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Pending:   pending[req.IdentityKey()],
		})
		if len(items) == LeaveListLimit {
			break
		}
	}
	return items
}

// MonthRows lifts the feed's precomputed monthly stats, most recent
// month first. Nothing is recomputed from day records.
func MonthRows(perMonth map[string]feed.MonthStats) []dashboard.MonthRow {
	rows := make([]dashboard.MonthRow, 0, len(perMonth))
	for month, st := range perMonth {
		rows = append(rows, dashboard.MonthRow{
			Month:                month,
			Days:                 st.Days,
			TotalHours:           st.TotalHours,
			OrdinaryHours:        st.OrdinaryHours,
			OvertimeHours:        st.OvertimeHours,
			ExternalRotations:    st.ExternalRotations,
			MonthRecoveries:      st.MonthRecoveries,
			UnpaidRecoveries:     st.UnpaidRecoveries,
			OvertimeDay:          st.OvertimeDay,
			OvertimeNight:        st.OvertimeNight,
			OvertimeHolidayDay:   st.OvertimeHolidayDay,
			OvertimeHolidayNight: st.OvertimeHolidayNight,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month > rows[j].Month })
	return rows
}

// BuildSummary assembles the headline block from the feed's overall
// stats, the resolved leaves and the configured allowance.
func BuildSummary(doc *feed.Document, resolved []leave.Request, pending map[leave.Key]bool, allowanceDays int) dashboard.Summary {
	used := leaveService.AnnualUsageDays(resolved, doc.Year)

	return dashboard.Summary{
		Year:              doc.Year,
		LastUpdate:        doc.LastUpdate,
		TotalHours:        doc.Stats.TotalHours,
		OrdinaryHours:     doc.Stats.OrdinaryHours,
		OvertimeHours:     doc.Stats.OvertimeHours,
		WorkedDays:        doc.Stats.WorkedDays,
		AvgHoursPerDay:    doc.Stats.AvgHoursPerDay,
		ExternalRotations: doc.Stats.ExternalRotations,
		PendingLeaves:     len(pending),
		LeaveBalance: dashboard.LeaveBalance{
			Year:          doc.Year,
			AllowanceDays: allowanceDays,
			UsedDays:      used,
			RemainingDays: leaveService.Balance(allowanceDays, used),
		},
		Archives: doc.Archives,
	}
}

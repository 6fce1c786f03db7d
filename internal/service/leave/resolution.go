// Package leave resolves leave-request lifecycles. The feed delivers
// every historical status record of every request; this package picks
// the current record per request and derives pending alerts and the
// annual balance.
package leave

import (
	"sort"
	"time"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
)

// Resolve collapses the raw lifecycle records into one current record
// per identity key. Within a group the highest-priority status wins;
// on equal priority the first record encountered is kept. Input order
// is feed insertion order and not guaranteed chronological, so the
// tie-break is best effort. Raw records are never mutated.
func Resolve(requests []leave.Request) []leave.Request {
	winners := make(map[leave.Key]leave.Request)
	order := make([]leave.Key, 0, len(requests))

	for _, req := range requests {
		key := req.IdentityKey()
		current, seen := winners[key]
		if !seen {
			winners[key] = req
			order = append(order, key)
			continue
		}
		if req.Status.Priority() > current.Status.Priority() {
			winners[key] = req
		}
	}

	resolved := make([]leave.Request, 0, len(order))
	for _, key := range order {
		resolved = append(resolved, winners[key])
	}

	// Display order: most recent start date first.
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].StartDate > resolved[j].StartDate
	})
	return resolved
}

// PendingKeys flags requests stuck mid-lifecycle. A key is pending
// when its resolved status is Presentata or Validata AND no record in
// the entire raw sequence ever reached a terminal status. The raw
// double check is deliberate: it holds even if the priority order
// were ever to suppress a terminal record that arrived out of order.
func PendingKeys(requests []leave.Request) map[leave.Key]bool {
	terminal := make(map[leave.Key]bool)
	for _, req := range requests {
		if req.Status.IsTerminal() {
			terminal[req.IdentityKey()] = true
		}
	}

	pending := make(map[leave.Key]bool)
	for _, req := range Resolve(requests) {
		if req.Status != leave.StatusSubmitted && req.Status != leave.StatusValidated {
			continue
		}
		key := req.IdentityKey()
		if !terminal[key] {
			pending[key] = true
		}
	}
	return pending
}

// SpanDays counts the calendar days a request covers, inclusive of
// both endpoints. A missing or unparsable end date counts as one day.
func SpanDays(req leave.Request) int {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil || end.Before(start) {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// AnnualUsageDays sums the days of deduplicated, approved, ordinary
// leave requests starting in the given year.
func AnnualUsageDays(resolved []leave.Request, year int) int {
	total := 0
	for _, req := range resolved {
		if req.Type != leave.TypeOrdinary || req.Status != leave.StatusApproved {
			continue
		}
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil || start.Year() != year {
			continue
		}
		total += SpanDays(req)
	}
	return total
}

// Balance subtracts the year's usage from the configured allowance.
func Balance(allowanceDays, usedDays int) int {
	return allowanceDays - usedDays
}

// Package reconcile merges feed day records with manual entries into
// one date-keyed set. The merge is pure and idempotent: the same
// inputs always produce the same output sets.
package reconcile

import (
	"sort"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
)

// Result holds both orderings of the reconciled set. Descending is
// the display order (most recent first); Ascending serves upcoming
// queries. ISO dates compare correctly as strings, so ordering is
// plain lexicographic.
type Result struct {
	Descending []shift.Day
	Ascending  []shift.Day
}

// ByDate returns the reconciled set keyed by date.
func (r Result) ByDate() map[string]shift.Day {
	byDate := make(map[string]shift.Day, len(r.Ascending))
	for _, d := range r.Ascending {
		byDate[d.Date] = d
	}
	return byDate
}

// FeedPrecedence is the reconciliation policy: a feed-sourced record
// for a date is never replaced by a manual entry. Manual entries are a
// stand-in for missing feed data, so once the feed supplies a real
// record for a date the manual one becomes invisible. It reports
// whether an override for the date may enter the set.
func FeedPrecedence(byDate map[string]shift.Day, date string) bool {
	_, taken := byDate[date]
	return !taken
}

// Merge reconciles feed records with manual entries. Records with a
// blank date are dropped before keying so they can neither collide
// with each other nor shadow a real date.
func Merge(feedDays []shift.Day, overrides map[string]shift.Day) Result {
	byDate := make(map[string]shift.Day, len(feedDays)+len(overrides))

	for _, day := range feedDays {
		if day.Date == "" {
			continue
		}
		if _, dup := byDate[day.Date]; dup {
			continue
		}
		if day.Source == "" {
			day.Source = shift.SourceFeed
		}
		byDate[day.Date] = day
	}

	for date, day := range overrides {
		if date == "" {
			continue
		}
		if !FeedPrecedence(byDate, date) {
			continue
		}
		day.Date = date
		day.Source = shift.SourceManual
		byDate[date] = day
	}

	asc := make([]shift.Day, 0, len(byDate))
	for _, day := range byDate {
		asc = append(asc, day)
	}
	sort.Slice(asc, func(i, j int) bool { return asc[i].Date < asc[j].Date })

	desc := make([]shift.Day, len(asc))
	for i, day := range asc {
		desc[len(asc)-1-i] = day
	}

	return Result{Descending: desc, Ascending: asc}
}

package shift

import (
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

// ManualEntryRequest is the payload for creating a manual day entry.
// Manual entries stand in for days missing from the feed; they never
// replace feed-sourced records.
type ManualEntryRequest struct {
	Date          string  `json:"data"`
	Kind          string  `json:"tipo"`
	Detail        string  `json:"dettaglio"`
	StartTime     string  `json:"ora_inizio"`
	EndTime       string  `json:"ora_fine"`
	TotalHours    float64 `json:"ore_totali"`
	OrdinaryHours float64 `json:"ore_ordinarie"`
	OvertimeHours float64 `json:"ore_straordinario"`
	IsLeave       bool    `json:"is_licenza"`
	LeaveType     string  `json:"tipo_licenza"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "data",
			Message: "data is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "data",
			Message: "data must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsEmpty(r.StartTime) && !validator.IsValidTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "ora_inizio",
			Message: "ora_inizio must be in HH:MM format",
		})
	}
	if !validator.IsEmpty(r.EndTime) && !validator.IsValidTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "ora_fine",
			Message: "ora_fine must be in HH:MM format",
		})
	}

	if r.TotalHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ore_totali",
			Message: "ore_totali must not be negative",
		})
	}
	if r.OrdinaryHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ore_ordinarie",
			Message: "ore_ordinarie must not be negative",
		})
	}
	if r.OvertimeHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ore_straordinario",
			Message: "ore_straordinario must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToDay builds the manual Day record. Times default to the absence
// sentinels when not provided. The id keeps manual shifts apart from
// feed ones in exports and audits.
func (r *ManualEntryRequest) ToDay(id string) Day {
	start := r.StartTime
	if start == "" {
		start = "00:00"
	}
	end := r.EndTime
	if end == "" {
		end = "23:59"
	}

	return Day{
		Date: r.Date,
		Shifts: []Shift{
			{
				ID:            id,
				Kind:          NormalizeKind(r.Kind),
				Detail:        r.Detail,
				StartTime:     start,
				EndTime:       end,
				DurationHours: r.TotalHours,
				OrdinaryHours: r.OrdinaryHours,
				OvertimeHours: r.OvertimeHours,
				Status:        StatusActive,
			},
		},
		TotalHours:    r.TotalHours,
		OrdinaryHours: r.OrdinaryHours,
		OvertimeHours: r.OvertimeHours,
		IsLeave:       r.IsLeave,
		LeaveType:     r.LeaveType,
		Source:        SourceManual,
	}
}

package shift

// Source marks where a day record came from.
type Source string

const (
	SourceFeed   Source = "feed"
	SourceManual Source = "manual"
)

// ShiftKind is the closed set of shift kinds the feed produces.
// Unrecognized values are normalized to PRESENZA at decode time.
type ShiftKind string

const (
	KindPresence ShiftKind = "PRESENZA"
	KindAbsence  ShiftKind = "ASSENZA"
)

// ShiftStatus tracks whether a shift is still effective or was
// superseded upstream. Removed shifts stay stored for audit but are
// excluded from display and aggregation.
type ShiftStatus string

const (
	StatusActive  ShiftStatus = "attivo"
	StatusRemoved ShiftStatus = "eliminato"
)

// Shift is one worked or absence interval within a day.
// Hour fields are rounded to 2 decimals by the producer and are never
// recomputed downstream.
type Shift struct {
	ID            string      `json:"id"`
	Kind          ShiftKind   `json:"tipo"`
	Detail        string      `json:"dettaglio"`
	StartTime     string      `json:"ora_inizio"` // HH:MM, 00:00 for absences
	EndTime       string      `json:"ora_fine"`   // HH:MM, 23:59 for absences
	DurationHours float64     `json:"durata_ore"`
	OrdinaryHours float64     `json:"ore_ordinarie"`
	OvertimeHours float64     `json:"ore_straordinario"`
	Status        ShiftStatus `json:"stato"`
}

// NormalizeKind maps an upstream kind string onto the closed set.
// Anything unrecognized is treated as a presence shift; classification
// of its free-text detail then falls back to the generic service label.
func NormalizeKind(raw string) ShiftKind {
	switch ShiftKind(raw) {
	case KindPresence, KindAbsence:
		return ShiftKind(raw)
	default:
		return KindPresence
	}
}

// IsActive reports whether the shift should appear in display and sums.
func (s Shift) IsActive() bool {
	return s.Status != StatusRemoved
}

// Day is one calendar day's work data, keyed by its ISO date.
type Day struct {
	Date          string  `json:"data"` // YYYY-MM-DD
	Shifts        []Shift `json:"turni"`
	TotalHours    float64 `json:"ore_totali"`
	OrdinaryHours float64 `json:"ore_ordinarie"`
	OvertimeHours float64 `json:"ore_straordinario"`
	IsLeave       bool    `json:"is_licenza"`
	LeaveType     string  `json:"tipo_licenza,omitempty"`
	Source        Source  `json:"source,omitempty"`
}

// ActiveShifts returns the shifts that were not removed upstream.
func (d Day) ActiveShifts() []Shift {
	var out []Shift
	for _, s := range d.Shifts {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

// PrimaryKind is the kind shown for the day in lists and exports:
// the first active shift's kind, presence winning over absence when
// both appear.
func (d Day) PrimaryKind() ShiftKind {
	kind := ShiftKind("")
	for _, s := range d.Shifts {
		if !s.IsActive() {
			continue
		}
		if s.Kind == KindPresence {
			return KindPresence
		}
		if kind == "" {
			kind = s.Kind
		}
	}
	if kind == "" {
		return KindPresence
	}
	return kind
}

// HasAbsence reports whether any active shift on the day is an absence.
func (d Day) HasAbsence() bool {
	for _, s := range d.Shifts {
		if s.IsActive() && s.Kind == KindAbsence {
			return true
		}
	}
	return false
}

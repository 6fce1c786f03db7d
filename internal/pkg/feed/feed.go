// Package feed loads the externally produced shift/leave JSON document
// and keeps the last good snapshot in memory. The feed is read-only
// input: nothing in this process ever writes it back.
package feed

import (
	"encoding/json"
	"errors"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
)

var (
	ErrUnavailable = errors.New("feed: source unavailable")
	ErrMalformed   = errors.New("feed: malformed document")
)

// MonthStats is one month's precomputed aggregate from the pipeline.
type MonthStats struct {
	Days                 int     `json:"giorni"`
	TotalHours           float64 `json:"ore"`
	OrdinaryHours        float64 `json:"ore_ordinarie"`
	OvertimeHours        float64 `json:"ore_straordinario"`
	ExternalRotations    int     `json:"turnazioni_esterne"`
	MonthRecoveries      int     `json:"recuperi_mese"`
	UnpaidRecoveries     int     `json:"recuperi_non_retribuiti"`
	OvertimeDay          float64 `json:"straord_diurno"`
	OvertimeNight        float64 `json:"straord_notturno"`
	OvertimeHolidayDay   float64 `json:"straord_festivo_diurno"`
	OvertimeHolidayNight float64 `json:"straord_festivo_notturno"`
}

// Stats is the overall aggregate block. These numbers come straight
// from the pipeline and are the source of truth for totals; day
// records are never re-summed to reproduce them.
type Stats struct {
	TotalHours        float64               `json:"ore_totali"`
	OrdinaryHours     float64               `json:"ore_ordinarie"`
	OvertimeHours     float64               `json:"ore_straordinario"`
	WorkedDays        int                   `json:"giorni_lavorati"`
	AvgHoursPerDay    float64               `json:"media_ore_giorno"`
	ExternalRotations int                   `json:"turnazioni_esterne"`
	PerMonth          map[string]MonthStats `json:"per_mese"`
}

// Document is one year's feed.
type Document struct {
	Year       int             `json:"anno"`
	LastUpdate string          `json:"last_update"`
	Archives   []int           `json:"archives"`
	Stats      Stats           `json:"stats"`
	Days       []shift.Day     `json:"giornate"`
	Leaves     []leave.Request `json:"licenze"`
}

// Decode parses a feed document, defaulting every missing section to
// empty rather than failing the load.
func Decode(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	doc.normalize()
	return &doc, nil
}

func (d *Document) normalize() {
	if d.Days == nil {
		d.Days = []shift.Day{}
	}
	if d.Leaves == nil {
		d.Leaves = []leave.Request{}
	}
	if d.Archives == nil {
		d.Archives = []int{}
	}
	if d.Stats.PerMonth == nil {
		d.Stats.PerMonth = map[string]MonthStats{}
	}

	for i := range d.Days {
		day := &d.Days[i]
		day.Source = shift.SourceFeed
		for j := range day.Shifts {
			sh := &day.Shifts[j]
			sh.Kind = shift.NormalizeKind(string(sh.Kind))
			if sh.Status == "" {
				sh.Status = shift.StatusActive
			}
		}
	}
}

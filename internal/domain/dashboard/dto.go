package dashboard

import (
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/leave"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
)

// DayItem is one row of the day list / calendar views.
type DayItem struct {
	Date          string          `json:"data"`
	WeekdayName   string          `json:"giorno"`
	Kind          shift.ShiftKind `json:"tipo"`
	Code          string          `json:"codice"`
	Label         string          `json:"etichetta"`
	TotalHours    float64         `json:"ore_totali"`
	OrdinaryHours float64         `json:"ore_ordinarie"`
	OvertimeHours float64         `json:"ore_straordinario"`
	IsLeave       bool            `json:"is_licenza"`
	LeaveType     string          `json:"tipo_licenza,omitempty"`
	IsManual      bool            `json:"is_manuale"`
	Shifts        []shift.Shift   `json:"turni"`
}

// LeaveItem is one resolved leave request plus its pending flag.
type LeaveItem struct {
	Type      string       `json:"tipo"`
	Reason    string       `json:"motivo,omitempty"`
	Status    leave.Status `json:"stato"`
	StartDate string       `json:"data_inizio"`
	EndDate   string       `json:"data_fine,omitempty"`
	Pending   bool         `json:"in_attesa"`
}

// MonthRow is one month's aggregates, taken verbatim from the feed's
// precomputed stats. Day records are never re-summed here.
type MonthRow struct {
	Month                string  `json:"mese"` // YYYY-MM
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

// LeaveBalance is the annual ordinary-leave balance projection.
type LeaveBalance struct {
	Year          int `json:"anno"`
	AllowanceDays int `json:"giorni_spettanti"`
	UsedDays      int `json:"giorni_fruiti"`
	RemainingDays int `json:"giorni_residui"`
}

// Summary is the headline block of the dashboard.
type Summary struct {
	Year              int          `json:"anno"`
	LastUpdate        string       `json:"last_update"`
	TotalHours        float64      `json:"ore_totali"`
	OrdinaryHours     float64      `json:"ore_ordinarie"`
	OvertimeHours     float64      `json:"ore_straordinario"`
	WorkedDays        int          `json:"giorni_lavorati"`
	AvgHoursPerDay    float64      `json:"media_ore_giorno"`
	ExternalRotations int          `json:"turnazioni_esterne"`
	PendingLeaves     int          `json:"licenze_in_attesa"`
	LeaveBalance      LeaveBalance `json:"bilancio_licenze"`
	Archives          []int        `json:"archivi"`
}

// Response is the combined dashboard view model.
type Response struct {
	Summary  Summary     `json:"summary"`
	Upcoming []DayItem   `json:"prossimi_giorni"`
	Days     []DayItem   `json:"giornate"`
	Leaves   []LeaveItem `json:"licenze"`
	Months   []MonthRow  `json:"per_mese"`
}

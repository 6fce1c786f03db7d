// Package settings persists the user's dashboard configuration in its
// own kvstore bucket, separate from the manual entries.
package settings

import (
	"errors"
	"log/slog"

	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/kvstore"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/validator"
)

const bucket = "settings"

const (
	DefaultAllowanceDays = 32
	DefaultHireDate      = "2020-01-01"
)

type Settings struct {
	AnnualLeaveAllowanceDays   int     `json:"annual_leave_allowance_days"`
	HireDate                   string  `json:"hire_date"`
	InitialUnpaidRecoveryHours float64 `json:"initial_unpaid_recovery_hours"`
}

func Defaults() Settings {
	return Settings{
		AnnualLeaveAllowanceDays:   DefaultAllowanceDays,
		HireDate:                   DefaultHireDate,
		InitialUnpaidRecoveryHours: 0,
	}
}

func (s Settings) Validate() error {
	var errs validator.ValidationErrors

	if s.AnnualLeaveAllowanceDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_leave_allowance_days",
			Message: "annual_leave_allowance_days must not be negative",
		})
	}
	if !validator.IsEmpty(s.HireDate) {
		if _, ok := validator.IsValidDate(s.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}
	if s.InitialUnpaidRecoveryHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "initial_unpaid_recovery_hours",
			Message: "initial_unpaid_recovery_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ServiceImpl struct {
	kv     *kvstore.Store
	logger *slog.Logger
}

func NewService(kv *kvstore.Store, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{kv: kv, logger: logger}
}

// Get returns the stored settings. Decoding starts from the defaults,
// so a partial record keeps per-field fallbacks and missing or corrupt
// state degrades to the full defaults.
func (s *ServiceImpl) Get() Settings {
	current := Defaults()
	err := s.kv.Get(bucket, &current)
	switch {
	case err == nil:
	case errors.Is(err, kvstore.ErrNotFound):
		return Defaults()
	default:
		s.logger.Warn("settings unreadable, using defaults", slog.Any("error", err))
		return Defaults()
	}
	if current.HireDate == "" {
		current.HireDate = DefaultHireDate
	}
	return current
}

// Update validates and replaces the stored settings.
func (s *ServiceImpl) Update(next Settings) (Settings, error) {
	if next.HireDate == "" {
		next.HireDate = DefaultHireDate
	}
	if err := next.Validate(); err != nil {
		return Settings{}, err
	}
	if err := s.kv.Put(bucket, next); err != nil {
		return Settings{}, err
	}
	return next, nil
}

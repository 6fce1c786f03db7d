package override

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/shiftboard/shiftboard-backend-go/internal/pkg/kvstore"
)

const bucket = "manual_entries"

type StoreImpl struct {
	kv     *kvstore.Store
	logger *slog.Logger
}

func NewStore(kv *kvstore.Store, logger *slog.Logger) shift.OverrideStore {
	return &StoreImpl{kv: kv, logger: logger}
}

// Load returns all manual entries. Missing state means no entries yet;
// corrupt state is logged and treated as empty so a bad file can never
// take the dashboard down.
func (s *StoreImpl) Load() map[string]shift.Day {
	entries := map[string]shift.Day{}
	err := s.kv.Get(bucket, &entries)
	switch {
	case err == nil:
	case errors.Is(err, kvstore.ErrNotFound):
		return map[string]shift.Day{}
	case errors.Is(err, kvstore.ErrCorrupt):
		s.logger.Warn("manual entry store corrupt, starting empty", slog.Any("error", err))
		return map[string]shift.Day{}
	default:
		s.logger.Warn("manual entry store unreadable, starting empty", slog.Any("error", err))
		return map[string]shift.Day{}
	}

	// Blank date keys must never enter the date-keyed structures.
	for date, day := range entries {
		if date == "" {
			delete(entries, date)
			continue
		}
		day.Date = date
		day.Source = shift.SourceManual
		entries[date] = day
	}
	return entries
}

func (s *StoreImpl) Save(entries map[string]shift.Day) error {
	if err := s.kv.Put(bucket, entries); err != nil {
		return fmt.Errorf("failed to save manual entries: %w", err)
	}
	return nil
}

func (s *StoreImpl) Put(date string, day shift.Day) error {
	if date == "" {
		return shift.ErrEmptyDate
	}
	entries := s.Load()
	day.Date = date
	day.Source = shift.SourceManual
	entries[date] = day
	return s.Save(entries)
}

func (s *StoreImpl) Remove(date string) error {
	entries := s.Load()
	if _, ok := entries[date]; !ok {
		return shift.ErrDayNotFound
	}
	delete(entries, date)
	return s.Save(entries)
}

func (s *StoreImpl) Has(date string) bool {
	_, ok := s.Load()[date]
	return ok
}

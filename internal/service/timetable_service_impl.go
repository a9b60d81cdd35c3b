package service

import (
	"context"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/schedule"
)

type timetableService struct {
	settings repository.SettingsRepo
	now      func() time.Time
}

func NewTimetableService(settings repository.SettingsRepo) TimetableService {
	return &timetableService{settings: settings, now: func() time.Time { return time.Now().UTC() }}
}

func (s *timetableService) DayView(ctx context.Context, date time.Time) (*DayView, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	monday, sunday := schedule.WeekBounds(today)
	date = schedule.ClampToWeek(date, today)

	return &DayView{
		Date:        date,
		Status:      schedule.StatusOf(date, today),
		IsFirstDay:  sameDay(date, monday),
		IsLastDay:   sameDay(date, sunday),
		Slots:       schedule.SlotStrings(cfg.DayStart, cfg.UnitMinutes, cfg.UnitsPerDay),
		DayEnd:      schedule.DayEnd(cfg.DayStart, cfg.UnitMinutes, cfg.UnitsPerDay).String(),
		UnitMinutes: cfg.UnitMinutes,
	}, nil
}

func (s *timetableService) Navigate(ctx context.Context, current time.Time, dir domain.NavDirection) (*DayView, error) {
	return s.DayView(ctx, schedule.Navigate(current, dir))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

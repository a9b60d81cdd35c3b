package service

import (
	"context"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/schedule"
)

type ListService interface {
	Create(ctx context.Context, title string) (*domain.List, error)
	GetByID(ctx context.Context, id string) (*domain.List, error)
	List(ctx context.Context) ([]*domain.List, error)
	Rename(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
}

type SublistService interface {
	Create(ctx context.Context, listID, title string) (*domain.Sublist, error)
	GetByID(ctx context.Context, id string) (*domain.Sublist, error)
	ListByList(ctx context.Context, listID string) ([]*domain.Sublist, error)
	Rename(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
}

type ActivityService interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByContainer(ctx context.Context, c repository.Container) ([]*domain.Activity, error)
	ListByList(ctx context.Context, listID string) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	SetCompletion(ctx context.Context, id string, done bool) (*domain.Activity, error)
	Duplicate(ctx context.Context, id string) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
	ScheduleEndOfWeek(ctx context.Context, id string, weeksAhead int) (*domain.Activity, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	// Update validates the candidate and persists it only when every rule
	// passes. A non-empty ValidationErrors means nothing was written.
	Update(ctx context.Context, in domain.SettingsInput) (*domain.Settings, domain.ValidationErrors, error)
}

// DayView is the timetable column for one day.
type DayView struct {
	Date        time.Time
	Status      domain.DayStatus
	IsFirstDay  bool
	IsLastDay   bool
	Slots       []string
	DayEnd      string
	UnitMinutes int
}

type TimetableService interface {
	DayView(ctx context.Context, date time.Time) (*DayView, error)
	Navigate(ctx context.Context, current time.Time, dir domain.NavDirection) (*DayView, error)
}

// WeekSummary is the weekly dashboard: capacity report and stats over the
// activities due in the week, plus the week's goal entry when set.
type WeekSummary struct {
	WeekStart time.Time
	WeekEnd   time.Time
	WipLimit  int
	Report    schedule.WipReport
	Stats     schedule.ActivityStats
	Goal      *domain.WeeklyGoal
}

type WeekService interface {
	Summary(ctx context.Context, ref time.Time) (*WeekSummary, error)
	GetGoal(ctx context.Context, ref time.Time) (*domain.WeeklyGoal, error)
	SetGoal(ctx context.Context, ref time.Time, content string) (*domain.WeeklyGoal, error)
	ClearGoal(ctx context.Context, ref time.Time) error
}

package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
)

// Container identifies the (list, optional sublist) pair that owns a
// densely ordered sequence of activities.
type Container struct {
	ListID    string
	SublistID *string
}

type ListRepo interface {
	Create(ctx context.Context, l *domain.List) error
	GetByID(ctx context.Context, id string) (*domain.List, error)
	List(ctx context.Context) ([]*domain.List, error)
	Update(ctx context.Context, l *domain.List) error
	Delete(ctx context.Context, id string) error
}

type SublistRepo interface {
	Create(ctx context.Context, s *domain.Sublist) error
	GetByID(ctx context.Context, id string) (*domain.Sublist, error)
	ListByList(ctx context.Context, listID string) ([]*domain.Sublist, error)
	Update(ctx context.Context, s *domain.Sublist) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListByContainer(ctx context.Context, c Container) ([]*domain.Activity, error)
	ListByList(ctx context.Context, listID string) ([]*domain.Activity, error)
	ListDueBetween(ctx context.Context, start, end time.Time) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error

	// ReorderPositions renumbers the container's activities 1..N in their
	// current position order, ties broken by insertion order. Must run
	// inside the same transaction as the structural change it follows.
	ReorderPositions(ctx context.Context, c Container) error
}

type WeeklyGoalRepo interface {
	GetByWeek(ctx context.Context, weekStart time.Time) (*domain.WeeklyGoal, error)
	Upsert(ctx context.Context, g *domain.WeeklyGoal) error
	Delete(ctx context.Context, weekStart time.Time) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}

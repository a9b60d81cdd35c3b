package testutil

import (
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/google/uuid"
)

// List options
type ListOption func(*domain.List)

func WithListPosition(p int) ListOption {
	return func(l *domain.List) {
		l.Position = p
	}
}

func NewTestList(title string, opts ...ListOption) *domain.List {
	now := time.Now().UTC()
	l := &domain.List{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func NewTestSublist(listID, title string) *domain.Sublist {
	now := time.Now().UTC()
	return &domain.Sublist{
		ID:        uuid.New().String(),
		ListID:    listID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithSublistID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.SublistID = &id
	}
}

func WithDuration(d domain.DurationSize) ActivityOption {
	return func(a *domain.Activity) {
		a.Duration = d
	}
}

func WithDueDate(d time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.DueDate = d
	}
}

func WithPosition(p int) ActivityOption {
	return func(a *domain.Activity) {
		a.Position = p
	}
}

func WithPriority() ActivityOption {
	return func(a *domain.Activity) {
		a.IsPriority = true
	}
}

func WithCompleted(at time.Time) ActivityOption {
	return func(a *domain.Activity) {
		a.SetCompletion(true, at)
	}
}

func NewTestActivity(listID, title string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:        uuid.New().String(),
		Title:     title,
		ListID:    listID,
		Duration:  domain.DurationSmall,
		DueDate:   domain.SentinelDueDate,
		StartTime: domain.SentinelStartTime,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func NewTestWeeklyGoal(weekStart time.Time, content string) *domain.WeeklyGoal {
	now := time.Now().UTC()
	return &domain.WeeklyGoal{
		ID:        uuid.New().String(),
		WeekStart: weekStart,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/schedule"
	"github.com/google/uuid"
)

type weekService struct {
	activities repository.ActivityRepo
	goals      repository.WeeklyGoalRepo
	settings   repository.SettingsRepo
}

func NewWeekService(activities repository.ActivityRepo, goals repository.WeeklyGoalRepo, settings repository.SettingsRepo) WeekService {
	return &weekService{activities: activities, goals: goals, settings: settings}
}

// Summary builds the weekly dashboard for the week containing ref. The
// capacity report counts every activity due inside the week; the sentinel
// due date sits in 2099 and never lands in a real week.
func (s *weekService) Summary(ctx context.Context, ref time.Time) (*WeekSummary, error) {
	monday, sunday := schedule.WeekBounds(ref)

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	due, err := s.activities.ListDueBetween(ctx, monday, sunday)
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.GetByWeek(ctx, monday)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return &WeekSummary{
		WeekStart: monday,
		WeekEnd:   sunday,
		WipLimit:  cfg.WipLimit,
		Report:    schedule.EvaluateActivities(due, cfg.WipLimit),
		Stats:     schedule.Stats(due),
		Goal:      goal,
	}, nil
}

func (s *weekService) GetGoal(ctx context.Context, ref time.Time) (*domain.WeeklyGoal, error) {
	monday, _ := schedule.WeekBounds(ref)
	return s.goals.GetByWeek(ctx, monday)
}

// SetGoal upserts the single goal entry for the week containing ref.
func (s *weekService) SetGoal(ctx context.Context, ref time.Time, content string) (*domain.WeeklyGoal, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("goal content is required")
	}
	if len([]rune(content)) > domain.MaxWeeklyGoalLen {
		return nil, fmt.Errorf("goal content exceeds %d characters", domain.MaxWeeklyGoalLen)
	}

	monday, _ := schedule.WeekBounds(ref)
	now := time.Now().UTC()
	goal := &domain.WeeklyGoal{
		ID:        uuid.New().String(),
		WeekStart: monday,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.goals.Upsert(ctx, goal); err != nil {
		return nil, err
	}
	return s.goals.GetByWeek(ctx, monday)
}

func (s *weekService) ClearGoal(ctx context.Context, ref time.Time) error {
	monday, _ := schedule.WeekBounds(ref)
	return s.goals.Delete(ctx, monday)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/semainier/internal/db"
	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityRepo
	sublists   repository.SublistRepo
	uow        db.UnitOfWork
}

func NewActivityService(activities repository.ActivityRepo, sublists repository.SublistRepo, uow db.UnitOfWork) ActivityService {
	return &activityService{activities: activities, sublists: sublists, uow: uow}
}

// Create inserts the activity and reindexes its container in one
// transaction, so the container is dense again before any other mutation
// can observe it.
func (s *activityService) Create(ctx context.Context, a *domain.Activity) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Title == "" {
		return fmt.Errorf("activity title is required")
	}
	if a.ListID == "" {
		return fmt.Errorf("activity list is required")
	}
	if err := s.checkSublistBelongsToList(ctx, a.ListID, a.SublistID); err != nil {
		return err
	}

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Duration == "" {
		a.Duration = domain.DurationSmall
	}
	if a.DueDate.IsZero() {
		a.DueDate = domain.SentinelDueDate
	}
	if a.StartTime == "" {
		a.StartTime = domain.SentinelStartTime
	}
	a.IsActive = true

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		if err := txActivities.Create(ctx, a); err != nil {
			return err
		}
		if err := txActivities.ReorderPositions(ctx, containerOf(a)); err != nil {
			return err
		}
		fresh, err := txActivities.GetByID(ctx, a.ID)
		if err != nil {
			return err
		}
		a.Position = fresh.Position
		return nil
	})
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) ListByContainer(ctx context.Context, c repository.Container) ([]*domain.Activity, error) {
	return s.activities.ListByContainer(ctx, c)
}

func (s *activityService) ListByList(ctx context.Context, listID string) ([]*domain.Activity, error) {
	return s.activities.ListByList(ctx, listID)
}

// Update persists field changes. A container move reindexes both the old
// and the new container in the same transaction.
func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if err := s.checkSublistBelongsToList(ctx, a.ListID, a.SublistID); err != nil {
		return err
	}

	prev, err := s.activities.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		if err := txActivities.Update(ctx, a); err != nil {
			return err
		}
		if err := txActivities.ReorderPositions(ctx, containerOf(a)); err != nil {
			return err
		}
		if !sameContainer(prev, a) {
			return txActivities.ReorderPositions(ctx, containerOf(prev))
		}
		return nil
	})
}

func (s *activityService) SetCompletion(ctx context.Context, id string, done bool) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.SetCompletion(done, now)
	a.UpdatedAt = now
	if err := s.activities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Duplicate clones the source activity and reindexes the container. The
// clone enters unpositioned, so the reindex appends it after the existing
// activities rather than splicing it in next to the source.
func (s *activityService) Duplicate(ctx context.Context, id string) (*domain.Activity, error) {
	src, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	clone := src.CloneForDuplicate()
	clone.ID = uuid.New().String()
	now := time.Now().UTC()
	clone.CreatedAt = now
	clone.UpdatedAt = now

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivities := repository.NewSQLiteActivityRepo(tx)
		if err := txActivities.Create(ctx, clone); err != nil {
			return err
		}
		return txActivities.ReorderPositions(ctx, containerOf(clone))
	})
	if err != nil {
		return nil, err
	}
	return s.activities.GetByID(ctx, clone.ID)
}

// Delete removes the activity without reindexing: the container reads back
// stale but order-preserving, and the next structural mutation restores
// density. Position is never used as a stable identity.
func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

func (s *activityService) ScheduleEndOfWeek(ctx context.Context, id string, weeksAhead int) (*domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.ScheduleEndOfWeek(now, weeksAhead)
	a.UpdatedAt = now
	if err := s.activities.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) checkSublistBelongsToList(ctx context.Context, listID string, sublistID *string) error {
	if sublistID == nil {
		return nil
	}
	sub, err := s.sublists.GetByID(ctx, *sublistID)
	if err != nil {
		return fmt.Errorf("resolving sublist: %w", err)
	}
	if sub.ListID != listID {
		return fmt.Errorf("sublist %s does not belong to list %s", *sublistID, listID)
	}
	return nil
}

func containerOf(a *domain.Activity) repository.Container {
	return repository.Container{ListID: a.ListID, SublistID: a.SublistID}
}

func sameContainer(a, b *domain.Activity) bool {
	if a.ListID != b.ListID {
		return false
	}
	if (a.SublistID == nil) != (b.SublistID == nil) {
		return false
	}
	return a.SublistID == nil || *a.SublistID == *b.SublistID
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/google/uuid"
)

type listService struct {
	lists repository.ListRepo
}

func NewListService(lists repository.ListRepo) ListService {
	return &listService{lists: lists}
}

func (s *listService) Create(ctx context.Context, title string) (*domain.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("list title is required")
	}
	now := time.Now().UTC()
	l := &domain.List{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lists.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *listService) GetByID(ctx context.Context, id string) (*domain.List, error) {
	return s.lists.GetByID(ctx, id)
}

func (s *listService) List(ctx context.Context) ([]*domain.List, error) {
	return s.lists.List(ctx)
}

func (s *listService) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("list title is required")
	}
	l, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	l.Title = title
	l.UpdatedAt = time.Now().UTC()
	return s.lists.Update(ctx, l)
}

func (s *listService) Delete(ctx context.Context, id string) error {
	return s.lists.Delete(ctx, id)
}

type sublistService struct {
	sublists repository.SublistRepo
	lists    repository.ListRepo
}

func NewSublistService(sublists repository.SublistRepo, lists repository.ListRepo) SublistService {
	return &sublistService{sublists: sublists, lists: lists}
}

func (s *sublistService) Create(ctx context.Context, listID, title string) (*domain.Sublist, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("sublist title is required")
	}
	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, fmt.Errorf("resolving parent list: %w", err)
	}
	now := time.Now().UTC()
	sub := &domain.Sublist{
		ID:        uuid.New().String(),
		ListID:    listID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sublists.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *sublistService) GetByID(ctx context.Context, id string) (*domain.Sublist, error) {
	return s.sublists.GetByID(ctx, id)
}

func (s *sublistService) ListByList(ctx context.Context, listID string) ([]*domain.Sublist, error) {
	return s.sublists.ListByList(ctx, listID)
}

func (s *sublistService) Rename(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("sublist title is required")
	}
	sub, err := s.sublists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	sub.Title = title
	sub.UpdatedAt = time.Now().UTC()
	return s.sublists.Update(ctx, sub)
}

func (s *sublistService) Delete(ctx context.Context, id string) error {
	return s.sublists.Delete(ctx, id)
}

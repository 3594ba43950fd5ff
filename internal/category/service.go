package category

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Key         string
	Description string
}

type UpdateRequest struct {
	Name        *string
	Key         *string
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Category, error) {
	name := strings.TrimSpace(req.Name)
	key := normalizeKey(req.Key)

	if name == "" {
		return nil, ErrNameRequired
	}
	if key == "" {
		return nil, ErrKeyRequired
	}

	cat := &Category{
		Name:        name,
		Key:         key,
		Description: strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		cat.Name = strings.TrimSpace(*req.Name)
	}
	if req.Key != nil {
		key := normalizeKey(*req.Key)
		if key == "" {
			return nil, ErrKeyRequired
		}
		cat.Key = key
	}
	if req.Description != nil {
		cat.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// normalizeKey lowercases and trims the free-text category key so trips
// referencing it compare consistently.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

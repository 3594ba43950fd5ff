package trip

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	Name         string
	Slug         string
	Category     string
	DurationDays int
	Price        decimal.Decimal
	ImageURL     string
	Description  string
	Highlights   []string
	Difficulty   string
	Badge        string
	IsActive     bool
}

type UpdateRequest struct {
	Name         *string
	Category     *string
	DurationDays *int
	Price        *decimal.Decimal
	ImageURL     *string
	Description  *string
	Highlights   *[]string
	Difficulty   *string
	Badge        *string
	IsActive     *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Trip, error)
	GetByID(ctx context.Context, id string) (*Trip, error)
	GetBySlug(ctx context.Context, slug string) (*Trip, error)
	// List returns catalog entries. When the store holds no trips at all,
	// the compiled-in default packages are served instead so the public
	// catalog is never empty.
	List(ctx context.Context, filter Filter) ([]*Trip, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Trip, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository

	// fallback is the catalog served while the table is empty.
	fallback []*Trip
}

func NewService(repo Repository) Service {
	return &service{repo: repo, fallback: DefaultPackages}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Trip, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))

	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Slug == "" {
		return nil, ErrSlugRequired
	}
	if req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if req.DurationDays < 1 {
		return nil, ErrInvalidDuration
	}

	t := &Trip{
		Name:         req.Name,
		Slug:         req.Slug,
		Category:     strings.TrimSpace(req.Category),
		DurationDays: req.DurationDays,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Description:  req.Description,
		Highlights:   req.Highlights,
		Difficulty:   req.Difficulty,
		Badge:        req.Badge,
		IsActive:     req.IsActive,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Trip, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Trip, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Trip, int, error) {
	trips, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if total > 0 {
		return trips, total, nil
	}

	// An empty result does not mean an empty catalog: the filter may
	// simply match nothing, or the page may be past the end. Live data
	// wins whenever the table holds anything at all.
	stored, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	if stored > 0 {
		return trips, total, nil
	}

	// Nothing live at all: fall back to the static defaults, applying
	// the same filter semantics in memory.
	var out []*Trip
	for _, t := range s.fallback {
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.OnlyActive && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Trip, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		t.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		t.Category = strings.TrimSpace(*req.Category)
	}
	if req.DurationDays != nil {
		if *req.DurationDays < 1 {
			return nil, ErrInvalidDuration
		}
		t.DurationDays = *req.DurationDays
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		t.Price = *req.Price
	}
	if req.ImageURL != nil {
		t.ImageURL = *req.ImageURL
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Highlights != nil {
		t.Highlights = *req.Highlights
	}
	if req.Difficulty != nil {
		t.Difficulty = *req.Difficulty
	}
	if req.Badge != nil {
		t.Badge = *req.Badge
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

package contact

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Message, error)
	List(ctx context.Context, filter Filter) ([]*Message, int, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Message, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	body := strings.TrimSpace(req.Message)

	if name == "" {
		return nil, ErrNameRequired
	}
	if body == "" {
		return nil, ErrMessageRequired
	}
	// Some way to reply back is needed.
	if email == "" && phone == "" {
		return nil, ErrContactRequired
	}

	m := &Message{
		Name:  name,
		Email: email,
		Phone: phone,
		Body:  body,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Message, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

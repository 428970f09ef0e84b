package contacts

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, contact Contact) (Contact, error) {
	if s == nil || s.Repo == nil {
		return Contact{}, errors.New("contacts service not configured")
	}
	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" {
		return Contact{}, errors.New("contact name is required")
	}
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	if err := s.Repo.Create(ctx, contact); err != nil {
		return Contact{}, err
	}
	return s.Repo.GetByID(ctx, contact.ID)
}

func (s *Service) GetByID(ctx context.Context, contactID string) (Contact, error) {
	if s == nil || s.Repo == nil {
		return Contact{}, errors.New("contacts service not configured")
	}
	if strings.TrimSpace(contactID) == "" {
		return Contact{}, errors.New("contact id is required")
	}
	return s.Repo.GetByID(ctx, contactID)
}

func (s *Service) List(ctx context.Context) ([]Contact, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("contacts service not configured")
	}
	return s.Repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, contact Contact) (Contact, error) {
	if s == nil || s.Repo == nil {
		return Contact{}, errors.New("contacts service not configured")
	}
	if strings.TrimSpace(contact.ID) == "" {
		return Contact{}, errors.New("contact id is required")
	}
	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" {
		return Contact{}, errors.New("contact name is required")
	}
	if err := s.Repo.Update(ctx, contact); err != nil {
		return Contact{}, err
	}
	return s.Repo.GetByID(ctx, contact.ID)
}

func (s *Service) Delete(ctx context.Context, contactID string) error {
	if s == nil || s.Repo == nil {
		return errors.New("contacts service not configured")
	}
	if strings.TrimSpace(contactID) == "" {
		return errors.New("contact id is required")
	}
	return s.Repo.Delete(ctx, contactID)
}

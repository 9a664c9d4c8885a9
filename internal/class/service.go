package class

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sonexa-app/sonexa-api/internal/config"
)

var (
	ErrNotFound     = errors.New("class not found")
	ErrNameRequired = errors.New("class name is required")
)

type Service interface {
	CreateClass(ctx context.Context, ownerID string, input CreateClassInput) (*Class, error)
	ListClasses(ctx context.Context, ownerID string) ([]*Class, error)
	GetClass(ctx context.Context, ownerID string, classID uuid.UUID) (*Class, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateClass(ctx context.Context, ownerID string, input CreateClassInput) (*Class, error) {
	log := config.WithContext(ctx)

	name, subject, description, accentColor := input.normalize()
	if name == "" {
		return nil, ErrNameRequired
	}

	c := &Class{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Subject:     subject,
		Description: description,
		AccentColor: accentColor,
	}

	if err := s.repo.Create(c); err != nil {
		log.WithError(err).Error("failed to create class")
		return nil, err
	}

	log.WithField("class_id", c.ID.String()).Info("class created")
	return c, nil
}

func (s *service) ListClasses(ctx context.Context, ownerID string) ([]*Class, error) {
	log := config.WithContext(ctx)

	classes, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		log.WithError(err).Error("failed to list classes")
		return nil, err
	}
	return classes, nil
}

func (s *service) GetClass(ctx context.Context, ownerID string, classID uuid.UUID) (*Class, error) {
	log := config.WithContext(ctx)

	c, err := s.repo.GetByIDAndOwner(classID.String(), ownerID)
	if err != nil {
		log.WithError(err).Error("failed to fetch class")
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

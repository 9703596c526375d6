package services

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lawmanBack/internal/models"
)

// ServiceStore is the persistence the service listings need.
type ServiceStore interface {
	CreateService(ctx context.Context, service models.Service) (models.Service, error)
	GetService(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	ListServices(ctx context.Context, limit int64) ([]models.Service, error)
	ListServicesByAuthor(ctx context.Context, authorID string) ([]models.Service, error)
	DeleteService(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ServiceService struct {
	ServiceRepo  ServiceStore
	DefaultLimit int
	MaxLimit     int
}

// ParseLimit reads the limit query value. An empty value means the default,
// values above the maximum are clamped, anything else that is not a
// positive integer is rejected.
func (s *ServiceService) ParseLimit(raw string) (int64, error) {
	if raw == "" {
		return int64(s.DefaultLimit), nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", models.ErrInvalidLimit, raw)
	}
	if s.MaxLimit > 0 && n > s.MaxLimit {
		n = s.MaxLimit
	}
	return int64(n), nil
}

func (s *ServiceService) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	return s.ServiceRepo.CreateService(ctx, service)
}

// GetService returns nil when nothing has the id.
func (s *ServiceService) GetService(ctx context.Context, id string) (*models.Service, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.ServiceRepo.GetService(ctx, oid)
}

func (s *ServiceService) ListServices(ctx context.Context, rawLimit string) ([]models.Service, error) {
	limit, err := s.ParseLimit(rawLimit)
	if err != nil {
		return nil, err
	}
	return s.ServiceRepo.ListServices(ctx, limit)
}

func (s *ServiceService) GetServicesByAuthorID(ctx context.Context, authorID string) ([]models.Service, error) {
	return s.ServiceRepo.ListServicesByAuthor(ctx, authorID)
}

func (s *ServiceService) DeleteService(ctx context.Context, id string) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.ServiceRepo.DeleteService(ctx, oid)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return models.ErrNoRecord
	}
	return nil
}

// filepath: internal/services/mocks/flower_mock.go
package mocks

import (
	"context"
	"flowershop/internal/models"
	"flowershop/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockFlowerService is a mock implementation of services.FlowerService
type MockFlowerService struct {
	mock.Mock
}

var _ services.FlowerService = (*MockFlowerService)(nil)

func (m *MockFlowerService) ListFlowers(ctx context.Context, filter models.FlowerFilter) ([]models.Flower, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flower), args.Error(1)
}

func (m *MockFlowerService) CreateFlower(ctx context.Context, flower models.Flower, image []byte) (*models.Flower, error) {
	args := m.Called(ctx, flower, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flower), args.Error(1)
}

func (m *MockFlowerService) UpdateFlower(ctx context.Context, id string, patch models.FlowerPatch, image []byte) (*models.Flower, error) {
	args := m.Called(ctx, id, patch, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flower), args.Error(1)
}

func (m *MockFlowerService) DeleteFlower(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlowerService) GetStats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

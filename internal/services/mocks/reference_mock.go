// filepath: internal/services/mocks/reference_mock.go
package mocks

import (
	"context"
	"flowershop/internal/models"
	"flowershop/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockReferenceService is a mock implementation of services.ReferenceService
type MockReferenceService struct {
	mock.Mock
}

var _ services.ReferenceService = (*MockReferenceService)(nil)

func (m *MockReferenceService) ListFlowerTypes(ctx context.Context) ([]models.FlowerType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlowerType), args.Error(1)
}

func (m *MockReferenceService) ListUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UnitType), args.Error(1)
}

func (m *MockReferenceService) SaveFlowerType(ctx context.Context, t models.FlowerType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockReferenceService) SaveUnitType(ctx context.Context, u models.UnitType) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

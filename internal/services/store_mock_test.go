// filepath: internal/services/store_mock_test.go
package services

import (
	"context"
	"flowershop/internal/models"
	"flowershop/internal/storage"

	"github.com/stretchr/testify/mock"
)

// mockCatalog is a mock implementation of CatalogStore.
type mockCatalog struct {
	mock.Mock
}

var _ CatalogStore = (*mockCatalog)(nil)

func (m *mockCatalog) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockCatalog) FindFlowers(ctx context.Context, filter models.FlowerFilter) ([]models.Flower, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flower), args.Error(1)
}

func (m *mockCatalog) ListFlowers(ctx context.Context, flowerType string, limit int) ([]models.Flower, error) {
	args := m.Called(ctx, flowerType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flower), args.Error(1)
}

func (m *mockCatalog) GetFlower(ctx context.Context, id string) (*models.Flower, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flower), args.Error(1)
}

func (m *mockCatalog) InsertFlower(ctx context.Context, flower models.Flower) (*models.Flower, error) {
	args := m.Called(ctx, flower)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flower), args.Error(1)
}

func (m *mockCatalog) UpdateFlower(ctx context.Context, id string, patch models.FlowerPatch) (*models.Flower, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flower), args.Error(1)
}

func (m *mockCatalog) DeleteFlower(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalog) ImageURLs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockCatalog) ListFlowerTypes(ctx context.Context) ([]models.FlowerType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FlowerType), args.Error(1)
}

func (m *mockCatalog) ListUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UnitType), args.Error(1)
}

func (m *mockCatalog) UpsertFlowerType(ctx context.Context, t models.FlowerType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockCatalog) UpsertUnitType(ctx context.Context, u models.UnitType) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockCatalog) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

// mockBlobs is a mock implementation of BlobStore.
type mockBlobs struct {
	mock.Mock
}

var _ BlobStore = (*mockBlobs)(nil)

func (m *mockBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockBlobs) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockBlobs) PublicURL(key string) string {
	return m.Called(key).String(0)
}

func (m *mockBlobs) List(ctx context.Context) ([]storage.BlobInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.BlobInfo), args.Error(1)
}

// filepath: internal/services/reference_service.go
package services

import (
	"context"
	"flowershop/internal/logging"
	"flowershop/internal/models"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

var _ ReferenceService = (*referenceService)(nil)

const (
	flowerTypesCacheKey = "flower_types"
	unitTypesCacheKey   = "unit_types"
)

// referenceService serves the type and unit lookup tables from a short-lived cache.
type referenceService struct {
	Catalog CatalogStore
	Cache   *cache.Cache
}

// NewReferenceService creates a new ReferenceService whose lists live for ttl.
func NewReferenceService(catalog CatalogStore, ttl time.Duration) *referenceService {
	return &referenceService{
		Catalog: catalog,
		Cache:   cache.New(ttl, 2*ttl),
	}
}

// ListFlowerTypes returns all flower types ordered by name.
func (s *referenceService) ListFlowerTypes(ctx context.Context) ([]models.FlowerType, error) {
	if types, found := s.Cache.Get(flowerTypesCacheKey); found {
		return types.([]models.FlowerType), nil
	}

	logging.Log.Debug("ListFlowerTypes: CACHE MISS. Querying DB.")
	types, err := s.Catalog.ListFlowerTypes(ctx)
	if err != nil {
		return nil, storeError("list flower types", err)
	}
	s.Cache.SetDefault(flowerTypesCacheKey, types)
	return types, nil
}

// ListUnitTypes returns all unit types ordered by name.
func (s *referenceService) ListUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	if units, found := s.Cache.Get(unitTypesCacheKey); found {
		return units.([]models.UnitType), nil
	}

	logging.Log.Debug("ListUnitTypes: CACHE MISS. Querying DB.")
	units, err := s.Catalog.ListUnitTypes(ctx)
	if err != nil {
		return nil, storeError("list unit types", err)
	}
	s.Cache.SetDefault(unitTypesCacheKey, units)
	return units, nil
}

// SaveFlowerType creates a flower type or updates its color.
func (s *referenceService) SaveFlowerType(ctx context.Context, t models.FlowerType) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return validationError("flower type name is required")
	}
	if err := s.Catalog.UpsertFlowerType(ctx, t); err != nil {
		return storeError("save flower type", err)
	}
	s.Cache.Delete(flowerTypesCacheKey)
	return nil
}

// SaveUnitType creates a unit type if it does not exist.
func (s *referenceService) SaveUnitType(ctx context.Context, u models.UnitType) error {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return validationError("unit type name is required")
	}
	if err := s.Catalog.UpsertUnitType(ctx, u); err != nil {
		return storeError("save unit type", err)
	}
	s.Cache.Delete(unitTypesCacheKey)
	return nil
}

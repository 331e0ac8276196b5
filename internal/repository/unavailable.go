// filepath: internal/repository/unavailable.go
package repository

import (
	"context"
	"flowershop/internal/models"
	"fmt"
)

// Unavailable stands in for a catalog store that could not be opened.
// Every call fails with ErrUnavailable wrapping Cause, so the HTTP layer
// keeps serving and reports the failure per request.
type Unavailable struct {
	Cause error
}

func (u Unavailable) err() error {
	return fmt.Errorf("%w: %v", ErrUnavailable, u.Cause)
}

func (u Unavailable) Ping(ctx context.Context) error { return u.err() }

func (u Unavailable) FindFlowers(ctx context.Context, filter models.FlowerFilter) ([]models.Flower, error) {
	return nil, u.err()
}

func (u Unavailable) ListFlowers(ctx context.Context, flowerType string, limit int) ([]models.Flower, error) {
	return nil, u.err()
}

func (u Unavailable) GetFlower(ctx context.Context, id string) (*models.Flower, error) {
	return nil, u.err()
}

func (u Unavailable) InsertFlower(ctx context.Context, flower models.Flower) (*models.Flower, error) {
	return nil, u.err()
}

func (u Unavailable) UpdateFlower(ctx context.Context, id string, patch models.FlowerPatch) (*models.Flower, error) {
	return nil, u.err()
}

func (u Unavailable) DeleteFlower(ctx context.Context, id string) error { return u.err() }

func (u Unavailable) ImageURLs(ctx context.Context) ([]string, error) { return nil, u.err() }

func (u Unavailable) ListFlowerTypes(ctx context.Context) ([]models.FlowerType, error) {
	return nil, u.err()
}

func (u Unavailable) ListUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	return nil, u.err()
}

func (u Unavailable) UpsertFlowerType(ctx context.Context, t models.FlowerType) error { return u.err() }

func (u Unavailable) UpsertUnitType(ctx context.Context, unit models.UnitType) error { return u.err() }

func (u Unavailable) Stats(ctx context.Context) (models.Stats, error) {
	return models.Stats{}, u.err()
}

// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"flowershop/internal/models"
	"flowershop/internal/repository"
	"flowershop/internal/storage"
)

// Auditor defines the interface for recording catalog changes.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "flower.create", "catalog.export")
	// actor: who did it (remote address; the API has no users)
	// resource: what was affected (e.g., "Flower:01HQ...")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// CatalogStore is the record store behind the services.
type CatalogStore interface {
	Ping(ctx context.Context) error
	FindFlowers(ctx context.Context, filter models.FlowerFilter) ([]models.Flower, error)
	ListFlowers(ctx context.Context, flowerType string, limit int) ([]models.Flower, error)
	GetFlower(ctx context.Context, id string) (*models.Flower, error)
	InsertFlower(ctx context.Context, flower models.Flower) (*models.Flower, error)
	UpdateFlower(ctx context.Context, id string, patch models.FlowerPatch) (*models.Flower, error)
	DeleteFlower(ctx context.Context, id string) error
	ImageURLs(ctx context.Context) ([]string, error)
	ListFlowerTypes(ctx context.Context) ([]models.FlowerType, error)
	ListUnitTypes(ctx context.Context) ([]models.UnitType, error)
	UpsertFlowerType(ctx context.Context, t models.FlowerType) error
	UpsertUnitType(ctx context.Context, u models.UnitType) error
	Stats(ctx context.Context) (models.Stats, error)
}

var (
	_ CatalogStore = (*repository.Repository)(nil)
	_ CatalogStore = repository.Unavailable{}
)

// ObjectStore holds product images addressed by key.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

// BlobStore is an ObjectStore that can enumerate its contents.
type BlobStore interface {
	ObjectStore
	List(ctx context.Context) ([]storage.BlobInfo, error)
}

var _ BlobStore = (*storage.FileStore)(nil)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo(ctx context.Context) models.Info
}

// FlowerService defines the interface for catalog record operations.
type FlowerService interface {
	ListFlowers(ctx context.Context, filter models.FlowerFilter) ([]models.Flower, error)
	CreateFlower(ctx context.Context, flower models.Flower, image []byte) (*models.Flower, error)
	UpdateFlower(ctx context.Context, id string, patch models.FlowerPatch, image []byte) (*models.Flower, error)
	DeleteFlower(ctx context.Context, id string) error
	GetStats(ctx context.Context) (models.Stats, error)
}

// ReferenceService defines the interface for the type and unit lookup tables.
type ReferenceService interface {
	ListFlowerTypes(ctx context.Context) ([]models.FlowerType, error)
	ListUnitTypes(ctx context.Context) ([]models.UnitType, error)
	SaveFlowerType(ctx context.Context, t models.FlowerType) error
	SaveUnitType(ctx context.Context, u models.UnitType) error
}

// ExportService defines the interface for catalog document exports.
type ExportService interface {
	Export(ctx context.Context, format ExportFormat, flowerType string) (*ExportResult, error)
}

// HousekeepingService defines the interface for the orphan image sweep.
type HousekeepingService interface {
	Start()
	Stop()
	TriggerSweep(ctx context.Context, dryRun bool) (*models.OrphanReport, error)
}

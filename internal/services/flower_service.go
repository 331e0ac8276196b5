// filepath: internal/services/flower_service.go
package services

import (
	"context"
	"flowershop/internal/logging"
	"flowershop/internal/media"
	"flowershop/internal/models"
	"flowershop/internal/storage"
	"strings"
)

var _ FlowerService = (*flowerService)(nil)

// flowerService handles validation, image staging and record writes for the catalog.
//
// Creating or updating with an image is a two-step write: the image is normalized
// and uploaded first (stageImage), then the record is written. The steps are not
// atomic. If the record write fails after a successful upload, the uploaded blob is
// left behind and its key is logged; HousekeepingService.TriggerSweep removes it later.
type flowerService struct {
	Catalog CatalogStore
	Blobs   ObjectStore
	Media   media.Options
	newKey  func() string
}

// NewFlowerService creates a new FlowerService.
func NewFlowerService(catalog CatalogStore, blobs ObjectStore, opts media.Options) *flowerService {
	return &flowerService{
		Catalog: catalog,
		Blobs:   blobs,
		Media:   opts,
		newKey:  storage.NewImageKey,
	}
}

// ListFlowers returns one page of the catalog, newest first.
func (s *flowerService) ListFlowers(ctx context.Context, filter models.FlowerFilter) ([]models.Flower, error) {
	if filter.Skip < 0 || filter.Limit < 0 {
		return nil, validationError("skip and limit must not be negative")
	}
	if filter.Limit == 0 {
		filter.Limit = models.DefaultPageLimit
	}
	filter.Type = NormalizeTypeFilter(filter.Type)

	flowers, err := s.Catalog.FindFlowers(ctx, filter)
	if err != nil {
		return nil, storeError("list flowers", err)
	}
	return flowers, nil
}

// CreateFlower validates the record, stages the optional image and inserts the record.
// An image that cannot be processed or stored does not fail the request; the
// flower is created without an image.
func (s *flowerService) CreateFlower(ctx context.Context, flower models.Flower, image []byte) (*models.Flower, error) {
	flower.Name = strings.TrimSpace(flower.Name)
	if err := validateFlower(flower); err != nil {
		return nil, err
	}

	flower.ImageURL = s.stageImage(ctx, image)

	created, err := s.Catalog.InsertFlower(ctx, flower)
	if err != nil {
		s.logOrphan(flower.ImageURL, err)
		return nil, storeError("create flower", err)
	}

	logging.Log.Infof("FlowerService: Flower created: %s (%s)", created.ID, created.Name)
	return created, nil
}

// UpdateFlower applies a partial update. A patch that changes nothing is
// rejected before the catalog store is contacted.
func (s *flowerService) UpdateFlower(ctx context.Context, id string, patch models.FlowerPatch, image []byte) (*models.Flower, error) {
	if patch.IsEmpty() && len(image) == 0 {
		return nil, validationError("No data to update")
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	if url := s.stageImage(ctx, image); url != nil {
		patch.ImageURL = url
	}
	if patch.IsEmpty() {
		// The image was the only change and it was dropped.
		return nil, validationError("No data to update")
	}

	updated, err := s.Catalog.UpdateFlower(ctx, id, patch)
	if err != nil {
		s.logOrphan(patch.ImageURL, err)
		return nil, storeError("update flower", err)
	}

	logging.Log.Infof("FlowerService: Flower updated: %s", id)
	return updated, nil
}

// DeleteFlower removes the record and then, best effort, its image.
func (s *flowerService) DeleteFlower(ctx context.Context, id string) error {
	flower, err := s.Catalog.GetFlower(ctx, id)
	if err != nil {
		return storeError("get flower", err)
	}

	if err := s.Catalog.DeleteFlower(ctx, id); err != nil {
		return storeError("delete flower", err)
	}

	if flower.ImageURL != nil && *flower.ImageURL != "" {
		key := storage.KeyFromURL(*flower.ImageURL)
		if err := s.Blobs.Remove(ctx, key); err != nil {
			logging.Log.Debugf("FlowerService: ignoring failed image removal for %s: %v", key, err)
		}
	}

	logging.Log.Infof("FlowerService: Flower deleted: %s", id)
	return nil
}

// GetStats returns catalog aggregates.
func (s *flowerService) GetStats(ctx context.Context) (models.Stats, error) {
	stats, err := s.Catalog.Stats(ctx)
	if err != nil {
		return models.Stats{}, storeError("compute stats", err)
	}
	return stats, nil
}

// stageImage normalizes and uploads an image and returns its public URL.
// It returns nil when there is no image or when any step fails.
func (s *flowerService) stageImage(ctx context.Context, data []byte) *string {
	if len(data) == 0 {
		return nil
	}

	jpegData, err := media.NormalizeImage(data, s.Media)
	if err != nil {
		logging.Log.Warnf("FlowerService: image dropped: %v", err)
		return nil
	}

	key := s.newKey()
	url, err := s.Blobs.Upload(ctx, key, jpegData, "image/jpeg")
	if err != nil {
		logging.Log.Warnf("FlowerService: image upload failed for %s: %v", key, err)
		return nil
	}
	return &url
}

func (s *flowerService) logOrphan(imageURL *string, cause error) {
	if imageURL == nil {
		return
	}
	logging.Log.WithField("orphaned_key", storage.KeyFromURL(*imageURL)).
		Warnf("FlowerService: record write failed after image upload, image left orphaned: %v", cause)
}

// NormalizeTypeFilter maps the "all types" sentinels to an empty filter.
func NormalizeTypeFilter(flowerType string) string {
	t := strings.TrimSpace(flowerType)
	if t == models.AllTypes || strings.EqualFold(t, "all") {
		return ""
	}
	return t
}

func validateFlower(f models.Flower) error {
	switch {
	case f.Name == "":
		return validationError("name is required")
	case strings.TrimSpace(f.Type) == "":
		return validationError("type is required")
	case strings.TrimSpace(f.Unit) == "":
		return validationError("unit is required")
	case f.Price < 0:
		return validationError("price must not be negative")
	case f.Stock < 0:
		return validationError("stock must not be negative")
	}
	return nil
}

func validatePatch(p models.FlowerPatch) error {
	if p.Price != nil && *p.Price < 0 {
		return validationError("price must not be negative")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return validationError("stock must not be negative")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return validationError("name must not be empty")
	}
	return nil
}

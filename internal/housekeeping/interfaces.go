// filepath: internal/housekeeping/interfaces.go
package housekeeping

import (
	"context"
	"flowershop/internal/storage"
)

// CatalogTX is the catalog side of the orphan sweep: every image URL still referenced by a record.
type CatalogTX interface {
	ImageURLs(ctx context.Context) ([]string, error)
}

// StorageTX defines the blob store methods required by the orphan sweep.
type StorageTX interface {
	List(ctx context.Context) ([]storage.BlobInfo, error)
	Remove(ctx context.Context, key string) error
}

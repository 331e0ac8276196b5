// filepath: internal/housekeeping/tasks.go
package housekeeping

import (
	"context"
	"flowershop/internal/logging"
	"flowershop/internal/models"
	"flowershop/internal/storage"
	"fmt"
	"time"
)

// Dependencies defines the required collaborators for the sweep tasks.
type Dependencies struct {
	Catalog CatalogTX
	Storage StorageTX
	// MinAge skips blobs modified more recently than this. An image is
	// uploaded before its record is written, so a young unreferenced blob
	// may still be claimed.
	MinAge time.Duration
	Now    func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// RunOrphanSweep finds stored images that no flower references and, unless
// dryRun is set, removes them. A failed removal is logged and the sweep goes on.
func RunOrphanSweep(ctx context.Context, deps Dependencies, dryRun bool) (*models.OrphanReport, error) {
	urls, err := deps.Catalog.ImageURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not read referenced images: %w", err)
	}
	referenced := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		referenced[storage.KeyFromURL(u)] = struct{}{}
	}

	blobs, err := deps.Storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list stored images: %w", err)
	}

	report := &models.OrphanReport{
		Scanned:  len(blobs),
		Orphaned: make([]string, 0),
		DryRun:   dryRun,
	}
	cutoff := deps.now().Add(-deps.MinAge)

	for _, blob := range blobs {
		if _, ok := referenced[blob.Key]; ok {
			continue
		}
		if blob.ModTime.After(cutoff) {
			logging.Log.Debugf("Orphan sweep: skipping recent blob %s", blob.Key)
			continue
		}
		report.Orphaned = append(report.Orphaned, blob.Key)
		if dryRun {
			continue
		}
		if err := deps.Storage.Remove(ctx, blob.Key); err != nil {
			logging.Log.Errorf("Orphan sweep: failed to remove %s: %v", blob.Key, err)
			continue
		}
		report.Removed++
	}

	if len(report.Orphaned) > 0 {
		logging.Log.Infof("Orphan sweep: %d of %d stored images unreferenced, %d removed (dry run: %t)",
			len(report.Orphaned), report.Scanned, report.Removed, dryRun)
	}
	return report, nil
}

// filepath: internal/cli/recovery_test.go
package cli

import (
	"context"
	"flowershop/internal/config"
	"flowershop/internal/models"
	"flowershop/internal/repository"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRecovery(t *testing.T) {
	dir := t.TempDir()
	imageRoot := filepath.Join(dir, "images")
	require.NoError(t, os.MkdirAll(imageRoot, 0755))

	cfg = &config.Config{
		Server:       config.ServerConfig{PublicBaseURL: "http://shop.test"},
		Database:     config.DatabaseConfig{Path: filepath.Join(dir, "catalog.db")},
		Storage:      config.StorageConfig{Root: imageRoot},
		OrphanMinAge: time.Minute,
	}
	defer func() { cfg = nil }()

	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	require.NoError(t, repo.Migrate("up"))
	imageURL := "http://shop.test/images/flower_kept.jpg"
	_, err = repo.InsertFlower(context.Background(), models.Flower{Name: "Rose", Price: 1, Type: "Red", Unit: "bunch", ImageURL: &imageURL})
	require.NoError(t, err)
	repo.Close()

	old := time.Now().Add(-time.Hour)
	for _, name := range []string{"flower_kept.jpg", "flower_orphan.jpg"} {
		path := filepath.Join(imageRoot, name)
		require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xD8}, 0644))
		require.NoError(t, os.Chtimes(path, old, old))
	}

	// Dry run keeps everything
	require.NoError(t, runRecovery(context.Background(), true))
	assert.FileExists(t, filepath.Join(imageRoot, "flower_orphan.jpg"))

	require.NoError(t, runRecovery(context.Background(), false))
	assert.FileExists(t, filepath.Join(imageRoot, "flower_kept.jpg"))
	assert.NoFileExists(t, filepath.Join(imageRoot, "flower_orphan.jpg"))
}

func TestRunMigrationUnknownCommand(t *testing.T) {
	cfg = &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "catalog.db")}}
	defer func() { cfg = nil }()

	assert.NoError(t, runMigration("up"))
	assert.Error(t, runMigration("sideways"))
}

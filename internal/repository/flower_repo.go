// filepath: internal/repository/flower_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"flowershop/internal/logging"
	"flowershop/internal/models"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// FindFlowers returns one page of flowers matching the filter, newest first.
func (s *Repository) FindFlowers(ctx context.Context, filter models.FlowerFilter) ([]models.Flower, error) {
	query := s.Builder.Select(flowerColumns...).From(flowerTable)

	if filter.Search != "" {
		query = query.Where(squirrel.Expr(foldFunc+"(name) LIKE ? ESCAPE '\\'", containsPattern(filter.Search)))
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Tags != "" {
		query = query.Where(squirrel.Expr(foldFunc+"(tags) LIKE ? ESCAPE '\\'", containsPattern(filter.Tags)))
	}
	if filter.LowStock {
		query = query.Where(squirrel.LtOrEq{"stock": models.LowStockThreshold})
	}

	limit := filter.Limit
	if limit < 0 {
		limit = 0
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}

	sqlQuery, args, err := query.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(skip)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find query: %w", err)
	}

	logging.Log.Debugf("Generated SQL for FindFlowers: %s", sqlQuery)
	logging.Log.Debugf("Arguments: %v", args)

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		logging.Log.Errorf("Error executing FindFlowers query: %v", err)
		return nil, err
	}
	return scanFlowers(rows)
}

// ListFlowers returns flowers in insertion order for exports, optionally
// restricted to one type and capped at limit rows (0 means no cap).
func (s *Repository) ListFlowers(ctx context.Context, flowerType string, limit int) ([]models.Flower, error) {
	query := s.Builder.Select(flowerColumns...).From(flowerTable)
	if flowerType != "" {
		query = query.Where(squirrel.Eq{"type": flowerType})
	}
	query = query.OrderBy("created_at ASC", "id ASC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	return scanFlowers(rows)
}

// GetFlower returns a single flower or ErrNotFound.
func (s *Repository) GetFlower(ctx context.Context, id string) (*models.Flower, error) {
	sqlQuery, args, err := s.Builder.Select(flowerColumns...).
		From(flowerTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	flower, err := scanFlower(s.DB.QueryRowContext(ctx, sqlQuery, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return flower, err
}

// InsertFlower stores a new flower. The store assigns id and created_at.
func (s *Repository) InsertFlower(ctx context.Context, flower models.Flower) (*models.Flower, error) {
	flower.ID = s.newID()
	flower.CreatedAt = s.now().UTC()

	sqlQuery, args, err := s.Builder.Insert(flowerTable).
		Columns(flowerColumns...).
		Values(
			flower.ID,
			flower.Name,
			flower.Price,
			flower.Type,
			flower.Unit,
			flower.Stock,
			flower.Tags,
			nullableString(flower.ImageURL),
			flower.CreatedAt.UnixMicro(),
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, sqlQuery, args...); err != nil {
		return nil, err
	}

	// created_at is stored with microsecond precision.
	flower.CreatedAt = flower.CreatedAt.Truncate(time.Microsecond)
	return &flower, nil
}

// UpdateFlower applies the patch and returns the updated row, or ErrNotFound.
func (s *Repository) UpdateFlower(ctx context.Context, id string, patch models.FlowerPatch) (*models.Flower, error) {
	tx, err := s.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.UpdateFlowerInTx(ctx, id, patch); err != nil {
		return nil, err
	}

	flower, err := tx.GetFlowerInTx(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit update: %w", err)
	}
	return flower, nil
}

// DeleteFlower removes a flower row, or returns ErrNotFound.
func (s *Repository) DeleteFlower(ctx context.Context, id string) error {
	sqlQuery, args, err := s.Builder.Delete(flowerTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ImageURLs returns every non-null image_url in the catalog.
func (s *Repository) ImageURLs(ctx context.Context) ([]string, error) {
	sqlQuery, args, err := s.Builder.Select("image_url").
		From(flowerTable).
		Where(squirrel.NotEq{"image_url": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build image query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, rows.Err()
}

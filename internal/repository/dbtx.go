// filepath: internal/repository/dbtx.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"flowershop/internal/models"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Tx is a wrapper around *sql.Tx that provides transactional catalog operations.
type Tx struct {
	*sql.Tx
	builder squirrel.StatementBuilderType
}

// UpdateFlowerInTx applies a patch to one flower row.
// It returns ErrNotFound when no row has the given id.
func (tx *Tx) UpdateFlowerInTx(ctx context.Context, id string, patch models.FlowerPatch) error {
	set := patchColumns(patch)
	if len(set) == 0 {
		return nil
	}

	query, args, err := tx.builder.Update(flowerTable).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
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

// GetFlowerInTx reads a single flower row inside the transaction.
func (tx *Tx) GetFlowerInTx(ctx context.Context, id string) (*models.Flower, error) {
	query, args, err := tx.builder.Select(flowerColumns...).
		From(flowerTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	flower, err := scanFlower(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return flower, nil
}

// patchColumns maps the present fields of a patch to column assignments.
func patchColumns(patch models.FlowerPatch) map[string]interface{} {
	set := map[string]interface{}{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Unit != nil {
		set["unit"] = *patch.Unit
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	return set
}

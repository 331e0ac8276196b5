// filepath: internal/repository/reference_repo.go
package repository

import (
	"context"
	"flowershop/internal/models"
	"fmt"
)

// ListFlowerTypes returns every flower type ordered by name.
func (s *Repository) ListFlowerTypes(ctx context.Context) ([]models.FlowerType, error) {
	sqlQuery, args, err := s.Builder.Select("name", "color").From("flower_types").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build flower type query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]models.FlowerType, 0)
	for rows.Next() {
		var t models.FlowerType
		if err := rows.Scan(&t.Name, &t.Color); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

// ListUnitTypes returns every unit type ordered by name.
func (s *Repository) ListUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	sqlQuery, args, err := s.Builder.Select("name").From("unit_types").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build unit type query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]models.UnitType, 0)
	for rows.Next() {
		var u models.UnitType
		if err := rows.Scan(&u.Name); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// UpsertFlowerType inserts a flower type or updates its color.
// An empty color is stored as models.DefaultTypeColor.
func (s *Repository) UpsertFlowerType(ctx context.Context, t models.FlowerType) error {
	if t.Color == "" {
		t.Color = models.DefaultTypeColor
	}
	sqlQuery, args, err := s.Builder.Insert("flower_types").
		Columns("name", "color").
		Values(t.Name, t.Color).
		Suffix("ON CONFLICT(name) DO UPDATE SET color = excluded.color").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build flower type upsert: %w", err)
	}
	_, err = s.DB.ExecContext(ctx, sqlQuery, args...)
	return err
}

// UpsertUnitType inserts a unit type if it does not exist yet.
func (s *Repository) UpsertUnitType(ctx context.Context, u models.UnitType) error {
	sqlQuery, args, err := s.Builder.Insert("unit_types").
		Columns("name").
		Values(u.Name).
		Suffix("ON CONFLICT(name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build unit type upsert: %w", err)
	}
	_, err = s.DB.ExecContext(ctx, sqlQuery, args...)
	return err
}

// filepath: internal/repository/stats_repo.go
package repository

import (
	"context"
	"flowershop/internal/models"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Stats computes catalog aggregates. TotalValue is the sum of unit prices, not price times stock.
func (s *Repository) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	sqlQuery, args, err := s.Builder.Select(
		"COUNT(*)",
		"COALESCE(SUM(price), 0)",
	).
		Column(squirrel.Expr("COALESCE(SUM(CASE WHEN stock <= ? THEN 1 ELSE 0 END), 0)", models.LowStockThreshold)).
		From(flowerTable).
		ToSql()
	if err != nil {
		return stats, fmt.Errorf("failed to build stats query: %w", err)
	}
	if err := s.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(&stats.TotalFlowers, &stats.TotalValue, &stats.LowStockCount); err != nil {
		return stats, fmt.Errorf("failed to compute flower stats: %w", err)
	}

	sqlQuery, args, err = s.Builder.Select("COUNT(*)").From("flower_types").ToSql()
	if err != nil {
		return stats, fmt.Errorf("failed to build type count query: %w", err)
	}
	if err := s.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(&stats.TotalTypes); err != nil {
		return stats, fmt.Errorf("failed to count flower types: %w", err)
	}

	return stats, nil
}

// filepath: internal/repository/utils.go
package repository

import (
	"database/sql"
	"database/sql/driver"
	"flowershop/internal/models"
	"strings"
	"time"

	"modernc.org/sqlite"
)

// foldFunc is a SQL function lowercasing its argument with full Unicode rules.
// SQLite's built-in LOWER only folds ASCII, which misses Vietnamese capitals.
const foldFunc = "fold_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		switch v := args[0].(type) {
		case string:
			return strings.ToLower(v), nil
		case []byte:
			return strings.ToLower(string(v)), nil
		default:
			return v, nil
		}
	})
}

var flowerColumns = []string{"id", "name", "price", "type", "unit", "stock", "tags", "image_url", "created_at"}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanFlower scans one row selected with flowerColumns.
func scanFlower(row rowScanner) (*models.Flower, error) {
	var (
		f         models.Flower
		imageURL  sql.NullString
		createdAt int64
	)
	if err := row.Scan(&f.ID, &f.Name, &f.Price, &f.Type, &f.Unit, &f.Stock, &f.Tags, &imageURL, &createdAt); err != nil {
		return nil, err
	}
	if imageURL.Valid {
		url := imageURL.String
		f.ImageURL = &url
	}
	f.CreatedAt = time.UnixMicro(createdAt).UTC()
	return &f, nil
}

// scanFlowers drains rows into a slice. It never returns a nil slice on success.
func scanFlowers(rows *sql.Rows) ([]models.Flower, error) {
	defer rows.Close()
	flowers := make([]models.Flower, 0)
	for rows.Next() {
		f, err := scanFlower(rows)
		if err != nil {
			return nil, err
		}
		flowers = append(flowers, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return flowers, nil
}

// containsPattern builds a LIKE pattern matching term anywhere, with LIKE
// wildcards in term escaped by a backslash. The term is lowercased so it can
// be compared against fold_lower(column).
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}

func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

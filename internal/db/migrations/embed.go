// filepath: internal/db/migrations/embed.go
package migrations

import "embed"

// FS holds the catalog schema migrations applied by goose.
//
//go:embed *.sql
var FS embed.FS

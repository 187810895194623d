package migrations

import "embed"

// FS contains embedded SQLite migrations for compat storage.
//
//go:embed *.sql
var FS embed.FS

package migrations

import "embed"

// FS contiene las migraciones SQLite embebidas del store de owners.
//
//go:embed *.sql
var FS embed.FS

// Package preferences embeds the goose migrations of the preferences store.
// The SQL is portable between PostgreSQL and SQLite.
package preferences

import "embed"

//go:embed *.sql
var FS embed.FS

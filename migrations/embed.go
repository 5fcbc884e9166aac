package migrations

import "embed"

// Files holds the numbered schema migrations for the expense ledger.
// Migrations are forward-only; the runner in internal/db records each
// applied version in schema_migrations and never re-executes one.
//
//go:embed *.sql
var Files embed.FS

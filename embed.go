package cryptominer

import "embed"

// MigrationsFS holds the SQL migrations shipped with the binary.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// Package migrations embeds the SQL migration files so the server can bring
// its local database up to date at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Package migrations embeds the CLI's SQLite schema migrations for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

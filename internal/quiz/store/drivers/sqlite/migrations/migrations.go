// Package migrations embeds the SQL migration files so they ship inside the
// binary instead of alongside it.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

// Package migrations embeds the Postgres schema so the API can migrate on
// boot without shipping the SQL files next to the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

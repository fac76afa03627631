// Package migrations embeds the goose SQL migrations of the marketplace schema.
package migrations

import "embed"

// FS holds every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS

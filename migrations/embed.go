// Package migrations embeds the goose SQL migrations so binaries carry their
// own schema.
package migrations

import "embed"

// FS holds every migration file
//
//go:embed *.sql
var FS embed.FS

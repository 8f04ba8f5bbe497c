// Package migrations embeds the goose SQL migrations so the server and the
// initdb command can run them without a checkout on disk.
package migrations

import (
	"embed"
)

//go:embed *.sql
var FS embed.FS

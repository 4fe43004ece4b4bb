// Package migrations embeds the SQL schema migrations so binaries carry them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

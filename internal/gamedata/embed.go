// Package gamedata provides the embedded balance, shape, effect and palette
// tables and the registries built from them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

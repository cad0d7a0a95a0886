// Package gamedata holds the role and spell tables shipped inside the binary.
package gamedata

import "embed"

//go:embed roles.json spells.json
var dataFS embed.FS

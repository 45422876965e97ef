// Package assets embeds the data files shipped with the demo.
package assets

import "embed"

//go:embed all:levels
var levelFS embed.FS

// Levels exposes the embedded TMX arenas.
func Levels() embed.FS {
	return levelFS
}

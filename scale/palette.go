package scale

import "strings"

// Named palettes available to layer configs via the `scale` key. These
// match the colorscale names the front end passes to chroma.js, so a config
// can keep saying `scale: Viridis` and the colorbar stays in sync.
var palettes = map[string][]string{
	"viridis": {
		"#440154", "#482777", "#3f4a8a", "#31678e", "#26838f",
		"#1f9d8a", "#6cce5a", "#b6de2b", "#fee825",
	},
	"magma": {
		"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
		"#e55064", "#fb8761", "#fec287", "#fcfdbf",
	},
	"blues": {
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	},
}

// Palette looks up a named palette, case-insensitively. The returned slice
// is a copy, safe for the caller to hold on to.
func Palette(name string) ([]string, bool) {
	p, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, false
	}

	colors := make([]string, len(p))
	copy(colors, p)
	return colors, true
}

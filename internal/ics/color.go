package ics

import (
	"github.com/lucasb-eyer/go-colorful"
)

// cssColors is the palette COLOR values are snapped to. RFC 7986 wants a
// CSS3 color name, not a hex value.
var cssColors = []struct {
	name string
	hex  string
}{
	{"black", "#000000"},
	{"white", "#ffffff"},
	{"gray", "#808080"},
	{"silver", "#c0c0c0"},
	{"slategray", "#708090"},
	{"red", "#ff0000"},
	{"crimson", "#dc143c"},
	{"maroon", "#800000"},
	{"salmon", "#fa8072"},
	{"tomato", "#ff6347"},
	{"coral", "#ff7f50"},
	{"orange", "#ffa500"},
	{"sandybrown", "#f4a460"},
	{"gold", "#ffd700"},
	{"khaki", "#f0e68c"},
	{"yellow", "#ffff00"},
	{"olive", "#808000"},
	{"lime", "#00ff00"},
	{"lightgreen", "#90ee90"},
	{"green", "#008000"},
	{"seagreen", "#2e8b57"},
	{"mediumturquoise", "#48d1cc"},
	{"turquoise", "#40e0d0"},
	{"teal", "#008080"},
	{"cyan", "#00ffff"},
	{"skyblue", "#87ceeb"},
	{"dodgerblue", "#1e90ff"},
	{"blue", "#0000ff"},
	{"navy", "#000080"},
	{"slateblue", "#6a5acd"},
	{"purple", "#800080"},
	{"orchid", "#da70d6"},
	{"violet", "#ee82ee"},
	{"magenta", "#ff00ff"},
	{"hotpink", "#ff69b4"},
	{"pink", "#ffc0cb"},
	{"brown", "#a52a2a"},
	{"chocolate", "#d2691e"},
	{"tan", "#d2b48c"},
}

// colorName returns the CSS3 color name closest to a hex color, or false
// when hex cannot be parsed.
func colorName(hex string) (string, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}

	best, bestDist := "", -1.0
	for _, named := range cssColors {
		candidate, err := colorful.Hex(named.hex)
		if err != nil {
			continue
		}
		if d := c.DistanceLab(candidate); bestDist < 0 || d < bestDist {
			best, bestDist = named.name, d
		}
	}
	return best, best != ""
}

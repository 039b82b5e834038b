package core

import "strings"

// Color represents a foreground color for a screen cell.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
}

// ParseColor maps a config color name to a Color.
// Unknown names fall back to ColorDefault.
func ParseColor(name string) Color {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return ColorDefault
}

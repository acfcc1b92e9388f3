package draw

import "github.com/charmbracelet/lipgloss"

// Color is a cell color tag. ColorNone renders the cell's rune literally;
// any other tag renders Glyph in that color.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
)

// Glyph is drawn for every colored cell regardless of the cell's rune.
const Glyph = '*'

// Palette lists the colors a burst particle can take.
var Palette = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan}

// ansi maps each palette color to its basic ANSI index.
var ansi = map[Color]lipgloss.Color{
	ColorRed:     lipgloss.Color("1"),
	ColorGreen:   lipgloss.Color("2"),
	ColorYellow:  lipgloss.Color("3"),
	ColorBlue:    lipgloss.Color("4"),
	ColorMagenta: lipgloss.Color("5"),
	ColorCyan:    lipgloss.Color("6"),
}

var colorNames = [...]string{"none", "red", "green", "yellow", "blue", "magenta", "cyan"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

package ggbar

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// OptionalColor is a color that may be absent.
// The zero value is absent.
type OptionalColor struct {
	RGBA  gg.RGBA
	Valid bool
}

// Some returns a present OptionalColor holding c.
func Some(c gg.RGBA) OptionalColor {
	return OptionalColor{RGBA: c, Valid: true}
}

// Get returns the color and whether it is present.
func (o OptionalColor) Get() (gg.RGBA, bool) {
	return o.RGBA, o.Valid
}

// Hard-coded fallbacks used when neither the bar nor the theme sets a color.
var (
	defaultBackground = gg.Hex("#ff0000aa")
	defaultForeground = gg.Hex("#ff0000")
	defaultTicks      = gg.Hex("#000000aa")
)

// ParseColor parses a hex color string.
// Accepted forms are "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa"; the leading
// '#' is optional. gg.Hex silently maps bad input to black, so the string is
// validated first.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q has %d digits", ErrInvalidColor, s, len(hex))
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level color literals.
func MustParseColor(s string) gg.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

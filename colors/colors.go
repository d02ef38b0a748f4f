// Package colors contains the Color type used by models and the HUD, functions to generate Colors by name
// (i.e. "White()", "SkyBlue()", "Asphalt()", etc), and hex parsing for config files.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidHex is returned when a string can't be parsed as a hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
// The components are not premultiplied by alpha.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// ParseHex parses colors written as "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) == 6 {
		hex += "ff"
	}

	if len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return Color{
		R: float32((value>>24)&0xff) / 255,
		G: float32((value>>16)&0xff) / 255,
		B: float32((value>>8)&0xff) / 255,
		A: float32(value&0xff) / 255,
	}, nil

}

// UnmarshalYAML allows Colors to be written as hex strings in YAML documents.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the Color as a "#rrggbbaa" string.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// Hex returns the Color as a "#rrggbbaa" string.
func (c Color) Hex() string {
	nrgba := c.ToNRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B, nrgba.A)
}

// IsZero returns if the Color is fully transparent black, which is what an unset Color is.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Shaded returns a copy of the Color with the RGB components multiplied by the light level given, leaving alpha untouched.
func (c Color) Shaded(light float32) Color {
	c.R = clamp(c.R * light)
	c.G = clamp(c.G * light)
	c.B = clamp(c.B * light)
	return c
}

// WithAlpha returns a copy of the Color with the alpha component set.
func (c Color) WithAlpha(a float32) Color {
	c.A = clamp(a)
	return c
}

// Mult returns the component-wise product of the two Colors.
func (c Color) Mult(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// ToNRGBA converts the Color to a non-premultiplied color.NRGBA.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R)*255 + 0.5),
		G: uint8(clamp(c.G)*255 + 0.5),
		B: uint8(clamp(c.B)*255 + 0.5),
		A: uint8(clamp(c.A)*255 + 0.5),
	}
}

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// White generates a Color instance of the provided name.
func White() Color {
	return NewColor(1, 1, 1, 1)
}

// Black generates a Color instance of the provided name.
func Black() Color {
	return NewColor(0, 0, 0, 1)
}

// Gray generates a Color instance of the provided name.
func Gray() Color {
	return NewColor(0.5, 0.5, 0.5, 1)
}

// LightGray generates a Color instance of the provided name.
func LightGray() Color {
	return NewColor(0.8, 0.8, 0.8, 1)
}

// Red generates a Color instance of the provided name.
func Red() Color {
	return NewColor(1, 0, 0, 1)
}

// Sky is the clear color of the city, 0x87ceeb.
func Sky() Color {
	return NewColor(0.529, 0.808, 0.922, 1)
}

// Grass is the color of the ground plane around the city.
func Grass() Color {
	return NewColor(0.42, 0.6, 0.36, 1)
}

// Asphalt is the default color of road tiles.
func Asphalt() Color {
	return NewColor(0.27, 0.28, 0.3, 1)
}

// Overlay is the translucent black used behind HUD text.
func Overlay() Color {
	return NewColor(0, 0, 0, 0.7)
}

// Button is the blue of the restart prompt.
func Button() Color {
	return NewColor(0.204, 0.596, 0.859, 1)
}

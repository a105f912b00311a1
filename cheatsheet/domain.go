package cheatsheet

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"
)

// ErrUnknownColor is returned when a Color has no palette entry.
var ErrUnknownColor = errors.New("unknown color")

// Color is the paint of a Shape.
type Color int

const (
	Red Color = iota + 1
	Black
	Yellow
	Blue
	Green
)

var palette = map[Color]struct {
	name    string
	r, g, b uint8
}{
	Red:    {"RED", 255, 0, 0},
	Black:  {"BLACK", 0, 0, 0},
	Yellow: {"YELLOW", 255, 255, 0},
	Blue:   {"BLUE", 0, 0, 255},
	Green:  {"GREEN", 0, 128, 0},
}

func (c Color) String() string {
	if p, ok := palette[c]; ok {
		return p.name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// RGB returns the colour's RGB value.
func (c Color) RGB() (*colors.RGBColor, error) {
	p, ok := palette[c]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColor, "%d", int(c))
	}
	rgb, err := colors.RGB(p.r, p.g, p.b)
	if err != nil {
		return nil, errors.Wrapf(err, "color %s", p.name)
	}
	return rgb, nil
}

// Shape is a mutable coloured shape.
type Shape struct {
	color Color
}

// NewShape returns a shape painted c.
func NewShape(c Color) *Shape {
	return &Shape{color: c}
}

// Color returns the current paint.
func (s *Shape) Color() Color {
	return s.color
}

// SetColor repaints the shape in place.
func (s *Shape) SetColor(c Color) {
	s.color = c
}

// String renders the colour name and its hex code, e.g. Shape(RED #ff0000).
func (s *Shape) String() string {
	rgb, err := s.color.RGB()
	if err != nil {
		return fmt.Sprintf("Shape(%s)", s.color)
	}
	return fmt.Sprintf("Shape(%s %s)", s.color, rgb.ToHEX())
}

// Person is a named, aged example payload.
type Person struct {
	Name string
	Age  int
}

// GetAge is the accessor used as a method expression, Person.GetAge.
func (p Person) GetAge() int {
	return p.Age
}

func (p Person) String() string {
	return fmt.Sprintf("%s (%d)", p.Name, p.Age)
}

// ActionEvent is a UI action: when it happened (epoch milliseconds) and the
// command that triggered it.
type ActionEvent struct {
	When    int64
	Command string
}

package vector

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrBadVector = errors.New("invalid vector")

// Vector is a 2D vector. Operations return new values and leave their operands alone.
type Vector struct {
	X, Y float64
}

// New returns the vector (x, y)
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// String renders the vector as Vector(x, y) using the shortest literal for each component.
func (v Vector) String() string {
	return "Vector(" + formatComponent(v.X) + ", " + formatComponent(v.Y) + ")"
}

// Abs returns the Euclidean magnitude
func (v Vector) Abs() float64 {
	return math.Hypot(v.X, v.Y)
}

// Bool reports whether the vector is non-zero. Same result as Abs() > 0
// without computing the magnitude.
func (v Vector) Bool() bool {
	return v.X != 0 || v.Y != 0
}

// Add returns the component-wise sum
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Mul scales both components by s
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Parse reads "x,y"; surrounding parentheses are allowed
func Parse(text string) (Vector, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Vector{}, errors.Wrapf(ErrBadVector, "%q: want x,y", text)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Vector{}, errors.Wrapf(ErrBadVector, "%q: %v", text, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Vector{}, errors.Wrapf(ErrBadVector, "%q: %v", text, err)
	}
	return Vector{X: x, Y: y}, nil
}

func formatComponent(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

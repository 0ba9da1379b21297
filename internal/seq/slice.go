package seq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrZeroStep    = errors.New("slice step cannot be zero")
	ErrBadPosition = errors.New("invalid position")
)

// Slice selects a range of positions. A nil bound means "from the edge",
// a nil step means 1. Bounds follow the usual start:stop:step rules: negative
// values count from the end and out-of-range values are clamped.
type Slice struct {
	Start *int
	Stop  *int
	Step  *int
}

// Position is either a single index or a slice
type Position struct {
	Index int
	Slice *Slice
}

// Int returns a pointer to v, for building a Slice literal.
func Int(v int) *int {
	return &v
}

// String renders s in start:stop:step form.
func (s Slice) String() string {
	part := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}
	if s.Step == nil {
		return part(s.Start) + ":" + part(s.Stop)
	}
	return part(s.Start) + ":" + part(s.Stop) + ":" + part(s.Step)
}

// Indices resolves s against a sequence of length n and returns the
// selected positions in order.
func (s Slice) Indices(n int) ([]int, error) {
	step := 1
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return nil, ErrZeroStep
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}

	var start, stop int
	if step > 0 {
		start, stop = clamp(s.Start, lower), clamp(s.Stop, upper)
	} else {
		start, stop = clamp(s.Start, upper), clamp(s.Stop, lower)
	}

	// Count first so huge steps cannot overflow the position.
	var span int
	var stride uint
	if step > 0 {
		span, stride = stop-start, uint(step)
	} else {
		span, stride = start-stop, uint(-(step+1))+1
	}
	if span <= 0 {
		return nil, nil
	}

	count := int(uint(span-1)/stride) + 1
	out := make([]int, 0, count)
	for k := 0; k < count; k++ {
		out = append(out, start+k*step)
	}
	return out, nil
}

// SliceOf returns the elements of x selected by s
func SliceOf[T any](x Indexable[T], s Slice) ([]T, error) {
	idx, err := s.Indices(x.Len())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, x.Index(i))
	}
	return out, nil
}

// ParseSlice parses "start:stop" or "start:stop:step", any part may be empty
func ParseSlice(text string) (Slice, error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Slice{}, errors.Wrapf(ErrBadPosition, "%q is not a slice", text)
	}

	var bounds [3]*int
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, errors.Wrapf(ErrBadPosition, "%q: %v", text, err)
		}
		bounds[i] = &v
	}

	s := Slice{Start: bounds[0], Stop: bounds[1], Step: bounds[2]}
	if s.Step != nil && *s.Step == 0 {
		return Slice{}, ErrZeroStep
	}
	return s, nil
}

// ParsePosition parses either an integer index or a slice expression
func ParsePosition(text string) (Position, error) {
	if strings.Contains(text, ":") {
		s, err := ParseSlice(text)
		if err != nil {
			return Position{}, err
		}
		return Position{Slice: &s}, nil
	}

	i, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Position{}, errors.Wrapf(ErrBadPosition, "%q", text)
	}
	return Position{Index: i}, nil
}

// String implements Stringer.
func (p Position) String() string {
	if p.Slice != nil {
		return p.Slice.String()
	}
	return fmt.Sprint(p.Index)
}

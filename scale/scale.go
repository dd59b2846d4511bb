// Package scale maps numeric feature values to colors. A scale is compiled
// once when the layer config is loaded and is then evaluated per feature
// during a render pass, so all validation happens in the constructors.
package scale

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// A Scale converts a numeric value to a hex color string.
type Scale interface {
	// Eval returns the color for the value as a `#rrggbb` hex string.
	Eval(v float64) string

	// Fallback returns the color to use for features that have no
	// usable value for the scale's property.
	Fallback() string
}

// Continuous interpolates values across a fixed domain into a sequence of
// colors. Adjacent colors are blended in RGB space, which is what the
// chroma.js scales on the original front end do by default. Values outside
// the domain clamp to the nearest endpoint.
type Continuous struct {
	min    float64
	max    float64
	colors []colorful.Color
}

// NewContinuous compiles a continuous scale over [min, max].
func NewContinuous(hexColors []string, min, max float64) (*Continuous, error) {
	if len(hexColors) < 2 {
		return nil, errors.Errorf("continuous scale needs at least 2 colors, got %d", len(hexColors))
	}

	if !isFinite(min) || !isFinite(max) {
		return nil, errors.Errorf("invalid domain: min and max must be finite, got [%g, %g]", min, max)
	}

	if min >= max {
		return nil, errors.Errorf("invalid domain: min (%g) must be less than max (%g)", min, max)
	}

	colors, err := parseColors(hexColors)
	if err != nil {
		return nil, err
	}

	return &Continuous{min: min, max: max, colors: colors}, nil
}

// Eval clamps v to the domain and interpolates it into the color sequence.
// NaN carries no domain position and takes the fallback color.
func (s *Continuous) Eval(v float64) string {
	if math.IsNaN(v) {
		return s.Fallback()
	}

	t := (v - s.min) / (s.max - s.min)
	if t <= 0 {
		return s.colors[0].Hex()
	}
	if t >= 1 {
		return s.colors[len(s.colors)-1].Hex()
	}

	pos := t * float64(len(s.colors)-1)
	i := int(pos)
	return s.colors[i].BlendRgb(s.colors[i+1], pos-float64(i)).Hex()
}

// Fallback is the minimum-domain color, the "no data" end of the scale.
func (s *Continuous) Fallback() string {
	return s.colors[0].Hex()
}

// Domain returns the [min, max] range the scale is defined over.
func (s *Continuous) Domain() (min, max float64) {
	return s.min, s.max
}

// Threshold is a classed (stepped) scale. A value belongs to the bucket of
// the highest boundary it strictly exceeds: values not exceeding any
// boundary get the first color, values exceeding all of them get the color
// after the last boundary, clamped to the last color available.
type Threshold struct {
	boundaries []float64
	colors     []string
}

// NewThreshold compiles a classed scale. Boundaries must be strictly
// ascending and there can be at most one boundary per color.
func NewThreshold(hexColors []string, boundaries []float64) (*Threshold, error) {
	if len(hexColors) == 0 {
		return nil, errors.Errorf("threshold scale needs at least 1 color")
	}

	if len(boundaries) == 0 {
		return nil, errors.Errorf("threshold scale needs at least 1 class boundary")
	}

	if len(boundaries) > len(hexColors) {
		return nil, errors.Errorf("more class boundaries (%d) than colors (%d)", len(boundaries), len(hexColors))
	}

	for i, b := range boundaries {
		if !isFinite(b) {
			return nil, errors.Errorf("class boundary %d must be finite, got %g", i, b)
		}
	}

	for i := 1; i < len(boundaries); i++ {
		if boundaries[i-1] >= boundaries[i] {
			return nil, errors.Errorf("class boundaries must be strictly ascending, got %g before %g",
				boundaries[i-1], boundaries[i])
		}
	}

	colors, err := parseColors(hexColors)
	if err != nil {
		return nil, err
	}

	normalized := make([]string, len(colors))
	for i, c := range colors {
		normalized[i] = c.Hex()
	}

	b := make([]float64, len(boundaries))
	copy(b, boundaries)

	return &Threshold{boundaries: b, colors: normalized}, nil
}

// Eval returns the color of the bucket v falls in. NaN exceeds no
// boundary and takes the fallback color.
func (s *Threshold) Eval(v float64) string {
	if math.IsNaN(v) {
		return s.Fallback()
	}

	// number of boundaries strictly below v
	idx := sort.SearchFloat64s(s.boundaries, v)
	if idx >= len(s.colors) {
		idx = len(s.colors) - 1
	}

	return s.colors[idx]
}

// Fallback is the first color, the bucket below every boundary.
func (s *Threshold) Fallback() string {
	return s.colors[0]
}

// Boundaries returns the compiled class boundaries.
func (s *Threshold) Boundaries() []float64 {
	return s.boundaries
}

// BucketColor returns the color of bucket i, of which there are
// len(Boundaries())+1, clamped to the last color available.
func (s *Threshold) BucketColor(i int) string {
	if i >= len(s.colors) {
		i = len(s.colors) - 1
	}

	return s.colors[i]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseColors(hexColors []string) ([]colorful.Color, error) {
	colors := make([]colorful.Color, len(hexColors))
	for i, h := range hexColors {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, errors.Errorf("color %d: invalid hex color: %v", i, h)
		}

		colors[i] = c
	}

	return colors, nil
}

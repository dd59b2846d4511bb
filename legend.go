package mapstyle

import "github.com/boligkart/mapstyle/scale"

// LegendEntry is one sample of a layer's color scale, data for the host to
// draw a colorbar from.
type LegendEntry struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Legend samples the layer's scale. For a continuous scale it returns n
// evenly spaced samples across the domain, n clamped to at least 2. For a
// threshold scale n is ignored: there is one entry per bucket, each valued
// at its boundary, the first entry covering everything below the first
// boundary.
func (l *Layer) Legend(n int) []LegendEntry {
	switch s := l.scale.(type) {
	case *scale.Continuous:
		if n < 2 {
			n = 2
		}

		min, max := s.Domain()
		step := (max - min) / float64(n-1)

		entries := make([]LegendEntry, n)
		for i := range entries {
			v := min + float64(i)*step
			entries[i] = LegendEntry{Value: v, Color: s.Eval(v)}
		}

		return entries
	case *scale.Threshold:
		bounds := s.Boundaries()

		entries := make([]LegendEntry, len(bounds)+1)
		entries[0] = LegendEntry{Value: bounds[0], Color: s.BucketColor(0)}
		for i, b := range bounds {
			entries[i+1] = LegendEntry{Value: b, Color: s.BucketColor(i + 1)}
		}

		return entries
	}

	return nil
}

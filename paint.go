package mapstyle

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CircleMarker is the renderable descriptor for a single point feature: a
// circle marker at Center drawn with Style. It is built fresh per call and
// the host renderer discards it after drawing.
type CircleMarker struct {
	Center orb.Point `json:"center"`
	Style  Style     `json:"style"`
}

// PaintPolygon returns the style for a polygon feature: a copy of the
// layer's base style with the fill color classified from the feature's
// color property. A feature with a missing, null or non-numeric value gets
// the scale's fallback color rather than failing the render pass.
func (l *Layer) PaintPolygon(feature *geojson.Feature) Style {
	style := l.BaseStyle.Clone()
	style.FillColor = l.scale.Fallback()

	if feature == nil {
		return style
	}

	if v, ok := numericProperty(feature.Properties, l.ColorProperty); ok {
		style.FillColor = l.scale.Eval(v)
	}

	return style
}

// PaintPoint returns the circle marker for a point feature at the given
// coordinate. The fill rule is the same as for polygons.
func (l *Layer) PaintPoint(feature *geojson.Feature, center orb.Point) CircleMarker {
	return CircleMarker{
		Center: center,
		Style:  l.PaintPolygon(feature),
	}
}

// numericProperty reads a numeric property value. The second return is
// false for an absent key, an explicit null and any non-numeric value, so
// all three degrade to the same fallback styling.
func numericProperty(props geojson.Properties, key string) (float64, bool) {
	if props == nil {
		return 0, false
	}

	switch v := props[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

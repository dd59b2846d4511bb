package mapstyle

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const grayscaleLayer = `
layers:
  prices:
    color_property: sqm_price
    colors: ["#000000", "#ffffff"]
    domain: {min: 0, max: 100}
    base_style:
      weight: 1
      color: "#000000"
      fill_color: "#123456"
      fill_opacity: 0.3`

func polygonFeature(props map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	for k, v := range props {
		f.Properties[k] = v
	}

	return f
}

func TestPaintPolygon(t *testing.T) {
	l := parseLayer(t, grayscaleLayer)

	cases := []struct {
		name  string
		value interface{}
		color string
	}{
		{"min", 0.0, "#000000"},
		{"mid", 50.0, "#808080"},
		{"max", 100.0, "#ffffff"},
		{"integer value", 100, "#ffffff"},
		{"clamped", 250.0, "#ffffff"},
	}

	for _, tc := range cases {
		style := l.PaintPolygon(polygonFeature(map[string]interface{}{"sqm_price": tc.value}))
		if style.FillColor != tc.color {
			t.Errorf("%s: got %v, want %v", tc.name, style.FillColor, tc.color)
		}

		// everything else comes from the base style
		if style.Weight != 1 || style.FillOpacity != 0.3 {
			t.Errorf("%s: base style not carried over: %+v", tc.name, style)
		}
	}
}

func TestPaintPolygonFallback(t *testing.T) {
	l := parseLayer(t, grayscaleLayer)

	cases := []struct {
		name    string
		feature *geojson.Feature
	}{
		{"property absent", polygonFeature(nil)},
		{"property null", polygonFeature(map[string]interface{}{"sqm_price": nil})},
		{"property not numeric", polygonFeature(map[string]interface{}{"sqm_price": "expensive"})},
		{"property NaN", polygonFeature(map[string]interface{}{"sqm_price": math.NaN()})},
		{"nil feature", nil},
	}

	for _, tc := range cases {
		style := l.PaintPolygon(tc.feature)
		if style.FillColor != l.Scale().Fallback() {
			t.Errorf("%s: got %v, want fallback %v", tc.name, style.FillColor, l.Scale().Fallback())
		}
	}
}

func TestPaintPolygonDoesNotMutateBaseStyle(t *testing.T) {
	l := parseLayer(t, grayscaleLayer)

	before := l.BaseStyle
	for _, v := range []float64{0, 25, 50, 75, 100} {
		l.PaintPolygon(polygonFeature(map[string]interface{}{"sqm_price": v}))
	}

	if l.BaseStyle != before {
		t.Errorf("base style changed during painting: %+v != %+v", l.BaseStyle, before)
	}

	if l.BaseStyle.FillColor != "#123456" {
		t.Errorf("base fill color overwritten: %v", l.BaseStyle.FillColor)
	}
}

func TestPaintPoint(t *testing.T) {
	l := parseLayer(t, grayscaleLayer)

	f := geojson.NewFeature(orb.Point{10.75, 59.9})
	f.Properties["sqm_price"] = 50.0

	marker := l.PaintPoint(f, orb.Point{10.75, 59.9})
	if marker.Center != (orb.Point{10.75, 59.9}) {
		t.Errorf("wrong center: %v", marker.Center)
	}

	if marker.Style.FillColor != "#808080" {
		t.Errorf("wrong fill color: %v", marker.Style.FillColor)
	}

	// a feature that never had the property still renders
	marker = l.PaintPoint(geojson.NewFeature(orb.Point{0, 0}), orb.Point{0, 0})
	if marker.Style.FillColor != l.Scale().Fallback() {
		t.Errorf("got %v, want fallback color", marker.Style.FillColor)
	}
}

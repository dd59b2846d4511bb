package mapstyle

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func TestTooltipHTML(t *testing.T) {
	f := geojson.NewFeature(orb.Point{10.75, 59.9})
	f.Properties["price_total"] = 5000000.0
	f.Properties["price_suggestion"] = 4500000.0
	f.Properties["sqm_price"] = 58441.56
	f.Properties["area"] = 77.0
	f.Properties["bedrooms"] = 2.0

	want := `<b>Total price:</b> NOK 5,000,000.00</br>
<b>Ask price:</b> NOK 4,500,000.00 NOK</br>
<b>Sqm price:</b> 58,441.56 NOK/m<sup>2</sup></br>
<b>Area:</b> 77.00 m<sup>2</sup></br>
<b>Bedrooms:</b> 2`

	got, ok := TooltipHTML(f)
	if !ok {
		t.Fatal("expected a tooltip")
	}

	if got != want {
		t.Errorf("wrong tooltip:\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestTooltipHTMLNoPrice(t *testing.T) {
	f := geojson.NewFeature(orb.Point{10.75, 59.9})
	f.Properties["sqm_price"] = 58441.56

	if s, ok := TooltipHTML(f); ok {
		t.Errorf("feature without price_total should have no tooltip, got %q", s)
	}

	if s, ok := TooltipHTML(nil); ok {
		t.Errorf("nil feature should have no tooltip, got %q", s)
	}
}

func TestInfoHTML(t *testing.T) {
	if s := InfoHTML(nil); s != "<p>Hover over a polygon</p>" {
		t.Errorf("wrong placeholder: %q", s)
	}

	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	f.Properties["name"] = "Oslo"
	f.Properties["average_sqm_price"] = 65000.4

	if s, want := InfoHTML(f), "<b>Oslo</b>: 65000 NOK/m²"; s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}

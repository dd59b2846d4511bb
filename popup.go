package mapstyle

import (
	"fmt"

	"github.com/boligkart/mapstyle/util"

	"github.com/paulmach/orb/geojson"
)

// The ask price line keeps its doubled currency unit; the deployed front
// end renders it that way and the tooltip text is load-bearing for it.
const tooltipTemplate = `<b>Total price:</b> NOK %s</br>
<b>Ask price:</b> NOK %s NOK</br>
<b>Sqm price:</b> %s NOK/m<sup>2</sup></br>
<b>Area:</b> %s m<sup>2</sup></br>
<b>Bedrooms:</b> %d`

// TooltipHTML renders the tooltip bound to a listing marker. The second
// return is false when the feature has no total price, which the host
// renderer reads as "don't bind a tooltip".
func TooltipHTML(feature *geojson.Feature) (string, bool) {
	if feature == nil {
		return "", false
	}

	total, ok := numericProperty(feature.Properties, "price_total")
	if !ok {
		return "", false
	}

	ask, _ := numericProperty(feature.Properties, "price_suggestion")
	sqm, _ := numericProperty(feature.Properties, "sqm_price")
	area, _ := numericProperty(feature.Properties, "area")
	bedrooms, _ := numericProperty(feature.Properties, "bedrooms")

	return fmt.Sprintf(tooltipTemplate,
		util.Amount(total),
		util.Amount(ask),
		util.Amount(sqm),
		util.Amount(area),
		int(bedrooms),
	), true
}

// InfoHTML renders the contents of the info box shown while hovering the
// price choropleth.
func InfoHTML(feature *geojson.Feature) string {
	if feature == nil || feature.Properties == nil {
		return "<p>Hover over a polygon</p>"
	}

	price, _ := numericProperty(feature.Properties, "average_sqm_price")
	return fmt.Sprintf("<b>%s</b>: %.0f NOK/m²",
		feature.Properties.MustString("name", ""), price)
}

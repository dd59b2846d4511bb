// Serves a styled copy of a geojson feature collection, the way the
// real-estate viewer's front end consumes it: every feature gets a `style`
// property and, for listing points, a `tooltip` property.
package main

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/boligkart/mapstyle"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const port = "8100"

func main() {
	var (
		configFile = flag.String("config", "", "layers config file, empty for the embedded default")
		dataFile   = flag.String("data", "listings.geojson", "feature collection to style")
		layerName  = flag.String("layer", "choropleth", "layer to style the features with")
	)
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	layer := config.Layer(*layerName)
	if layer == nil {
		log.Fatalf("layer not defined: %v", *layerName)
	}

	data, err := ioutil.ReadFile(*dataFile)
	if err != nil {
		log.Fatalf("data: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		log.Fatalf("data: %v", err)
	}

	http.HandleFunc("/styled", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, styled(layer, fc))
	})

	http.HandleFunc("/legend", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, layer.Legend(16))
	})

	log.Printf("listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

func loadConfig(filename string) (*mapstyle.Config, error) {
	if filename == "" {
		return mapstyle.LoadDefaultConfig()
	}

	return mapstyle.Load(filename)
}

func styled(layer *mapstyle.Layer, fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		styledFeature := geojson.NewFeature(f.Geometry)
		for k, v := range f.Properties {
			styledFeature.Properties[k] = v
		}

		if p, ok := f.Geometry.(orb.Point); ok {
			styledFeature.Properties["style"] = layer.PaintPoint(f, p).Style
		} else {
			styledFeature.Properties["style"] = layer.PaintPolygon(f)
		}

		if tooltip, ok := mapstyle.TooltipHTML(f); ok {
			styledFeature.Properties["tooltip"] = tooltip
		}

		out.Append(styledFeature)
	}

	return out
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode: %v", err)
	}
}

package mapstyle

// Style carries the drawing attributes for a single feature. The fields
// mirror the path options of the Leaflet renderer on the other side of the
// JSON boundary, so a Style can be handed to it directly.
//
// Stroke is a pointer because `stroke: false` is meaningful to the renderer
// and must survive serialization, while an unset stroke keeps the
// renderer's default.
type Style struct {
	Weight      float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
	Opacity     float64 `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	Color       string  `yaml:"color,omitempty" json:"color,omitempty"`
	FillColor   string  `yaml:"fill_color,omitempty" json:"fillColor,omitempty"`
	FillOpacity float64 `yaml:"fill_opacity,omitempty" json:"fillOpacity,omitempty"`
	Stroke      *bool   `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	Radius      float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Clone returns a copy that shares nothing with the receiver. Painters
// clone the layer's base style so the configured style is never written to
// during a render pass.
func (s Style) Clone() Style {
	c := s
	if s.Stroke != nil {
		v := *s.Stroke
		c.Stroke = &v
	}

	return c
}

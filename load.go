// Package mapstyle implements the styling callbacks of a map-based
// real-estate listing viewer: choropleth polygon fills, colored point
// markers, aggregated cluster icons and popup text. The host application
// owns data loading, clustering and drawing; this package only decides, per
// feature, what things should look like.
package mapstyle

import (
	"embed"
	"io/ioutil"

	"github.com/boligkart/mapstyle/scale"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

//go:embed config
var DefaultConfig embed.FS

// Config holds the styled layers of the viewer, keyed by layer name.
type Config struct {
	Layers map[string]*Layer `yaml:"layers"`
}

// Layer is the styling config for a single map layer. Exactly one of
// Domain and ClassBoundaries must be set, and exactly one of ScaleName and
// Colors. A layer is immutable once compiled; its methods only read.
type Layer struct {
	ColorProperty   string    `yaml:"color_property"`
	ScaleName       string    `yaml:"scale"`
	Colors          []string  `yaml:"colors"`
	Domain          *Domain   `yaml:"domain"`
	ClassBoundaries []float64 `yaml:"class_boundaries"`
	BaseStyle       Style     `yaml:"base_style"`
	HoverStyle      *Style    `yaml:"hover_style"`
	IconSize        int       `yaml:"icon_size"`

	scale scale.Scale
}

// Domain is the value range of a continuous scale.
type Domain struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultIconSize is the square dimension of cluster icons when the layer
// config doesn't set one. Matches the 40px divicons of the original viewer.
const DefaultIconSize = 40

// Load reads and compiles a layers config file.
func Load(filename string) (*Config, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to read config")
	}

	return LoadConfig(data)
}

// LoadDefaultConfig compiles the config shipped with the library, which
// styles the viewer's two layers: listing ads and the price choropleth.
func LoadDefaultConfig() (*Config, error) {
	data, err := DefaultConfig.ReadFile("config/layers.yaml")
	if err != nil {
		return nil, err
	}

	return LoadConfig(data)
}

// LoadConfig unmarshals and compiles a layers config. Malformed layer
// config is reported here, at setup time, so render callbacks never have to
// deal with it.
func LoadConfig(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.WithMessage(err, "failed to unmarshal")
	}

	if len(c.Layers) == 0 {
		return nil, errors.Errorf("no layers defined")
	}

	for name, l := range c.Layers {
		if err := l.compile(); err != nil {
			return nil, errors.WithMessage(err, name)
		}
	}

	return c, nil
}

// Layer returns the named layer, or nil if the config doesn't have it.
func (c *Config) Layer(name string) *Layer {
	return c.Layers[name]
}

func (l *Layer) compile() error {
	if l == nil {
		return errors.Errorf("undefined layer")
	}

	if l.ColorProperty == "" {
		return errors.Errorf("color_property is required")
	}

	colors, err := l.scaleColors()
	if err != nil {
		return err
	}

	switch {
	case l.Domain != nil && l.ClassBoundaries != nil:
		return errors.Errorf("domain and class_boundaries are mutually exclusive")
	case l.Domain != nil:
		l.scale, err = scale.NewContinuous(colors, l.Domain.Min, l.Domain.Max)
	case l.ClassBoundaries != nil:
		l.scale, err = scale.NewThreshold(colors, l.ClassBoundaries)
	default:
		return errors.Errorf("either domain or class_boundaries is required")
	}

	if err != nil {
		return err
	}

	if l.IconSize < 0 {
		return errors.Errorf("icon_size must be positive, got %d", l.IconSize)
	}

	if l.IconSize == 0 {
		l.IconSize = DefaultIconSize
	}

	return nil
}

func (l *Layer) scaleColors() ([]string, error) {
	if l.ScaleName != "" && len(l.Colors) != 0 {
		return nil, errors.Errorf("scale and colors are mutually exclusive")
	}

	if l.ScaleName != "" {
		colors, ok := scale.Palette(l.ScaleName)
		if !ok {
			return nil, errors.Errorf("unknown scale: %v", l.ScaleName)
		}

		return colors, nil
	}

	if len(l.Colors) == 0 {
		return nil, errors.Errorf("either scale or colors is required")
	}

	return l.Colors, nil
}

// Scale returns the layer's compiled color scale.
func (l *Layer) Scale() scale.Scale {
	return l.scale
}

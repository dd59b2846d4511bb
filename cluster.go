package mapstyle

import (
	"github.com/boligkart/mapstyle/util"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// A LeafSource exposes the original point features absorbed into a cluster
// marker. The host's clustering index (supercluster and friends) provides
// this; a getLeaves-style lookup maps onto it directly.
type LeafSource interface {
	Leaves(clusterID int64) []*geojson.Feature
}

// ClusterIcon describes a composite cluster marker: a fixed-size square
// icon at Center, its background colored by the aggregate of the cluster's
// members, labeled with the abbreviated member count. It is plain data for
// the host renderer's icon factory.
type ClusterIcon struct {
	Center orb.Point `json:"center"`
	Label  string    `json:"label"`
	Count  int       `json:"count"`
	Color  string    `json:"color"`
	Size   int       `json:"size"`
}

// PaintCluster builds the icon for a cluster marker. The icon color is the
// classified arithmetic mean of the member features' color property. Leaves
// without a usable numeric value are excluded from the mean but still
// counted in the label; a cluster with no valued leaves at all, including
// the degenerate zero-leaf cluster, gets the scale's fallback color.
func (l *Layer) PaintCluster(clusterID int64, center orb.Point, leaves LeafSource) ClusterIcon {
	var members []*geojson.Feature
	if leaves != nil {
		members = leaves.Leaves(clusterID)
	}

	sum := 0.0
	valued := 0
	for _, f := range members {
		if f == nil {
			continue
		}

		if v, ok := numericProperty(f.Properties, l.ColorProperty); ok {
			sum += v
			valued++
		}
	}

	color := l.scale.Fallback()
	if valued > 0 {
		color = l.scale.Eval(sum / float64(valued))
	}

	return ClusterIcon{
		Center: center,
		Label:  util.AbbreviateCount(len(members)),
		Count:  len(members),
		Color:  color,
		Size:   l.IconSize,
	}
}

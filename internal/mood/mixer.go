package mood

import (
	"github.com/muesli/clusters"
)

// Neutral is the calm baseline used when nothing is selected.
var Neutral = Vector{Stress: 0.3, Energy: 0.4, Warmth: 0.5}

// Mix blends the vectors of the given moods into their componentwise mean.
// An empty selection yields Neutral. No clamping is applied.
func Mix(moods []Mood) Vector {
	if len(moods) == 0 {
		return Neutral
	}

	obs := make(clusters.Observations, len(moods))
	for i, m := range moods {
		obs[i] = m.Vec
	}

	center, err := obs.Center()
	if err != nil || len(center) != 3 {
		return Neutral
	}

	return Vector{Stress: center[0], Energy: center[1], Warmth: center[2]}
}

// Nearest returns the catalog mood whose vector is closest to v.
// Ties resolve to the mood listed first in the catalog.
func Nearest(v Vector) Mood {
	centers := make(clusters.Clusters, len(catalog))
	for i, m := range catalog {
		centers[i] = clusters.Cluster{Center: m.Vec.Coordinates()}
	}
	return catalog[centers.Nearest(v)]
}

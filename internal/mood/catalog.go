// Package mood implements the mood-to-signal derivation pipeline: the mood
// catalog, vector mixing, palette synthesis and response copy generation.
package mood

import (
	"github.com/muesli/clusters"
)

// Vector is a point in the 3-axis emotional space.
// Components are conventionally in [0,1] but are not clamped.
type Vector struct {
	Stress float64 `json:"stress"`
	Energy float64 `json:"energy"`
	Warmth float64 `json:"warmth"`
}

// Coordinates implements clusters.Observation.
func (v Vector) Coordinates() clusters.Coordinates {
	return clusters.Coordinates{v.Stress, v.Energy, v.Warmth}
}

// Distance implements clusters.Observation.
func (v Vector) Distance(point clusters.Coordinates) float64 {
	return v.Coordinates().Distance(point)
}

// Mood is a named point in emotional space.
type Mood struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Vec   Vector `json:"vec"`
}

// catalog is ordered; the order is user-visible (button layout, label joins).
var catalog = []Mood{
	{ID: "anxious", Label: "Anxious", Vec: Vector{Stress: 0.9, Energy: 0.4, Warmth: 0.2}},
	{ID: "tired", Label: "Tired", Vec: Vector{Stress: 0.4, Energy: 0.1, Warmth: 0.4}},
	{ID: "calm", Label: "Calm", Vec: Vector{Stress: 0.1, Energy: 0.4, Warmth: 0.6}},
	{ID: "lonely", Label: "Lonely", Vec: Vector{Stress: 0.5, Energy: 0.3, Warmth: 0.1}},
	{ID: "motivated", Label: "Motivated", Vec: Vector{Stress: 0.2, Energy: 0.9, Warmth: 0.7}},
	{ID: "angry", Label: "Angry", Vec: Vector{Stress: 0.8, Energy: 0.8, Warmth: 0.3}},
}

// Catalog returns every mood in display order.
// The returned slice is a copy and may be modified by the caller.
func Catalog() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the mood with the given id.
func Lookup(id string) (Mood, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}

// Labels returns the labels of moods, in order.
func Labels(moods []Mood) []string {
	labels := make([]string, len(moods))
	for i, m := range moods {
		labels[i] = m.Label
	}
	return labels
}

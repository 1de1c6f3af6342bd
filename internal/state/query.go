package state

import (
	"net/url"
	"slices"
	"strings"

	"github.com/justestif/silent-signal/internal/mood"
)

// Query parameter names.
const (
	ParamMoods     = "moods"
	ParamContext   = "context"
	ParamIntensity = "intensity"
)

// Query encodes the persisted part of s (selection, context, intensity) as a
// query string. Parameters are written in the fixed order moods, context,
// intensity; moods is omitted when the selection is empty.
func Query(s State) string {
	var parts []string
	if len(s.Selected) > 0 {
		parts = append(parts, ParamMoods+"="+url.QueryEscape(strings.Join(s.Selected, ",")))
	}
	parts = append(parts,
		ParamContext+"="+url.QueryEscape(string(s.Context)),
		ParamIntensity+"="+url.QueryEscape(string(s.Intensity)),
	)
	return strings.Join(parts, "&")
}

// ShareURL returns the shareable link for s relative to base, which should
// be an absolute URL of the page.
func ShareURL(base string, s State) string {
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return base + "?" + Query(s)
}

// FromQuery rebuilds a state from persisted query values. Missing or
// malformed values keep their defaults. A present moods list is filtered to
// known, distinct ids and capped at MaxSelected.
func FromQuery(values url.Values) State {
	s := Default()

	if raw := values.Get(ParamMoods); raw != "" {
		s.Selected = parseMoods(raw)
	}
	if c, err := mood.ParseContext(values.Get(ParamContext)); err == nil {
		s.Context = c
	}
	if i, err := mood.ParseIntensity(values.Get(ParamIntensity)); err == nil {
		s.Intensity = i
	}

	return s.react()
}

func parseMoods(raw string) []string {
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		if id == "" || slices.Contains(ids, id) {
			continue
		}
		if _, ok := mood.Lookup(id); !ok {
			continue
		}
		if len(ids) == MaxSelected {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// Package state holds the presentation state of a signal card and the named
// transitions that move it from one snapshot to the next.
package state

import (
	"slices"

	"github.com/google/uuid"

	"github.com/justestif/silent-signal/internal/mood"
)

// MaxSelected is the maximum number of moods in a selection.
const MaxSelected = 4

// signalNamespace scopes the content-derived signal ids.
var signalNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("silent-signal"))

// Signal is a generated summary and response for a selection.
type Signal struct {
	ID      uuid.UUID    `json:"id"`
	Moods   []string     `json:"moods"` // labels, catalog order
	Context mood.Context `json:"context"`
	Summary string       `json:"summary"`
	Respond string       `json:"respond"`
}

// State is one snapshot of the card controls and output.
// Transitions never modify the receiver; they return the next snapshot.
type State struct {
	Selected     []string // mood ids, insertion order
	Context      mood.Context
	Intensity    mood.Intensity
	AutoGenerate bool    // regenerate on every input change
	Generated    *Signal // nil until generated
	Toast        string  // transient notification, empty when hidden
}

// DefaultSelection is used when no selection is persisted.
var DefaultSelection = []string{"anxious", "tired"}

// Default returns the initial state: anxious and tired, School, Medium, with
// auto-generate on and a signal already generated.
func Default() State {
	s := State{
		Selected:     slices.Clone(DefaultSelection),
		Context:      mood.School,
		Intensity:    mood.Medium,
		AutoGenerate: true,
	}
	return s.Generate()
}

// SelectedMoods returns the catalog records for the selection, in catalog
// order. Ids missing from the catalog are skipped.
func (s State) SelectedMoods() []mood.Mood {
	var moods []mood.Mood
	for _, m := range mood.Catalog() {
		if slices.Contains(s.Selected, m.ID) {
			moods = append(moods, m)
		}
	}
	return moods
}

// IsSelected reports whether the mood id is in the selection.
func (s State) IsSelected(id string) bool {
	return slices.Contains(s.Selected, id)
}

// ToggleMood removes id from the selection, or appends it when there is room.
// Unknown ids and a fifth mood are silent no-ops.
func (s State) ToggleMood(id string) State {
	if _, ok := mood.Lookup(id); !ok {
		return s
	}

	if i := slices.Index(s.Selected, id); i >= 0 {
		s.Selected = slices.Delete(slices.Clone(s.Selected), i, i+1)
		return s.react()
	}

	if len(s.Selected) >= MaxSelected {
		return s
	}

	s.Selected = append(slices.Clone(s.Selected), id)
	return s.react()
}

// SetContext changes the context.
func (s State) SetContext(c mood.Context) State {
	if s.Context == c {
		return s
	}
	s.Context = c
	return s.react()
}

// SetIntensity changes the intensity.
func (s State) SetIntensity(i mood.Intensity) State {
	if s.Intensity == i {
		return s
	}
	s.Intensity = i
	return s.react()
}

// SetAutoGenerate turns auto-generation on (regenerating immediately) or off
// (clearing the displayed signal).
func (s State) SetAutoGenerate(on bool) State {
	if s.AutoGenerate == on {
		return s
	}
	s.AutoGenerate = on
	return s.react()
}

// Generate derives a fresh signal from the current selection and context.
func (s State) Generate() State {
	moods := s.SelectedMoods()
	c := mood.Generate(moods, s.Context)

	s.Generated = &Signal{
		ID:      signalID(s),
		Moods:   mood.Labels(moods),
		Context: s.Context,
		Summary: c.Summary,
		Respond: c.Respond,
	}
	return s
}

// ClearGenerated hides the current signal.
func (s State) ClearGenerated() State {
	s.Generated = nil
	return s
}

// ShowToast sets the transient notification.
func (s State) ShowToast(msg string) State {
	s.Toast = msg
	return s
}

// DismissToast hides the transient notification.
func (s State) DismissToast() State {
	s.Toast = ""
	return s
}

// react applies the auto-generate policy after an input change.
func (s State) react() State {
	if s.AutoGenerate {
		return s.Generate()
	}
	return s.ClearGenerated()
}

// signalID derives a stable id from the inputs that produced the signal.
func signalID(s State) uuid.UUID {
	return uuid.NewSHA1(signalNamespace, []byte(Query(s)))
}

package state

import (
	"errors"
	"fmt"

	"github.com/justestif/silent-signal/internal/mood"
)

// Event errors.
var (
	ErrUnknownEvent = errors.New("unknown event type")
	ErrMissingField = errors.New("missing event field")
)

// Event types.
const (
	EventToggleMood      = "toggleMood"
	EventSetContext      = "setContext"
	EventSetIntensity    = "setIntensity"
	EventSetAutoGenerate = "setAutoGenerate"
	EventGenerate        = "generate"
	EventClearGenerated  = "clearGenerated"
	EventShowToast       = "showToast"
	EventDismissToast    = "dismissToast"
)

// Event is a discrete user interaction, as sent by the live client.
type Event struct {
	Type      string `json:"type"`
	Mood      string `json:"mood,omitempty"`
	Context   string `json:"context,omitempty"`
	Intensity string `json:"intensity,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Apply runs the transition named by e. On error the state is returned
// unchanged.
func Apply(s State, e Event) (State, error) {
	switch e.Type {
	case EventToggleMood:
		if e.Mood == "" {
			return s, fmt.Errorf("%s: %w: mood", e.Type, ErrMissingField)
		}
		return s.ToggleMood(e.Mood), nil

	case EventSetContext:
		c, err := mood.ParseContext(e.Context)
		if err != nil {
			return s, fmt.Errorf("%s: %w", e.Type, err)
		}
		return s.SetContext(c), nil

	case EventSetIntensity:
		i, err := mood.ParseIntensity(e.Intensity)
		if err != nil {
			return s, fmt.Errorf("%s: %w", e.Type, err)
		}
		return s.SetIntensity(i), nil

	case EventSetAutoGenerate:
		if e.Enabled == nil {
			return s, fmt.Errorf("%s: %w: enabled", e.Type, ErrMissingField)
		}
		return s.SetAutoGenerate(*e.Enabled), nil

	case EventGenerate:
		return s.Generate(), nil

	case EventClearGenerated:
		return s.ClearGenerated(), nil

	case EventShowToast:
		return s.ShowToast(e.Message), nil

	case EventDismissToast:
		return s.DismissToast(), nil
	}

	return s, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
}

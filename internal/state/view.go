package state

import (
	"strings"

	"github.com/justestif/silent-signal/internal/mood"
)

// Card placeholders shown before a signal is generated.
const (
	EmptyTitle         = "Select moods"
	SummaryPlaceholder = "Click “Generate Signal” to create a short meaning + response guidance."
)

// View is everything needed to render the card for a state. It is derived
// from scratch on every call.
type View struct {
	Selected     []string       `json:"selected"`
	Context      mood.Context   `json:"context"`
	Intensity    mood.Intensity `json:"intensity"`
	AutoGenerate bool           `json:"autoGenerate"`
	Vector       mood.Vector    `json:"vector"`
	Palette      mood.Palette   `json:"palette"`
	Closest      string         `json:"closest"` // label of the nearest catalog mood
	Title        string         `json:"title"`
	Summary      string         `json:"summary"`
	Respond      string         `json:"respond"`
	Signal       *Signal        `json:"signal"`
	Toast        string         `json:"toast,omitempty"`
}

// View derives the card view for s.
func (s State) View() View {
	moods := s.SelectedMoods()
	v := mood.Mix(moods)

	view := View{
		Selected:     append([]string{}, s.Selected...),
		Context:      s.Context,
		Intensity:    s.Intensity,
		AutoGenerate: s.AutoGenerate,
		Vector:       v,
		Palette:      mood.Synthesize(v, s.Intensity),
		Closest:      mood.Nearest(v).Label,
		Title:        EmptyTitle,
		Summary:      SummaryPlaceholder,
		Respond:      mood.Placeholder,
		Signal:       s.Generated,
		Toast:        s.Toast,
	}

	if len(moods) > 0 {
		view.Title = strings.Join(mood.Labels(moods), " · ")
	}
	if s.Generated != nil {
		view.Summary = s.Generated.Summary
		view.Respond = s.Generated.Respond
	}

	return view
}

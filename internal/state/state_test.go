package state

import (
	"slices"
	"strings"
	"testing"

	"github.com/justestif/silent-signal/internal/mood"
)

// withSelection returns an auto-generating state holding ids.
func withSelection(ids ...string) State {
	s := State{
		Selected:     ids,
		Context:      mood.School,
		Intensity:    mood.Medium,
		AutoGenerate: true,
	}
	return s.Generate()
}

func TestDefault(t *testing.T) {
	s := Default()

	if !slices.Equal(s.Selected, []string{"anxious", "tired"}) {
		t.Errorf("Selected = %v, want [anxious tired]", s.Selected)
	}
	if s.Context != mood.School {
		t.Errorf("Context = %q, want School", s.Context)
	}
	if s.Intensity != mood.Medium {
		t.Errorf("Intensity = %q, want Medium", s.Intensity)
	}
	if !s.AutoGenerate {
		t.Error("AutoGenerate should default to true")
	}
	if s.Generated == nil {
		t.Fatal("Generated should be set in auto mode")
	}

	// Mutating the default state must not leak into the next one
	s.Selected[0] = "calm"
	if Default().Selected[0] != "anxious" {
		t.Error("Default() shares its selection slice")
	}
}

func TestToggleMood(t *testing.T) {
	tests := []struct {
		name   string
		start  []string
		toggle []string
		want   []string
	}{
		{
			name:   "add to empty",
			start:  nil,
			toggle: []string{"calm"},
			want:   []string{"calm"},
		},
		{
			name:   "toggle twice returns to empty",
			start:  nil,
			toggle: []string{"calm", "calm"},
			want:   []string{},
		},
		{
			name:   "remove keeps order of the rest",
			start:  []string{"lonely", "anxious", "calm"},
			toggle: []string{"anxious"},
			want:   []string{"lonely", "calm"},
		},
		{
			name:   "insertion order preserved",
			start:  nil,
			toggle: []string{"angry", "calm", "tired"},
			want:   []string{"angry", "calm", "tired"},
		},
		{
			name:   "fifth mood is dropped",
			start:  []string{"anxious", "tired", "calm", "lonely"},
			toggle: []string{"angry"},
			want:   []string{"anxious", "tired", "calm", "lonely"},
		},
		{
			name:   "removal at cap frees a slot",
			start:  []string{"anxious", "tired", "calm", "lonely"},
			toggle: []string{"tired", "angry"},
			want:   []string{"anxious", "calm", "lonely", "angry"},
		},
		{
			name:   "unknown id is a no-op",
			start:  []string{"calm"},
			toggle: []string{"bored"},
			want:   []string{"calm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := withSelection(tt.start...)
			for _, id := range tt.toggle {
				s = s.ToggleMood(id)
			}
			if !slices.Equal(s.Selected, tt.want) {
				t.Errorf("Selected = %v, want %v", s.Selected, tt.want)
			}
		})
	}
}

func TestToggleMoodDoesNotAlias(t *testing.T) {
	before := withSelection("anxious", "tired")
	after := before.ToggleMood("anxious").ToggleMood("calm")

	if !slices.Equal(before.Selected, []string{"anxious", "tired"}) {
		t.Errorf("original selection changed to %v", before.Selected)
	}
	if !slices.Equal(after.Selected, []string{"tired", "calm"}) {
		t.Errorf("new selection = %v, want [tired calm]", after.Selected)
	}
}

func TestSelectionCapKeepsSignal(t *testing.T) {
	s := withSelection("anxious", "tired", "calm", "lonely")
	next := s.ToggleMood("angry")

	if next.Generated != s.Generated {
		t.Error("a dropped toggle should not regenerate the signal")
	}
}

func TestSelectedMoodsUsesCatalogOrder(t *testing.T) {
	s := withSelection("angry", "anxious", "calm")

	got := mood.Labels(s.SelectedMoods())
	want := []string{"Anxious", "Calm", "Angry"}
	if !slices.Equal(got, want) {
		t.Errorf("SelectedMoods() labels = %v, want %v", got, want)
	}
	if !slices.Equal(s.Generated.Moods, want) {
		t.Errorf("Generated.Moods = %v, want %v", s.Generated.Moods, want)
	}
}

func TestAutoGenerate(t *testing.T) {
	s := Default()

	off := s.SetAutoGenerate(false)
	if off.Generated != nil {
		t.Fatal("turning auto-generate off should clear the signal")
	}

	manual := off.Generate()
	if manual.Generated == nil {
		t.Fatal("Generate() should produce a signal with auto-generate off")
	}

	changed := manual.SetContext(mood.Work)
	if changed.Generated != nil {
		t.Error("input change with auto-generate off should clear the signal")
	}

	unchanged := manual.SetContext(mood.School)
	if unchanged.Generated == nil {
		t.Error("setting the same context should keep the signal")
	}

	on := changed.SetAutoGenerate(true)
	if on.Generated == nil {
		t.Fatal("turning auto-generate on should regenerate")
	}
	if on.Generated.Context != mood.Work {
		t.Errorf("Generated.Context = %q, want Work", on.Generated.Context)
	}
}

func TestAutoGenerateFollowsInputs(t *testing.T) {
	s := Default().SetIntensity(mood.High).SetContext(mood.Personal).ToggleMood("tired")

	if s.Generated == nil {
		t.Fatal("Generated should be set in auto mode")
	}
	if !slices.Equal(s.Generated.Moods, []string{"Anxious"}) {
		t.Errorf("Generated.Moods = %v, want [Anxious]", s.Generated.Moods)
	}
	if !strings.HasSuffix(s.Generated.Respond, " Prioritize warmth and emotional safety.") {
		t.Errorf("Generated.Respond = %q, want Personal suffix", s.Generated.Respond)
	}
}

func TestClearGenerated(t *testing.T) {
	s := Default().ClearGenerated()
	if s.Generated != nil {
		t.Error("ClearGenerated() should remove the signal")
	}
	if !s.AutoGenerate {
		t.Error("ClearGenerated() should not change AutoGenerate")
	}
}

func TestToast(t *testing.T) {
	s := Default().ShowToast("Copied to clipboard ✅")
	if s.Toast != "Copied to clipboard ✅" {
		t.Errorf("Toast = %q", s.Toast)
	}
	if s = s.DismissToast(); s.Toast != "" {
		t.Errorf("Toast after dismiss = %q, want empty", s.Toast)
	}
}

func TestSignalID(t *testing.T) {
	a := Default().Generated.ID
	b := Default().Generated.ID
	if a != b {
		t.Errorf("signal id not deterministic: %s != %s", a, b)
	}

	c := Default().SetContext(mood.Work).Generated.ID
	if a == c {
		t.Error("different inputs should yield different signal ids")
	}
}

func TestEndToEnd(t *testing.T) {
	s := Default()
	v := s.View()

	if v.Summary != "This signal suggests mental overload and low energy." {
		t.Errorf("Summary = %q", v.Summary)
	}
	if !strings.HasPrefix(v.Respond, "Offer reassurance and reduce pressure.") {
		t.Errorf("Respond = %q, want reassurance prefix", v.Respond)
	}
	if !strings.HasSuffix(v.Respond, "Keep it simple and practical for academic pressure.") {
		t.Errorf("Respond = %q, want School suffix", v.Respond)
	}
	if v.Title != "Anxious · Tired" {
		t.Errorf("Title = %q, want %q", v.Title, "Anxious · Tired")
	}
	if v.Palette.C1.String() != "hsl(168 71% 30%)" {
		t.Errorf("Palette.C1 = %s", v.Palette.C1)
	}
	if v.Palette.BlurRadius != 26 {
		t.Errorf("Palette.BlurRadius = %d, want 26", v.Palette.BlurRadius)
	}
}

func TestViewPlaceholders(t *testing.T) {
	v := withSelection().SetAutoGenerate(false).View()

	if v.Title != EmptyTitle {
		t.Errorf("Title = %q, want %q", v.Title, EmptyTitle)
	}
	if v.Summary != SummaryPlaceholder {
		t.Errorf("Summary = %q, want placeholder", v.Summary)
	}
	if v.Respond != mood.Placeholder {
		t.Errorf("Respond = %q, want %q", v.Respond, mood.Placeholder)
	}
	if v.Signal != nil {
		t.Error("Signal should be nil")
	}
	if v.Vector != mood.Neutral {
		t.Errorf("Vector = %+v, want neutral", v.Vector)
	}
	if v.Closest != "Calm" {
		t.Errorf("Closest = %q, want Calm", v.Closest)
	}
}

func TestViewEmptyAutoSignal(t *testing.T) {
	v := withSelection().View()

	if v.Summary != "Select a few moods to generate a clearer signal." {
		t.Errorf("Summary = %q", v.Summary)
	}
	if v.Respond != "— Keep it simple and practical for academic pressure." {
		t.Errorf("Respond = %q", v.Respond)
	}
}

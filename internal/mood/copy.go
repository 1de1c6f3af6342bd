package mood

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownContext is returned when parsing an unrecognized context.
var ErrUnknownContext = errors.New("unknown context")

// Context is the social setting that biases the response text.
type Context string

// Recognized contexts.
const (
	School   Context = "School"
	Work     Context = "Work"
	Personal Context = "Personal"
)

// Contexts returns all contexts in display order.
func Contexts() []Context {
	return []Context{School, Work, Personal}
}

// ParseContext returns the context named by s (exact match).
func ParseContext(s string) (Context, error) {
	switch c := Context(s); c {
	case School, Work, Personal:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContext, s)
}

// Placeholder is the respond text used when no moods are selected.
const Placeholder = "—"

// Copy is the two-part message generated for a selection.
type Copy struct {
	Summary string `json:"summary"`
	Respond string `json:"respond"`
}

// rule is one entry of the prioritized copy table.
type rule struct {
	name    string
	match   func(picked map[string]bool) bool
	summary func(labels []string, ctx Context) string
	respond string
}

func fixed(s string) func([]string, Context) string {
	return func([]string, Context) string { return s }
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{
		name:    "overload",
		match:   func(p map[string]bool) bool { return p["anxious"] && p["tired"] },
		summary: fixed("This signal suggests mental overload and low energy."),
		respond: "Offer reassurance and reduce pressure. Ask one small question: “What’s one thing I can help with?”",
	},
	{
		name:    "focus",
		match:   func(p map[string]bool) bool { return p["calm"] && p["motivated"] },
		summary: fixed("This signal reflects steady focus and positive momentum."),
		respond: "Support with clear goals and celebrate small progress.",
	},
	{
		name:    "connection",
		match:   func(p map[string]bool) bool { return p["lonely"] },
		summary: fixed("This signal indicates a need for connection and gentle support."),
		respond: "Reach out warmly. Invite, don’t demand: “Want to talk or just hang out quietly?”",
	},
	{
		name:    "frustration",
		match:   func(p map[string]bool) bool { return p["angry"] },
		summary: fixed("This signal shows high intensity and possible frustration."),
		respond: "Give space first, then validate feelings. Avoid debating immediately; focus on understanding.",
	},
	{
		name:  "blend",
		match: func(p map[string]bool) bool { return len(p) > 0 },
		summary: func(labels []string, ctx Context) string {
			return fmt.Sprintf("This signal blends: %s in a %s context.", strings.Join(labels, ", "), ctx)
		},
		respond: "Respond with empathy. Use reflective listening and ask what kind of support they prefer (space, help, or reassurance).",
	},
	{
		name:    "empty",
		match:   func(map[string]bool) bool { return true },
		summary: fixed("Select a few moods to generate a clearer signal."),
		respond: Placeholder,
	},
}

// suffixes holds the sentence appended to every respond text, per context.
var suffixes = map[Context]string{
	School:   " Keep it simple and practical for academic pressure.",
	Work:     " Keep communication concise and respectful.",
	Personal: " Prioritize warmth and emotional safety.",
}

// Generate picks the first matching rule for the selected moods and appends
// the context suffix to its respond text. An unrecognized context gets no
// suffix.
func Generate(moods []Mood, ctx Context) Copy {
	r := matchRule(moods)
	return Copy{
		Summary: r.summary(Labels(moods), ctx),
		Respond: r.respond + suffixes[ctx],
	}
}

// matchRule returns the first rule matching the selection.
// The table ends with a catch-all, so a rule is always found.
func matchRule(moods []Mood) rule {
	picked := make(map[string]bool, len(moods))
	for _, m := range moods {
		picked[m.ID] = true
	}
	for _, r := range rules {
		if r.match(picked) {
			return r
		}
	}
	return rules[len(rules)-1]
}

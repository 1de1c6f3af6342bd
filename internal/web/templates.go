package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/justestif/silent-signal/internal/mood"
	"github.com/justestif/silent-signal/internal/state"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	partials  map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		partials:  make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderPartial renders a partial template (without base layout) with the given data.
func (t *Templates) RenderPartial(w io.Writer, partial string, data any) error {
	tmpl, ok := t.partials[partial]
	if !ok {
		return fmt.Errorf("partial %q not found", partial)
	}
	return tmpl.Execute(w, data)
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("no page templates found")
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := templateName(page)
		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		t.templates[name] = tmpl
	}

	// Partials are also standalone templates for live fragments.
	// Each partial file defines a template named after the file.
	for _, partial := range partials {
		name := templateName(partial)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, partial)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", name, err)
		}
		t.partials[name] = tmpl
	}

	return nil
}

// templateName strips the directory and .html extension.
func templateName(path string) string {
	name := filepath.Base(path)
	return name[:len(name)-len(filepath.Ext(name))]
}

// defaultFuncs returns the default template functions.
// Style helpers format palette numbers only.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// cardBackground layers the three palette glows over the dark base
		"cardBackground": func(p mood.Palette) template.CSS {
			return template.CSS(fmt.Sprintf( //nolint:gosec // built from formatted numbers
				"background: radial-gradient(1100px 600px at 0%% 0%%, %s, transparent 60%%), "+
					"radial-gradient(900px 500px at 100%% 0%%, %s, transparent 60%%), "+
					"radial-gradient(900px 600px at 50%% 120%%, %s, transparent 55%%), "+
					"linear-gradient(180deg, #0b0b0b, #0b0b0b);",
				p.C1, p.C2, p.C3))
		},

		// swirlStyle is the blurred conic layer
		"swirlStyle": func(p mood.Palette) template.CSS {
			return template.CSS(fmt.Sprintf( //nolint:gosec // built from formatted numbers
				"filter: blur(%dpx); background: conic-gradient(from 220deg, %s, %s, %s, %s);",
				p.BlurRadius, p.C2, p.C1, p.C3, p.C2))
		},

		// noiseStyle sets the grain overlay opacity
		"noiseStyle": func(p mood.Palette) template.CSS {
			return template.CSS(fmt.Sprintf("opacity: %g;", p.NoiseOpacity)) //nolint:gosec // number only
		},

		// hex formats a palette color as #rrggbb
		"hex": func(c mood.HSL) string {
			return c.Hex()
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	CurrentPath string
}

// Option is one selectable control (mood chip, context or intensity pill).
// Href links to the state a click on it leads to.
type Option struct {
	Value  string
	Label  string
	Active bool
	Href   string
}

// CardData contains data for the controls and card partials.
type CardData struct {
	View        state.View
	Moods       []Option
	Contexts    []Option
	Intensities []Option
	Query       string
	ShareURL    string
	CardHref    string // PNG download link
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	CardData
}

// newCardData builds the partial data for s.
func newCardData(s state.State, baseURL string) CardData {
	data := CardData{
		View:     s.View(),
		Query:    state.Query(s),
		ShareURL: state.ShareURL(baseURL, s),
		CardHref: "/card.png?" + state.Query(s),
	}

	// Deselecting the last mood yields a query without moods, which loads
	// as the default selection. Only the live channel can reach an empty
	// selection; the URL format keeps omitting empty moods.
	for _, m := range mood.Catalog() {
		data.Moods = append(data.Moods, Option{
			Value:  m.ID,
			Label:  m.Label,
			Active: s.IsSelected(m.ID),
			Href:   "?" + state.Query(s.ToggleMood(m.ID)),
		})
	}

	for _, c := range mood.Contexts() {
		data.Contexts = append(data.Contexts, Option{
			Value:  string(c),
			Label:  string(c),
			Active: s.Context == c,
			Href:   "?" + state.Query(s.SetContext(c)),
		})
	}

	for _, i := range mood.Intensities() {
		data.Intensities = append(data.Intensities, Option{
			Value:  string(i),
			Label:  string(i),
			Active: s.Intensity == i,
			Href:   "?" + state.Query(s.SetIntensity(i)),
		})
	}

	return data
}

package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/justestif/silent-signal/internal/card"
	"github.com/justestif/silent-signal/internal/state"
)

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	templates *Templates
	renderer  *card.Renderer
	baseURL   string
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(templates *Templates, renderer *card.Renderer, baseURL string, logger *slog.Logger) *Handlers {
	return &Handlers{
		templates: templates,
		renderer:  renderer,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Snapshot is the derived signal for one state, as served to clients.
type Snapshot struct {
	Type      string     `json:"type"`
	View      state.View `json:"view"`
	Query     string     `json:"query"`
	ShareURL  string     `json:"shareUrl"`
	Clipboard string     `json:"clipboard,omitempty"`
	Controls  string     `json:"controls,omitempty"` // rendered controls partial
	Card      string     `json:"card,omitempty"`     // rendered card partial
}

// newSnapshot derives the snapshot for s without rendered fragments.
func (h *Handlers) newSnapshot(s state.State) Snapshot {
	snap := Snapshot{
		Type:     "state",
		View:     s.View(),
		Query:    state.Query(s),
		ShareURL: state.ShareURL(h.baseURL, s),
	}
	if text, err := state.ClipboardText(s.Generated); err == nil {
		snap.Clipboard = text
	}
	return snap
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	s := state.FromQuery(r.URL.Query())

	data := HomePageData{
		PageData: PageData{
			Title:       "Silent Signal",
			CurrentPath: r.URL.Path,
		},
		CardData: newCardData(s, h.baseURL),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "home", data); err != nil {
		h.logger.Error("rendering home", "error", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// Signal returns the derived signal as JSON (GET /signal).
func (h *Handlers) Signal(w http.ResponseWriter, r *http.Request) {
	s := state.FromQuery(r.URL.Query())
	writeJSON(w, http.StatusOK, h.newSnapshot(s))
}

// SignalText returns the clipboard text block (GET /signal.txt).
func (h *Handlers) SignalText(w http.ResponseWriter, r *http.Request) {
	s := state.FromQuery(r.URL.Query())

	text, err := state.ClipboardText(s.Generated)
	if errors.Is(err, state.ErrNoSignal) {
		http.Error(w, "No signal generated", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, "Failed to format signal", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// CardPNG renders the card as a downloadable image (GET /card.png).
func (h *Handlers) CardPNG(w http.ResponseWriter, r *http.Request) {
	s := state.FromQuery(r.URL.Query())
	v := s.View()

	data, err := h.renderer.PNG(v.Palette, cardText(v))
	if err != nil {
		h.logger.Error("rendering card", "error", err, "query", state.Query(s))
		http.Error(w, "Failed to render card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", state.CardFilename))
	_, _ = w.Write(data)
}

// cardText picks the copy drawn on the exported card, as shown on the page.
func cardText(v state.View) card.Text {
	return card.Text{
		Title:     v.Title,
		Context:   string(v.Context),
		Intensity: string(v.Intensity),
		Closest:   v.Closest,
		Summary:   v.Summary,
		Respond:   v.Respond,
	}
}

// Healthz reports liveness (GET /healthz).
func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// renderFragments fills the rendered partials of snap for s.
func (h *Handlers) renderFragments(snap *Snapshot, s state.State) error {
	data := newCardData(s, h.baseURL)

	var buf bytes.Buffer
	if err := h.templates.RenderPartial(&buf, "controls", data); err != nil {
		return fmt.Errorf("rendering controls: %w", err)
	}
	snap.Controls = buf.String()

	buf.Reset()
	if err := h.templates.RenderPartial(&buf, "card", data); err != nil {
		return fmt.Errorf("rendering card: %w", err)
	}
	snap.Card = buf.String()

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

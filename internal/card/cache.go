package card

import (
	"fmt"
	"sync"

	"github.com/justestif/silent-signal/internal/mood"
)

// DefaultCacheSize is the number of encoded cards kept in memory.
const DefaultCacheSize = 64

// Renderer encodes card images and caches them by the exact palette, text and
// size. Those fully determine the pixels, so entries never go stale.
type Renderer struct {
	width, height int
	capacity      int

	mu    sync.Mutex
	items map[string][]byte
	order []string // insertion order, oldest first

	hits, misses int
}

// NewRenderer creates a Renderer for cards of the given size.
// A non-positive capacity disables caching.
func NewRenderer(width, height, capacity int) (*Renderer, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Renderer{
		width:    width,
		height:   height,
		capacity: capacity,
		items:    make(map[string][]byte),
	}, nil
}

// PNG returns the encoded card for p and t.
func (r *Renderer) PNG(p mood.Palette, t Text) ([]byte, error) {
	key := fmt.Sprintf("%dx%d|%s|%s", r.width, r.height, p.Key(), t.key())

	r.mu.Lock()
	if data, ok := r.items[key]; ok {
		r.hits++
		r.mu.Unlock()
		return data, nil
	}
	r.misses++
	r.mu.Unlock()

	data, err := EncodePNG(p, t, r.width, r.height)
	if err != nil {
		return nil, err
	}

	r.store(key, data)
	return data, nil
}

// Stats returns cache hit and miss counts.
func (r *Renderer) Stats() (hits, misses int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits, r.misses
}

// store adds an entry, evicting the oldest ones beyond capacity.
func (r *Renderer) store(key string, data []byte) {
	if r.capacity <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; ok {
		return
	}
	r.items[key] = data
	r.order = append(r.order, key)

	for len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.items, oldest)
	}
}

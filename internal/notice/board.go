// Package notice holds the dismissible banners shown on top of pages.
//
// Notices are per visitor and per page, live only in memory and disappear
// once dismissed.
package notice

import (
	"sync"

	"github.com/google/uuid"
	"github.com/leapstack-labs/lustre/internal/pages"
)

// Notice is a banner message with its colors.
type Notice struct {
	ID              string `json:"id"`
	Message         string `json:"message"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`
}

// Board keeps the notices of one visitor. It is safe for concurrent use.
type Board struct {
	mu     sync.Mutex
	byPage map[pages.PageID][]Notice
	seeded map[pages.PageID]bool
	seeds  func(pages.PageID) []Notice
}

// NewBoard creates a board whose pages start with the notices seeds returns.
// A nil seeds starts every page empty.
func NewBoard(seeds func(pages.PageID) []Notice) *Board {
	if seeds == nil {
		seeds = func(pages.PageID) []Notice { return nil }
	}
	return &Board{
		byPage: make(map[pages.PageID][]Notice),
		seeded: make(map[pages.PageID]bool),
		seeds:  seeds,
	}
}

// List returns the notices currently shown on a page.
func (b *Board) List(page pages.PageID) []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seed(page)
	return append([]Notice(nil), b.byPage[page]...)
}

// Push adds a notice to a page and returns it.
func (b *Board) Push(page pages.PageID, message, color, background string) Notice {
	n := Notice{
		ID:              uuid.NewString(),
		Message:         message,
		Color:           color,
		BackgroundColor: background,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.seed(page)
	b.byPage[page] = append(b.byPage[page], n)
	return n
}

// Dismiss removes a notice from a page. It reports whether the notice was shown.
func (b *Board) Dismiss(page pages.PageID, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seed(page)
	list := b.byPage[page]
	for i, n := range list {
		if n.ID == id {
			b.byPage[page] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// DismissAny removes a notice from whichever page shows it.
func (b *Board) DismissAny(id string) (pages.PageID, bool) {
	b.mu.Lock()
	page, found := pages.PageID(""), false
	for p, list := range b.byPage {
		for _, n := range list {
			if n.ID == id {
				page, found = p, true
			}
		}
	}
	b.mu.Unlock()

	if !found {
		return "", false
	}
	return page, b.Dismiss(page, id)
}

// seed fills a page with its default notices the first time it is touched.
// Callers hold b.mu.
func (b *Board) seed(page pages.PageID) {
	if b.seeded[page] {
		return
	}
	b.seeded[page] = true
	b.byPage[page] = append(b.byPage[page], b.seeds(page)...)
}

package ports

import "github.com/aalvaropc/slidey/internal/domain"

// DeckLoader loads slide decks from a source (e.g., filesystem).
type DeckLoader interface {
	LoadDeck(path string) (domain.Deck, error)
}

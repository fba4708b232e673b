package species

import (
	"context"
	"iter"
)

//go:generate mockgen -source=interface.go -destination=../mocks/species/mock_client.go -package=mock_species

// Client fetches species descriptions from an upstream provider.
type Client interface {
	FetchDescription(ctx context.Context, name string) (Description, error)
}

// Description holds the flavor text entries of a species, in upstream order.
// Entries may be empty.
type Description struct {
	Entries []FlavorTextEntry
}

// FlavorTextEntry is a single flavor text with its language code, e.g. "en".
type FlavorTextEntry struct {
	Text     string
	Language string
}

const LanguageEnglish = "en"

// EnglishEntries yields the entries whose language is exactly "en".
func (d Description) EnglishEntries() iter.Seq[FlavorTextEntry] {
	return func(yield func(FlavorTextEntry) bool) {
		for _, entry := range d.Entries {
			if entry.Language != LanguageEnglish {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// Package pokemon combines a species description and a translation into a
// Shakespearean Pokémon description.
package pokemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/at-ishikawa/pokespeare/internal/apierror"
	"github.com/at-ishikawa/pokespeare/internal/species"
	"github.com/at-ishikawa/pokespeare/internal/translation"
)

var (
	// ErrSpeciesLookup wraps every failure of the species client.
	ErrSpeciesLookup = errors.New("species lookup failed")
	// ErrNoEnglishEntries is reported, as an apierror.KindDecoding error, for species without English flavor texts.
	ErrNoEnglishEntries = errors.New("no english flavor text entries")
)

// Rand picks a random index in [0, n). Describe fails with an
// apierror.KindUnspecified error when the index is outside that range.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// Description is the payload returned to callers.
type Description struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Describer struct {
	speciesClient     species.Client
	translationClient translation.Client
	rand              Rand
}

// Option configures a Describer.
type Option func(*Describer)

// WithRand replaces the random source used to pick a flavor text.
func WithRand(r Rand) Option {
	return func(d *Describer) {
		d.rand = r
	}
}

func NewDescriber(speciesClient species.Client, translationClient translation.Client, opts ...Option) *Describer {
	d := &Describer{
		speciesClient:     speciesClient,
		translationClient: translationClient,
		rand:              globalRand{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Describe fetches the English flavor texts of name, picks one at random and
// translates it. Each call draws a new random choice.
func (d *Describer) Describe(ctx context.Context, name string) (Description, error) {
	description, err := d.speciesClient.FetchDescription(ctx, name)
	if err != nil {
		return Description{}, fmt.Errorf("%w: speciesClient.FetchDescription(%s) > %w", ErrSpeciesLookup, name, err)
	}

	entry, err := d.pickEntry(description)
	if err != nil {
		return Description{}, fmt.Errorf("pickEntry(%s) > %w", name, err)
	}

	translated, err := d.translationClient.Translate(ctx, entry.Text)
	if err != nil {
		return Description{}, fmt.Errorf("translationClient.Translate > %w", err)
	}

	return Description{
		Name:        name,
		Description: translated,
	}, nil
}

func (d *Describer) pickEntry(description species.Description) (species.FlavorTextEntry, error) {
	candidates := slices.Collect(description.EnglishEntries())
	if len(candidates) == 0 {
		return species.FlavorTextEntry{}, apierror.Decoding(ErrNoEnglishEntries)
	}

	index := d.rand.IntN(len(candidates))
	if index < 0 || index >= len(candidates) {
		return species.FlavorTextEntry{}, apierror.Unspecified(fmt.Errorf("rand returned index %d outside [0, %d)", index, len(candidates)))
	}
	slog.Default().Debug("picked a flavor text",
		"index", index,
		"candidates", len(candidates))
	return candidates[index], nil
}

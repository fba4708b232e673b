package pokemon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/pokespeare/internal/apierror"
	mock_species "github.com/at-ishikawa/pokespeare/internal/mocks/species"
	mock_translation "github.com/at-ishikawa/pokespeare/internal/mocks/translation"
	"github.com/at-ishikawa/pokespeare/internal/species"
)

type fixedRand struct {
	index int
	gotN  []int
}

func (r *fixedRand) IntN(n int) int {
	r.gotN = append(r.gotN, n)
	return r.index
}

func charizard() species.Description {
	return species.Description{Entries: []species.FlavorTextEntry{
		{Text: "Spits fire that is hot enough to melt boulders.", Language: "en"},
		{Text: "Crache un feu si chaud qu'il fait fondre les rochers.", Language: "fr"},
		{Text: "When expelling a blast of super hot fire, the red flame at the tip of its tail burns more intensely.", Language: "en"},
		{Text: "It is said that CHARIZARD's fire burns hotter if it has experienced harsh battles.", Language: "en"},
	}}
}

func TestDescriber_Describe(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		pokemon    string
		index      int
		setupMocks func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient)

		want          Description
		wantCandidate int
		wantErr       bool
		wantErrIs     error
		wantKind      apierror.Kind
	}{
		{
			name:    "translates the first english entry",
			pokemon: "charizard",
			index:   0,
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "charizard").Return(charizard(), nil)
				translationClient.EXPECT().
					Translate(ctx, "Spits fire that is hot enough to melt boulders.").
					Return("Spits fire yond is hot enow to melt boulders.", nil)
			},
			want: Description{
				Name:        "charizard",
				Description: "Spits fire yond is hot enow to melt boulders.",
			},
			wantCandidate: 3,
		},
		{
			name:    "skips non-english entries when indexing",
			pokemon: "charizard",
			index:   2,
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "charizard").Return(charizard(), nil)
				translationClient.EXPECT().
					Translate(ctx, "It is said that CHARIZARD's fire burns hotter if it has experienced harsh battles.").
					Return("'t is did doth sayeth yond charizard's fire burneth hotter.", nil)
			},
			want: Description{
				Name:        "charizard",
				Description: "'t is did doth sayeth yond charizard's fire burneth hotter.",
			},
			wantCandidate: 3,
		},
		{
			name:    "species lookup failure does not call the translator",
			pokemon: "agumon",
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "agumon").Return(species.Description{}, apierror.Network(404, errors.New("not found")))
			},
			wantErr:   true,
			wantErrIs: ErrSpeciesLookup,
			wantKind:  apierror.KindNetwork,
		},
		{
			name:    "no english entries",
			pokemon: "pikachu",
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "pikachu").Return(species.Description{Entries: []species.FlavorTextEntry{
					{Text: "ほっぺたの　りょうがわに", Language: "ja"},
				}}, nil)
			},
			wantErr:   true,
			wantErrIs: ErrNoEnglishEntries,
			wantKind:  apierror.KindDecoding,
		},
		{
			name:    "empty description",
			pokemon: "missingno",
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "missingno").Return(species.Description{}, nil)
			},
			wantErr:   true,
			wantErrIs: ErrNoEnglishEntries,
			wantKind:  apierror.KindDecoding,
		},
		{
			name:    "rate limited translation",
			pokemon: "charizard",
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "charizard").Return(charizard(), nil)
				translationClient.EXPECT().
					Translate(ctx, gomock.Any()).
					Return("", apierror.RateLimit(429, errors.New("too many requests")))
			},
			wantErr:       true,
			wantKind:      apierror.KindRateLimit,
			wantCandidate: 3,
		},
		{
			name:    "index past the last candidate",
			pokemon: "charizard",
			index:   3,
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "charizard").Return(charizard(), nil)
			},
			wantErr:       true,
			wantKind:      apierror.KindUnspecified,
			wantCandidate: 3,
		},
		{
			name:    "negative index",
			pokemon: "charizard",
			index:   -1,
			setupMocks: func(speciesClient *mock_species.MockClient, translationClient *mock_translation.MockClient) {
				speciesClient.EXPECT().FetchDescription(ctx, "charizard").Return(charizard(), nil)
			},
			wantErr:       true,
			wantKind:      apierror.KindUnspecified,
			wantCandidate: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			speciesClient := mock_species.NewMockClient(ctrl)
			translationClient := mock_translation.NewMockClient(ctrl)
			tt.setupMocks(speciesClient, translationClient)

			r := &fixedRand{index: tt.index}
			describer := NewDescriber(speciesClient, translationClient, WithRand(r))

			got, err := describer.Describe(ctx, tt.pokemon)
			if tt.wantCandidate > 0 {
				assert.Equal(t, []int{tt.wantCandidate}, r.gotN)
			} else {
				assert.Empty(t, r.gotN)
			}

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				var apiErr *apierror.Error
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantKind, apiErr.Kind)
				if !errors.Is(tt.wantErrIs, ErrSpeciesLookup) {
					assert.NotErrorIs(t, err, ErrSpeciesLookup)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescriber_Describe_DefaultRandPicksEnglishEntry(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	speciesClient := mock_species.NewMockClient(ctrl)
	translationClient := mock_translation.NewMockClient(ctrl)

	english := map[string]bool{}
	for entry := range charizard().EnglishEntries() {
		english[entry.Text] = true
	}

	const calls = 50
	speciesClient.EXPECT().FetchDescription(ctx, "charizard").Return(charizard(), nil).Times(calls)
	translationClient.EXPECT().
		Translate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, text string) (string, error) {
			assert.True(t, english[text], "translated a non-english entry: %q", text)
			return "translated: " + text, nil
		}).
		Times(calls)

	describer := NewDescriber(speciesClient, translationClient)
	for range calls {
		got, err := describer.Describe(ctx, "charizard")
		require.NoError(t, err)
		assert.Equal(t, "charizard", got.Name)
	}
}

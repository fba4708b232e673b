// Package pokeapi implements species.Client against PokéAPI (https://pokeapi.co).
//
// Only the part of the pokemon-species resource needed for flavor texts is decoded.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/pokespeare/internal/apierror"
	"github.com/at-ishikawa/pokespeare/internal/species"
)

const speciesPath = "api/v2/pokemon-species"

type Client struct {
	httpClient *resty.Client
	baseURL    string
}

var _ species.Client = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient: client,
		baseURL:    baseURL,
	}
}

// BaseURL returns the PokéAPI base URL the client sends requests to.
func (client *Client) BaseURL() string {
	return client.baseURL
}

type SpeciesResponse struct {
	FlavorTextEntries *[]FlavorTextEntry `json:"flavor_text_entries"`
}

type FlavorTextEntry struct {
	FlavorText string   `json:"flavor_text"`
	Language   Language `json:"language"`
}

type Language struct {
	Name string `json:"name"`
}

var errMissingFlavorTextEntries = errors.New("missing flavor_text_entries")

// validateName rejects names that would not stay a single segment under speciesPath.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return fmt.Errorf("invalid species name %q", name)
	}
	return nil
}

// FetchDescription calls the pokemon-species endpoint for name.
func (client *Client) FetchDescription(ctx context.Context, name string) (species.Description, error) {
	if err := validateName(name); err != nil {
		return species.Description{}, apierror.URL(err)
	}
	// JoinPath takes escaped elements
	endpoint, err := url.JoinPath(client.baseURL, speciesPath, url.PathEscape(name))
	if err != nil {
		return species.Description{}, apierror.URL(fmt.Errorf("url.JoinPath(%s) > %w", client.baseURL, err))
	}

	res, err := client.httpClient.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return species.Description{}, apierror.Network(0, fmt.Errorf("httpClient.Get > %w", err))
	}
	if !res.IsSuccess() {
		slog.Default().Debug("pokeapi returned an error response",
			"endpoint", endpoint,
			"status", res.StatusCode())
		return species.Description{}, apierror.Network(res.StatusCode(), fmt.Errorf("response error %d: %s", res.StatusCode(), res.String()))
	}

	var decoded SpeciesResponse
	if err := json.Unmarshal(res.Body(), &decoded); err != nil {
		return species.Description{}, apierror.Decoding(fmt.Errorf("json.Unmarshal > %w", err))
	}
	if decoded.FlavorTextEntries == nil {
		return species.Description{}, apierror.Decoding(errMissingFlavorTextEntries)
	}
	return decoded.toDescription(), nil
}

func (response SpeciesResponse) toDescription() species.Description {
	entries := make([]species.FlavorTextEntry, 0, len(*response.FlavorTextEntries))
	for _, entry := range *response.FlavorTextEntries {
		entries = append(entries, species.FlavorTextEntry{
			Text:     entry.FlavorText,
			Language: entry.Language.Name,
		})
	}
	return species.Description{Entries: entries}
}

// Package testutil provides shared test helpers for config files and fake upstream APIs.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// UpstreamConfig points a test config at fake upstream APIs.
type UpstreamConfig struct {
	PokeAPIBaseURL         string
	FunTranslationsBaseURL string
	Port                   int
}

// SetupTestConfig writes a config file for the given upstreams into tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, upstreams UpstreamConfig) string {
	t.Helper()

	content := map[string]any{
		"server": map[string]any{
			"host":             "127.0.0.1",
			"port":             upstreams.Port,
			"shutdown_timeout": "1s",
		},
		"pokeapi": map[string]any{
			"base_url": upstreams.PokeAPIBaseURL,
		},
		"funtranslations": map[string]any{
			"base_url": upstreams.FunTranslationsBaseURL,
		},
		"http_client": map[string]any{
			"timeout": "5s",
		},
	}
	out, err := yaml.Marshal(content)
	require.NoError(t, err)

	configFile := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configFile, out, 0644))
	return configFile
}

// FakeUpstreams serves a fixed species description and echoes translations.
type FakeUpstreams struct {
	PokeAPI         *httptest.Server
	FunTranslations *httptest.Server
}

// NewFakeUpstreams starts fake PokéAPI and Fun Translations servers.
// Species lookups return text as the only English entry; translations answer
// translationStatus, and on 200 return translated.
func NewFakeUpstreams(t *testing.T, text string, translationStatus int, translated string) *FakeUpstreams {
	t.Helper()

	pokeAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"flavor_text_entries": []map[string]any{
				{"flavor_text": text, "language": map[string]string{"name": "en"}},
				{"flavor_text": "Texte français", "language": map[string]string{"name": "fr"}},
			},
		})
	}))
	t.Cleanup(pokeAPI.Close)

	funTranslations := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if translationStatus != http.StatusOK {
			w.WriteHeader(translationStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"contents": map[string]string{"translated": translated, "text": text},
		})
	}))
	t.Cleanup(funTranslations.Close)

	return &FakeUpstreams{
		PokeAPI:         pokeAPI,
		FunTranslations: funTranslations,
	}
}

// Config returns an UpstreamConfig pointing at the fake servers.
func (f *FakeUpstreams) Config(port int) UpstreamConfig {
	return UpstreamConfig{
		PokeAPIBaseURL:         f.PokeAPI.URL,
		FunTranslationsBaseURL: f.FunTranslations.URL,
		Port:                   port,
	}
}

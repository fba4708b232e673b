// Package server provides the HTTP handlers of the pokespeare service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/pokespeare/internal/apierror"
	"github.com/at-ishikawa/pokespeare/internal/pokemon"
)

// RateLimitMessage is the JSON string body of 429 responses.
const RateLimitMessage = "Too many requests, try again later."

// Describer produces the description of a Pokémon.
type Describer interface {
	Describe(ctx context.Context, name string) (pokemon.Description, error)
}

// PokemonHandler serves GET /pokemon/{name}.
//
// Fun Translations allows only 5 requests per hour and 60 per day on the free
// tier. When the quota is exhausted the 429 is forwarded to the caller; every
// other failure becomes an empty 500.
type PokemonHandler struct {
	describer Describer
	logger    *slog.Logger
}

func NewPokemonHandler(describer Describer, logger *slog.Logger) *PokemonHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PokemonHandler{
		describer: describer,
		logger:    logger,
	}
}

func (h *PokemonHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	description, err := h.describer.Describe(r.Context(), name)
	if err != nil {
		h.writeError(w, name, err)
		return
	}

	writeJSON(w, http.StatusOK, description, h.logger)
}

func (h *PokemonHandler) writeError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, pokemon.ErrSpeciesLookup):
		h.logger.Error("failed to look up the pokemon species",
			"pokemon", name,
			"kind", apierror.KindOf(err).String(),
			"error", err)
		w.WriteHeader(http.StatusInternalServerError)
	case apierror.IsRateLimited(err):
		h.logger.Error("translation is rate limited",
			"pokemon", name,
			"error", err)
		writeJSON(w, http.StatusTooManyRequests, RateLimitMessage, h.logger)
	default:
		h.logger.Error("failed to describe the pokemon",
			"pokemon", name,
			"kind", apierror.KindOf(err).String(),
			"error", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	content, err := json.Marshal(body)
	if err != nil {
		logger.Error("failed to encode the response body", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(content); err != nil {
		logger.Warn("failed to write the response body", "error", err)
	}
}

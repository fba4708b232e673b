package translation

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/translation/mock_client.go -package=mock_translation

// Client rewrites text into another register.
// Implementations report upstream quota exhaustion as an apierror.KindRateLimit error.
type Client interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Package funtranslations implements translation.Client with the Shakespeare
// translator of Fun Translations (https://funtranslations.com).
//
// The free tier allows only a few requests per hour. A 429 response is reported
// as an apierror.KindRateLimit error and never retried.
package funtranslations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"resty.dev/v3"

	"github.com/at-ishikawa/pokespeare/internal/apierror"
	"github.com/at-ishikawa/pokespeare/internal/translation"
)

const shakespearePath = "translate/shakespeare.json"

type Client struct {
	httpClient *resty.Client
	baseURL    string
}

var _ translation.Client = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{
		httpClient: client,
		baseURL:    baseURL,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// BaseURL returns the Fun Translations base URL the client sends requests to.
func (client *Client) BaseURL() string {
	return client.baseURL
}

type TranslationRequest struct {
	Text string `json:"text"`
}

type TranslationResponse struct {
	Contents *TranslationContents `json:"contents"`
}

type TranslationContents struct {
	Translated *string `json:"translated"`
}

var errMissingTranslation = errors.New("missing contents.translated")

// Translate converts text to Shakespearean English.
func (client *Client) Translate(ctx context.Context, text string) (string, error) {
	endpoint, err := url.JoinPath(client.baseURL, shakespearePath)
	if err != nil {
		return "", apierror.URL(fmt.Errorf("url.JoinPath(%s) > %w", client.baseURL, err))
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(TranslationRequest{Text: text}).
		Post(endpoint)
	if err != nil {
		return "", apierror.Network(0, fmt.Errorf("httpClient.Post > %w", err))
	}

	statusCode := response.StatusCode()
	if statusCode < 200 || statusCode > 299 {
		slog.Default().Debug("funtranslations returned an error response",
			"endpoint", endpoint,
			"status", statusCode)
		responseErr := fmt.Errorf("response error %d: %s", statusCode, response.String())
		if statusCode == http.StatusTooManyRequests {
			return "", apierror.RateLimit(statusCode, responseErr)
		}
		return "", apierror.Network(statusCode, responseErr)
	}

	var decoded TranslationResponse
	if err := json.Unmarshal([]byte(response.String()), &decoded); err != nil {
		return "", apierror.Decoding(fmt.Errorf("json.Unmarshal > %w", err))
	}
	if decoded.Contents == nil || decoded.Contents.Translated == nil {
		return "", apierror.Decoding(errMissingTranslation)
	}
	return *decoded.Contents.Translated, nil
}

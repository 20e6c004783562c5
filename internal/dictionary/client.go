package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/stealthwork/kanjistudy/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/dictionary/mock_searcher.go -package=mock_dictionary Searcher

// Searcher is the lookup contract consumed by the server and the CLI.
type Searcher interface {
	// SearchRaw returns the upstream JSON body unchanged.
	SearchRaw(ctx context.Context, query string) ([]byte, error)
	// Search returns the decoded results.
	Search(ctx context.Context, query string) (*Response, error)
}

// ErrEmptyQuery is returned before any network call when the query is empty
// or whitespace only.
var ErrEmptyQuery = errors.New("search query must not be empty")

// LookupError reports a non-2xx upstream response, preserving the status
// for diagnostics.
type LookupError struct {
	StatusCode int
	Body       string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("dictionary lookup failed with status %d", e.StatusCode)
}

// Client queries the Jisho words API.
type Client struct {
	config  config.DictionaryConfig
	baseURL string
	client  *resty.Client
}

// NewClient creates a Client for the configured dictionary host.
func NewClient(cfg config.DictionaryConfig) *Client {
	return &Client{
		config:  cfg,
		baseURL: fmt.Sprintf("https://%s", cfg.Host),
		client:  resty.New(),
	}
}

// SearchRaw forwards the query upstream and returns the raw JSON body.
func (c *Client) SearchRaw(ctx context.Context, query string) ([]byte, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.config.UserAgent).
		SetQueryParam("keyword", query).
		Get(fmt.Sprintf("%s/api/v1/search/words", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &LookupError{
			StatusCode: res.StatusCode(),
			Body:       string(res.Body()),
		}
	}
	return res.Body(), nil
}

// Search forwards the query upstream and decodes the result list.
func (c *Client) Search(ctx context.Context, query string) (*Response, error) {
	body, err := c.SearchRaw(ctx, query)
	if err != nil {
		return nil, err
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &response, nil
}

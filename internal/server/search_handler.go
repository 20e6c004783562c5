package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stealthwork/kanjistudy/internal/dictionary"
)

// SearchHandler proxies dictionary lookups to the upstream words API.
type SearchHandler struct {
	searcher dictionary.Searcher
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searcher dictionary.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search handles GET /api/search. The upstream JSON body passes through
// unchanged on success.
func (h *SearchHandler) Search(c echo.Context) error {
	query, ok, err := requireQueryParam(c, "q")
	if !ok {
		return err
	}

	body, err := h.searcher.SearchRaw(c.Request().Context(), query)
	if errors.Is(err, dictionary.ErrEmptyQuery) {
		return errorResponse(c, http.StatusBadRequest, "q is required")
	}
	var lookupErr *dictionary.LookupError
	if errors.As(err, &lookupErr) {
		return errorResponse(c, http.StatusInternalServerError,
			"dictionary lookup failed: "+http.StatusText(lookupErr.StatusCode))
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "dictionary lookup failed")
	}

	return c.JSONBlob(http.StatusOK, body)
}

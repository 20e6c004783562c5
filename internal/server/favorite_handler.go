package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stealthwork/kanjistudy/internal/store"
)

// FavoriteHandler serves the favorites endpoints.
type FavoriteHandler struct {
	favorites store.FavoriteRepository
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favorites store.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

type toggleFavoriteRequest struct {
	UserID string       `json:"userId" validate:"required"`
	Kanji  kanjiPayload `json:"kanji" validate:"required"`
}

// Toggle handles POST /api/favorites. The same request adds the kanji when
// absent and removes it when present.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	var req toggleFavoriteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	favorited, favorite, err := h.favorites.ToggleFavorite(c.Request().Context(), req.UserID, req.Kanji.member())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to toggle favorite")
	}

	if !favorited {
		return c.JSON(http.StatusOK, map[string]any{
			"message":     "Kanji removed from favorites",
			"isFavorited": false,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":     "Kanji added to favorites",
		"isFavorited": true,
		"favorite":    favorite,
	})
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok, err := requireQueryParam(c, "userId")
	if !ok {
		return err
	}

	favorites, err := h.favorites.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to list favorites")
	}
	if favorites == nil {
		favorites = []store.Favorite{}
	}

	return c.JSON(http.StatusOK, map[string]any{"favorites": favorites})
}

// Remove handles DELETE /api/favorites. Unlike Toggle it fails when the
// kanji is not favorited.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok, err := requireQueryParam(c, "userId")
	if !ok {
		return err
	}
	character, ok, err := requireQueryParam(c, "kanji")
	if !ok {
		return err
	}

	err = h.favorites.RemoveFavorite(c.Request().Context(), userID, character)
	if errors.Is(err, store.ErrFavoriteNotFound) {
		return errorResponse(c, http.StatusNotFound, "favorite not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to remove favorite")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Kanji removed from favorites"})
}

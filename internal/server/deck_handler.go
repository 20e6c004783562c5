package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stealthwork/kanjistudy/internal/kanji"
	"github.com/stealthwork/kanjistudy/internal/store"
)

// DeckHandler serves deck CRUD and deck membership endpoints.
type DeckHandler struct {
	decks store.DeckRepository
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(decks store.DeckRepository) *DeckHandler {
	return &DeckHandler{decks: decks}
}

// kanjiPayload is the wire shape of a kanji being added to a collection.
// Older clients send a single "meaning" instead of the "meanings" list.
type kanjiPayload struct {
	Kanji    string   `json:"kanji" validate:"required"`
	Reading  string   `json:"reading"`
	Meanings []string `json:"meanings"`
	Meaning  string   `json:"meaning"`
	Slug     string   `json:"slug"`
}

// member normalizes the payload into the storage input shape.
func (p kanjiPayload) member() store.Member {
	meanings := p.Meanings
	if len(meanings) == 0 && p.Meaning != "" {
		meanings = []string{p.Meaning}
	}
	slug := p.Slug
	if slug == "" {
		slug = kanji.Slug(p.Kanji)
	}
	return store.Member{
		Character: p.Kanji,
		Reading:   p.Reading,
		Meanings:  meanings,
		Slug:      slug,
	}
}

type createDeckRequest struct {
	UserID    string     `json:"userId" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	CreatedAt *time.Time `json:"createdAt"`
}

// CreateDeck handles POST /api/decks.
func (h *DeckHandler) CreateDeck(c echo.Context) error {
	var req createDeckRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	createdAt := time.Time{}
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}
	deck, err := h.decks.CreateDeck(c.Request().Context(), req.UserID, req.Name, createdAt)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to create deck")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Deck created",
		"deck":    deck,
	})
}

// ListDecks handles GET /api/decks.
func (h *DeckHandler) ListDecks(c echo.Context) error {
	userID, ok, err := requireQueryParam(c, "userId")
	if !ok {
		return err
	}

	decks, err := h.decks.ListDecks(c.Request().Context(), userID)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to list decks")
	}
	if decks == nil {
		decks = []store.Deck{}
	}

	return c.JSON(http.StatusOK, map[string]any{"decks": decks})
}

type renameDeckRequest struct {
	UserID string `json:"userId" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

// RenameDeck handles PUT /api/decks/:deckId.
func (h *DeckHandler) RenameDeck(c echo.Context) error {
	var req renameDeckRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	deck, err := h.decks.RenameDeck(c.Request().Context(), req.UserID, c.Param("deckId"), req.Name)
	if errors.Is(err, store.ErrDeckNotFound) {
		return errorResponse(c, http.StatusNotFound, "deck not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to rename deck")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Deck renamed",
		"deck":    deck,
	})
}

// DeleteDeck handles DELETE /api/decks/:deckId.
func (h *DeckHandler) DeleteDeck(c echo.Context) error {
	userID, ok, err := requireQueryParam(c, "userId")
	if !ok {
		return err
	}

	err = h.decks.DeleteDeck(c.Request().Context(), userID, c.Param("deckId"))
	if errors.Is(err, store.ErrDeckNotFound) {
		return errorResponse(c, http.StatusNotFound, "deck not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to delete deck")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Deck deleted"})
}

type addKanjiRequest struct {
	UserID string       `json:"userId" validate:"required"`
	Kanji  kanjiPayload `json:"kanji" validate:"required"`
}

// AddKanji handles POST /api/decks/:deckId/kanji. Adding a kanji that is
// already in the deck reports exists instead of failing.
func (h *DeckHandler) AddKanji(c echo.Context) error {
	var req addKanjiRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	member, added, err := h.decks.AddKanjiToDeck(c.Request().Context(), req.UserID, c.Param("deckId"), req.Kanji.member())
	if errors.Is(err, store.ErrDeckNotFound) {
		return errorResponse(c, http.StatusNotFound, "deck not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to add kanji to deck")
	}

	if !added {
		return c.JSON(http.StatusOK, map[string]any{
			"message": fmt.Sprintf("Kanji %s is already in the deck", member.Character),
			"exists":  true,
		})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Kanji added to deck",
		"kanji":   member,
	})
}

// ListKanji handles GET /api/decks/:deckId/kanji.
func (h *DeckHandler) ListKanji(c echo.Context) error {
	userID, ok, err := requireQueryParam(c, "userId")
	if !ok {
		return err
	}

	members, err := h.decks.ListDeckKanji(c.Request().Context(), userID, c.Param("deckId"))
	if errors.Is(err, store.ErrDeckNotFound) {
		return errorResponse(c, http.StatusNotFound, "deck not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to list deck kanji")
	}
	if members == nil {
		members = []store.DeckKanji{}
	}

	return c.JSON(http.StatusOK, map[string]any{"kanji": members})
}

// RemoveKanji handles DELETE /api/decks/:deckId/kanji. Removing a slug that
// is not in the deck succeeds without changing anything.
func (h *DeckHandler) RemoveKanji(c echo.Context) error {
	userID, ok, err := requireQueryParam(c, "userId")
	if !ok {
		return err
	}
	slug, ok, err := requireQueryParam(c, "slug")
	if !ok {
		return err
	}

	err = h.decks.RemoveKanjiFromDeck(c.Request().Context(), userID, c.Param("deckId"), slug)
	if errors.Is(err, store.ErrDeckNotFound) {
		return errorResponse(c, http.StatusNotFound, "deck not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to remove kanji from deck")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Kanji removed from deck"})
}

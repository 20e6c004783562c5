// Package server exposes the study API over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/stealthwork/kanjistudy/internal/config"
	"github.com/stealthwork/kanjistudy/internal/dictionary"
	"github.com/stealthwork/kanjistudy/internal/identity"
	"github.com/stealthwork/kanjistudy/internal/store"
)

// Server wires the API handlers onto an echo instance.
type Server struct {
	echo *echo.Echo
	cfg  config.ServerConfig
}

// New builds the HTTP server and registers every route under /api.
func New(
	cfg config.ServerConfig,
	decks store.DeckRepository,
	favorites store.FavoriteRepository,
	searcher dictionary.Searcher,
	auth *identity.Service,
) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validator, err := newRequestValidator()
	if err != nil {
		return nil, fmt.Errorf("newRequestValidator > %w", err)
	}
	e.Validator = validator

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)
			return nil
		},
	}))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CORS.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		}))
	}

	api := e.Group("/api")

	deckHandler := NewDeckHandler(decks)
	api.POST("/decks", deckHandler.CreateDeck)
	api.GET("/decks", deckHandler.ListDecks)
	api.PUT("/decks/:deckId", deckHandler.RenameDeck)
	api.DELETE("/decks/:deckId", deckHandler.DeleteDeck)
	api.POST("/decks/:deckId/kanji", deckHandler.AddKanji)
	api.GET("/decks/:deckId/kanji", deckHandler.ListKanji)
	api.DELETE("/decks/:deckId/kanji", deckHandler.RemoveKanji)

	favoriteHandler := NewFavoriteHandler(favorites)
	api.POST("/favorites", favoriteHandler.Toggle)
	api.GET("/favorites", favoriteHandler.List)
	api.DELETE("/favorites", favoriteHandler.Remove)

	searchHandler := NewSearchHandler(searcher)
	api.GET("/search", searchHandler.Search)

	if auth != nil {
		authHandler := NewAuthHandler(auth)
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/signin", authHandler.SignIn)
		api.GET("/auth/me", authHandler.Me)
	}

	return &Server{echo: e, cfg: cfg}, nil
}

// Start listens on the configured port until Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	slog.Info("starting HTTP server", slog.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("echo.Start(%s) > %w", addr, err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying http.Handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

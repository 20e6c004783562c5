package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stealthwork/kanjistudy/internal/identity"
	"github.com/stealthwork/kanjistudy/internal/store"
)

// AuthHandler serves account creation and token issuance.
type AuthHandler struct {
	auth *identity.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *identity.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName"`
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, token, err := h.auth.SignUp(c.Request().Context(), req.Email, req.Password, req.DisplayName)
	if errors.Is(err, store.ErrEmailTaken) {
		return errorResponse(c, http.StatusConflict, "email is already registered")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to sign up")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"token": token,
		"user":  user,
	})
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, token, err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		return errorResponse(c, http.StatusUnauthorized, "invalid email or password")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to sign in")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

// Me handles GET /api/auth/me for a Bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return errorResponse(c, http.StatusUnauthorized, "missing bearer token")
	}

	user, err := h.auth.Verify(c.Request().Context(), token)
	if errors.Is(err, identity.ErrInvalidToken) {
		return errorResponse(c, http.StatusUnauthorized, "invalid or expired token")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "failed to verify token")
	}

	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse renders the uniform {"error": ...} body every endpoint uses.
func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// bindAndValidate decodes the request body and runs the registered
// validator, rendering a 400 itself when either fails.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, errorResponse(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return false, errorResponse(c, httpErr.Code, fmt.Sprint(httpErr.Message))
		}
		return false, errorResponse(c, http.StatusBadRequest, err.Error())
	}
	return true, nil
}

// requireQueryParam renders a 400 when the parameter is absent.
func requireQueryParam(c echo.Context, name string) (string, bool, error) {
	value := c.QueryParam(name)
	if value == "" {
		return "", false, errorResponse(c, http.StatusBadRequest, fmt.Sprintf("%s is required", name))
	}
	return value, true, nil
}

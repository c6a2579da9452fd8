package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both claims must be
// present, which proves the middleware ran on this route.
func ctxClaims(c echo.Context) (userID int64, username string, err error) {
	userID, ok := c.Get("user_id").(int64)
	username, uok := c.Get("username").(string)
	if !ok || !uok {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, username, nil
}

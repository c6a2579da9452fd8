package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/daybook/events-api/internal/api/metrics"
)

// TokenDenylist reports whether a token has been revoked.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth validates the bearer token and injects the identity claims into the
// echo context under "user_id", "username", and "token".
//
// Status codes follow the API contract: a missing or malformed Authorization
// header is 401, a token that fails verification (or has been revoked) is 403.
func Auth(jwtSecret string, denylist TokenDenylist, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectedTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			raw := parts[1]

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthRejectedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			// JSON numbers decode as float64 in MapClaims.
			idf, ok := claims["id"].(float64)
			username, uok := claims["username"].(string)
			if !ok || !uok {
				metrics.AuthRejectedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), raw)
			if err != nil {
				// Revocation store unreachable: log and continue with the
				// signature-verified claims rather than failing every request.
				log.Warn().Err(err).Msg("revocation check failed, accepting token")
			} else if revoked {
				metrics.AuthRejectedTotal.WithLabelValues("revoked_token").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "token revoked")
			}

			c.Set("user_id", int64(idf))
			c.Set("username", username)
			c.Set("token", raw)

			return next(c)
		}
	}
}

package serverutils

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"cinimagic-be/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JwtMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.SendString(SessionID(ctx))
	})
	return app
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"session_id": "sid-42",
		"username":   "alice",
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// A token signed the way login signs it must verify with JWT_SECRET unset:
// both sides read the same fallback.
func TestJwtMiddlewareAcceptsLoginTokenWithoutEnvSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, config.JWTSecret()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "sid-42", string(body))
}

func TestJwtMiddlewareUsesConfiguredSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "spin-the-reel")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "spin-the-reel"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJwtMiddlewareRejectsBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	app := protectedApp()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"wrong signing key", "Bearer " + signToken(t, "some-other-secret")},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

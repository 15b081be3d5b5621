package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flameo-chatbot/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdminApp(manager *auth.JWTManager) *fiber.App {
	app := fiber.New()
	app.Delete("/api/history", AdminMiddleware(manager, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func deleteHistory(t *testing.T, app *fiber.App, authorization string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/api/history", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAdminMiddleware_OpenWithoutManager(t *testing.T) {
	app := newAdminApp(nil)
	assert.Equal(t, http.StatusNoContent, deleteHistory(t, app, ""))
}

func TestAdminMiddleware_Guarded(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Hour)
	app := newAdminApp(manager)

	token, err := manager.GenerateToken("ops")
	require.NoError(t, err)
	otherToken, err := auth.NewJWTManager("other", time.Hour).GenerateToken("ops")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		want          int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + otherToken, http.StatusUnauthorized},
		{"valid bearer", "Bearer " + token, http.StatusNoContent},
		{"valid without prefix", token, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deleteHistory(t, app, tt.authorization))
		})
	}
}

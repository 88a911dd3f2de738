package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"car-rental-booking/constants"
	"car-rental-booking/middleware"
	"car-rental-booking/models/user"
	"car-rental-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/dashboard", middleware.RequireSession(), func(c *fiber.Ctx) error {
		username, _ := middleware.SessionUsername(c)
		return c.SendString(username)
	})
	return app
}

func TestRequireSessionRedirectsWithoutCookie(t *testing.T) {
	t.Setenv("APP_SECRET", "unit-test-secret")
	app := protectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireSessionRedirectsOnGarbageToken(t *testing.T) {
	t.Setenv("APP_SECRET", "unit-test-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Cookie", constants.AccessCookieName+"=not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireSessionAcceptsValidCookie(t *testing.T) {
	t.Setenv("APP_SECRET", "unit-test-secret")
	app := protectedApp()

	token, err := utils.GenerateAccessToken(&user.User{ID: 1, Username: "alice"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Cookie", constants.AccessCookieName+"="+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireSessionRejectsMalformedAuthHeader(t *testing.T) {
	t.Setenv("APP_SECRET", "unit-test-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

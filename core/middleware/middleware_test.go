package middleware_test

import (
	"net/http/httptest"
	"testing"

	"fioparser/core/middleware/auth"
	"fioparser/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/swagger/index.html", func(c *fiber.Ctx) error { return c.SendString("docs") })
	app.Use(auth.New(auth.Config{
		ApiKey: apiKey,
		Skip:   func(c *fiber.Ctx) bool { return c.Path() == "/health" },
	}))
	app.Get("/status", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	app := newApp("secret")

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"MissingKey", "/status", "", fiber.StatusUnauthorized},
		{"WrongKey", "/status", "nope", fiber.StatusUnauthorized},
		{"HeaderKey", "/status", "secret", fiber.StatusOK},
		{"QueryKey", "/status?api_key=secret", "", fiber.StatusOK},
		{"Skipped", "/health", "", fiber.StatusOK},
		{"PublicBeforeAuth", "/swagger/index.html", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.HeaderName, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	app := newApp("")
	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRayID(t *testing.T) {
	app := newApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(rayid.HeaderName))

	req := httptest.NewRequest("GET", "/status", nil)
	req.Header.Set(rayid.HeaderName, "fixed-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get(rayid.HeaderName))
}

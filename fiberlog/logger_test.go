package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestApp(tags []string) (*fiber.App, *logrustest.Hook) {
	logger, hook := logrustest.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: tags}))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/broken", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusInternalServerError)
	})
	return app, hook
}

func TestRequestLog(t *testing.T) {
	tags := []string{TagMethod, TagPath, TagStatus, TagUserID}

	t.Run("successful request logs at info with the tagged fields", func(t *testing.T) {
		app, hook := newTestApp(tags)
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.Nil(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, fiber.MethodGet, entry.Data[TagMethod])
		require.Equal(t, "/ok", entry.Data[TagPath])
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
	})

	t.Run("error responses log at warn", func(t *testing.T) {
		app, hook := newTestApp(tags)
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/broken", nil))
		require.Nil(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.WarnLevel, entry.Level)
	})

	t.Run("unauthenticated request carries no user id field", func(t *testing.T) {
		app, hook := newTestApp(tags)
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.Nil(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.NotContains(t, entry.Data, TagUserID)
	})

	t.Run("preflight requests stay out of the log", func(t *testing.T) {
		app, hook := newTestApp(tags)
		_, err := app.Test(httptest.NewRequest(fiber.MethodOptions, "/ok", nil))
		require.Nil(t, err)
		require.Nil(t, hook.LastEntry())
	})
}

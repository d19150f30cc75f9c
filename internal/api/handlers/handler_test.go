package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	errprocess "entrust_service/pkg/err"
	"entrust_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugLogFlag(t *testing.T) {
	logger.SetNewNop()
	app := fiber.New(fiber.Config{ErrorHandler: errprocess.FiberErrorHandler})
	app.Get("/", ConnectCheck)
	app.Post("/debug", DebugLogFlag)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "entrust service start!", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/debug?status=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, logger.Log.DebugMode())

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/debug?status=maybe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.True(t, logger.Log.DebugMode())
}

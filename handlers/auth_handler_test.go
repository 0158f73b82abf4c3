package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/auth/register", RegisterUser)
	return app
}

func TestRegisterValidation(t *testing.T) {
	app := registerApp()

	post := func(t *testing.T, body string) (int, map[string]any) {
		t.Helper()
		req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		var parsed map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		return resp.StatusCode, parsed
	}

	t.Run("MalformedJSON", func(t *testing.T) {
		status, body := post(t, "{not json")
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "Cannot parse JSON", body["message"])
	})

	t.Run("MissingFieldsGetPerFieldDetail", func(t *testing.T) {
		status, body := post(t, `{"role":"student"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, false, body["success"])

		details, ok := body["details"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "name")
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "password")
		assert.Contains(t, details, "department")
		assert.Contains(t, details, "roll_number")
		assert.NotContains(t, details, "role")
	})

	t.Run("RollNumberOnlyRequiredForStudents", func(t *testing.T) {
		status, body := post(t, `{"role":"teacher"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)

		details, ok := body["details"].(map[string]any)
		require.True(t, ok)
		assert.NotContains(t, details, "roll_number")
	})
}

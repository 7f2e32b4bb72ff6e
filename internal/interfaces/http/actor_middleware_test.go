package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
	apihttp "github.com/pakoelda-code/wom-partes/internal/interfaces/http"
)

func TestActorMiddleware_SinCabeceraRechaza(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", apihttp.ActorMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "UNAUTHORIZED", out.Code)
}

func TestActorMiddleware_CargaElActor(t *testing.T) {
	app := fiber.New()
	var got entity.Actor
	app.Get("/ping", apihttp.ActorMiddleware(), func(c *fiber.Ctx) error {
		got = apihttp.GetActor(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(apihttp.HeaderActorCode, " P000A ")
	req.Header.Set(apihttp.HeaderActorName, "Pako")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "P000A", got.Code, "el código llega sin espacios")
	assert.Equal(t, "Pako", got.Name)
}

func TestActorMiddleware_NombreOpcional(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", apihttp.ActorMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(apihttp.HeaderActorCode, "P000A")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

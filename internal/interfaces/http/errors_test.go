package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockalert-api/internal/domain"
	apphttp "github.com/jhoicas/stockalert-api/internal/interfaces/http"
)

func errorApp(production bool, err error) *fiber.App {
	errs := apphttp.NewErrorResponder(zerolog.Nop(), production)
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error { return errs.Respond(c, err) })
	return app
}

func TestErrorResponder_Mapeo(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", fmt.Errorf("%w: limit", domain.ErrInvalidInput), http.StatusBadRequest, apphttp.CodeValidation},
		{"formato de referencia", fmt.Errorf("inventory: %w: %w", domain.ErrInvalidReference, errors.New("22P02")), http.StatusBadRequest, apphttp.CodeInvalidFormat},
		{"no encontrado", fmt.Errorf("%w: empresa x", domain.ErrNotFound), http.StatusNotFound, apphttp.CodeNotFound},
		{"interno", errors.New("conexión reiniciada"), http.StatusInternalServerError, apphttp.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := get(t, errorApp(false, tc.err), "/fail", "")
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp).Code)
		})
	}
}

func TestErrorResponder_ProduccionOcultaDetalle(t *testing.T) {
	boom := errors.New("pq: password authentication failed")

	dev := get(t, errorApp(false, boom), "/fail", "")
	defer dev.Body.Close()
	assert.Equal(t, boom.Error(), decodeError(t, dev).Message)

	prod := get(t, errorApp(true, boom), "/fail", "")
	defer prod.Body.Close()
	assert.NotContains(t, decodeError(t, prod).Message, "password")
}

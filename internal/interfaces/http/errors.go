package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stockalert-api/internal/application/dto"
	"github.com/jhoicas/stockalert-api/internal/domain"
)

// Códigos de error expuestos en dto.ErrorResponse.
const (
	CodeValidation      = "VALIDATION"
	CodeInvalidFormat   = "INVALID_PARAMETER_FORMAT"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL"
	CodeRouteNotFound   = "ROUTE_NOT_FOUND"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
)

// ErrorResponder traduce los errores de dominio a HTTP. Es el único punto de mapeo.
type ErrorResponder struct {
	log          zerolog.Logger
	exposeDetail bool
}

// NewErrorResponder en producción los 500 no exponen el detalle del error.
func NewErrorResponder(log zerolog.Logger, production bool) *ErrorResponder {
	return &ErrorResponder{log: log, exposeDetail: !production}
}

// Respond escribe el cuerpo de error correspondiente a err.
func (r *ErrorResponder) Respond(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: describeValidation(verrs)})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeValidation, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidReference):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidFormat, Message: "identificador con formato inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: "empresa no encontrada"})
	}

	r.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	msg := "error interno del servidor"
	if r.exposeDetail {
		msg = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: msg})
}

// FiberErrorHandler maneja lo que escapa de los handlers: rutas inexistentes,
// *fiber.Error y pánicos recuperados.
func (r *ErrorResponder) FiberErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = CodeRouteNotFound
			case fiber.StatusTooManyRequests:
				code = CodeTooManyRequests
			case fiber.StatusBadRequest:
				code = CodeValidation
			}
			if fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
			}
		}
		return r.Respond(c, err)
	}
}

func describeValidation(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s fuera de rango (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

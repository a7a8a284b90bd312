package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brand-catalog-api/internal/application/dto"
	"github.com/jhoicas/brand-catalog-api/internal/domain"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// Orden: primero los errores específicos, después las clases.
var errorTable = []errorMapping{
	{domain.ErrBrandNotFound, fiber.StatusNotFound, "BRAND_NOT_FOUND"},
	{domain.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{domain.ErrCategoryEmpty, fiber.StatusNotFound, "CATEGORY_EMPTY"},
	{domain.ErrCatalogEmpty, fiber.StatusNotFound, "CATALOG_EMPTY"},
	{domain.ErrNoFullCoverage, fiber.StatusNotFound, "NO_FULL_COVERAGE"},
	{domain.ErrBrandAlreadyExists, fiber.StatusConflict, "BRAND_ALREADY_EXISTS"},
	{domain.ErrProductAlreadyExists, fiber.StatusConflict, "PRODUCT_ALREADY_EXISTS"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// writeError traduce un error de dominio a respuesta HTTP. Los errores no clasificados
// se registran y responden 500 sin exponer el detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func validationError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: msg})
}

// ErrorHandler respuesta JSON para errores de Fiber (ruta inexistente, método no permitido, pánico recuperado).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

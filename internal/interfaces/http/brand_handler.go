package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brand-catalog-api/internal/application/catalog"
	"github.com/jhoicas/brand-catalog-api/internal/application/dto"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

// BrandHandler maneja las peticiones HTTP para Brand.
type BrandHandler struct {
	uc            *catalog.BrandUseCase
	defaultPolicy catalog.ReplaceMode
	log           *logger.Logger
}

// NewBrandHandler construye el handler. defaultPolicy se aplica cuando PUT no trae ?mode=.
func NewBrandHandler(uc *catalog.BrandUseCase, defaultPolicy catalog.ReplaceMode, log *logger.Logger) *BrandHandler {
	return &BrandHandler{uc: uc, defaultPolicy: defaultPolicy, log: log}
}

// Create godoc
// @Summary      Registrar marca con precios
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BrandRequest  true  "Marca y precios por categoría"
// @Success      201   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.BrandRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateBrand(c.UserContext(), in.Brand, in.Prices)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar marcas
// @Tags         brands
// @Produce      json
// @Success      200  {object}  dto.BrandListResponse
// @Router       /api/v1/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListBrandNames(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener marca y sus precios
// @Tags         brands
// @Produce      json
// @Param        name  path      string  true  "Nombre de la marca"
// @Success      200   {object}  dto.BrandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/brands/{name} [get]
func (h *BrandHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetBrand(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ReplacePrices godoc
// @Summary      Actualizar precios de una marca
// @Description  mode=merge actualiza o crea las categorías enviadas; mode=replace elimina antes todos los productos de la marca.
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        name  path      string                  true   "Nombre de la marca"
// @Param        mode  query     string                  false  "merge | replace"
// @Param        body  body      dto.BrandPricesRequest  true   "Precios por categoría"
// @Success      200   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/brands/{name} [put]
func (h *BrandHandler) ReplacePrices(c *fiber.Ctx) error {
	mode := h.defaultPolicy
	if q := c.Query("mode"); q != "" {
		m, err := catalog.ParseReplaceMode(q)
		if err != nil {
			return writeError(c, h.log, err)
		}
		mode = m
	}
	var in dto.BrandPricesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ReplaceBrandPrices(c.UserContext(), c.Params("name"), in.Prices, mode)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar marca y sus productos
// @Tags         brands
// @Param        name  path  string  true  "Nombre de la marca"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/brands/{name} [delete]
func (h *BrandHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteBrand(c.UserContext(), c.Params("name")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

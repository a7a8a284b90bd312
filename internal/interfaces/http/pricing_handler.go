package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brand-catalog-api/internal/application/pricing"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

// PricingHandler consultas agregadas de precios y registro de categorías.
type PricingHandler struct {
	uc  *pricing.PricingUseCase
	log *logger.Logger
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.PricingUseCase, log *logger.Logger) *PricingHandler {
	return &PricingHandler{uc: uc, log: log}
}

// CheapestPerCategory godoc
// @Summary      Marca más barata por categoría y total
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  dto.LowestByCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse  "alguna categoría no tiene productos"
// @Router       /api/v1/categories/cheapest-brands [get]
func (h *PricingHandler) CheapestPerCategory(c *fiber.Ctx) error {
	out, err := h.uc.CheapestPerCategory(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CheapestBrand godoc
// @Summary      Marca única más barata con todas las categorías
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  dto.LowestByBrandResponse
// @Failure      404  {object}  dto.ErrorResponse  "CATALOG_EMPTY o NO_FULL_COVERAGE"
// @Router       /api/v1/brands/cheapest [get]
func (h *PricingHandler) CheapestBrand(c *fiber.Ctx) error {
	out, err := h.uc.CheapestBrandBundle(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CategoryStat godoc
// @Summary      Precio mínimo y máximo de una categoría
// @Tags         pricing
// @Produce      json
// @Param        category  path      string  true  "Nombre de la categoría (p. ej. 상의)"
// @Success      200       {object}  dto.CategoryStatResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{category}/price-stats [get]
func (h *PricingHandler) CategoryStat(c *fiber.Ctx) error {
	out, err := h.uc.CategoryStat(c.UserContext(), c.Params("category"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Registro de categorías en su orden fijo
// @Tags         pricing
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/v1/categories [get]
func (h *PricingHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(pricing.Categories())
}

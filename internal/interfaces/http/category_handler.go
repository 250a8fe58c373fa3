package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nikiya/zaiko-api/internal/application/dto"
	"github.com/nikiya/zaiko-api/internal/application/query"
	"github.com/nikiya/zaiko-api/internal/application/usecase"
	"github.com/nikiya/zaiko-api/internal/domain"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
)

// CategoryHandler maneja la taxonomía de categorías.
type CategoryHandler struct {
	uc     *usecase.CategoryUseCase
	engine *query.Engine
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, engine *query.Engine) *CategoryHandler {
	return &CategoryHandler{uc: uc, engine: engine}
}

// List godoc
// @Summary      Listar categorías configuradas
// @Tags         categories
// @Produce      json
// @Param        type  query  string  false  "major | medium | minor"
// @Success      200   {array}  entity.Category
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("type")))
}

// Options godoc
// @Summary      Opciones de filtro por nivel (usadas + configuradas)
// @Tags         categories
// @Produce      json
// @Param        type  query  string  true  "major | medium | minor"
// @Success      200   {array}  string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories/options [get]
func (h *CategoryHandler) Options(c *fiber.Ctx) error {
	level := c.Query("type")
	if !entity.ValidCategoryType(level) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser major, medium o minor"})
	}
	return c.JSON(h.engine.Options(level))
}

// Create godoc
// @Summary      Añadir categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Categoría"
// @Success      201   {object}  entity.Category
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.uc.Add(in.Name, in.Type)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido y type major|medium|minor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

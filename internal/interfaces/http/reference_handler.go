package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nikiya/zaiko-api/internal/application/dto"
	"github.com/nikiya/zaiko-api/internal/application/usecase"
	"github.com/nikiya/zaiko-api/internal/domain"
)

// ReferenceHandler maneja las listas de encargados y destinos.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// ListStaff godoc
// @Summary      Listar encargados
// @Tags         references
// @Produce      json
// @Success      200  {array}  entity.Staff
// @Router       /api/staff [get]
func (h *ReferenceHandler) ListStaff(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListStaff())
}

// CreateStaff godoc
// @Summary      Añadir encargado
// @Tags         references
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNameRequest  true  "Encargado"
// @Success      201   {object}  entity.Staff
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/staff [post]
func (h *ReferenceHandler) CreateStaff(c *fiber.Ctx) error {
	var in dto.CreateNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	staff, err := h.uc.AddStaff(in.Name)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

// DeleteStaff godoc
// @Summary      Eliminar encargado
// @Tags         references
// @Param        id  path  string  true  "ID del encargado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staff/{id} [delete]
func (h *ReferenceHandler) DeleteStaff(c *fiber.Ctx) error {
	if err := h.uc.DeleteStaff(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "encargado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListDestinations godoc
// @Summary      Listar destinos
// @Tags         references
// @Produce      json
// @Success      200  {array}  entity.Destination
// @Router       /api/destinations [get]
func (h *ReferenceHandler) ListDestinations(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListDestinations())
}

// CreateDestination godoc
// @Summary      Añadir destino
// @Tags         references
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNameRequest  true  "Destino"
// @Success      201   {object}  entity.Destination
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/destinations [post]
func (h *ReferenceHandler) CreateDestination(c *fiber.Ctx) error {
	var in dto.CreateNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	dest, err := h.uc.AddDestination(in.Name)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dest)
}

// DeleteDestination godoc
// @Summary      Eliminar destino
// @Tags         references
// @Param        id  path  string  true  "ID del destino"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [delete]
func (h *ReferenceHandler) DeleteDestination(c *fiber.Ctx) error {
	if err := h.uc.DeleteDestination(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "destino no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nikiya/zaiko-api/internal/application/dto"
	"github.com/nikiya/zaiko-api/internal/application/inventory"
	"github.com/nikiya/zaiko-api/internal/application/query"
	"github.com/nikiya/zaiko-api/internal/domain"
)

// InventoryHandler maneja los movimientos de stock y el historial.
type InventoryHandler struct {
	uc     *inventory.UpdateStockUseCase
	engine *query.Engine
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UpdateStockUseCase, engine *query.Engine) *InventoryHandler {
	return &InventoryHandler{uc: uc, engine: engine}
}

// RegisterMovement godoc
// @Summary      Registrar entrada o salida de stock
// @Tags         inventory
// @Accept       json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      202
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.UpdateStock(inventory.MovementInput{
		ProductName: in.ProductName,
		Amount:      in.Amount,
		Direction:   in.Type,
		Destination: in.Destination,
		User:        in.User,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser positivo y type in|out"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// El producto inexistente no es error: el movimiento simplemente no
	// produce asiento.
	return c.SendStatus(fiber.StatusAccepted)
}

// ListMovements godoc
// @Summary      Historial de movimientos filtrado
// @Tags         inventory
// @Produce      json
// @Param        q               query  string  false  "Substring del nombre de producto"
// @Param        from            query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to              query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Param        category        query  string  false  "Categoría mayor"
// @Param        mediumCategory  query  string  false  "Categoría media"
// @Param        smallCategory   query  string  false  "Categoría menor"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	items := h.engine.Transactions(filterFromQuery(c))
	return c.JSON(dto.TransactionListResponse{Items: items, Total: len(items)})
}

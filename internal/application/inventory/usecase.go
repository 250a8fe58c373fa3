// Package inventory implementa el motor de mutación de stock: el único camino por
// el que cambia el nivel de un producto y se asienta historia en el libro.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/nikiya/zaiko-api/internal/domain"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/domain/repository"
	"github.com/nikiya/zaiko-api/internal/domain/stock"
	"github.com/nikiya/zaiko-api/pkg/logger"
)

// UpdateStockUseCase aplica entradas y salidas sobre un producto, deriva su estado
// y asienta el movimiento en la cabeza del libro.
type UpdateStockUseCase struct {
	products repository.ProductRepository
	ledger   repository.TransactionRepository
	log      *logger.Logger
}

// NewUpdateStockUseCase construye el caso de uso.
func NewUpdateStockUseCase(products repository.ProductRepository, ledger repository.TransactionRepository, log *logger.Logger) *UpdateStockUseCase {
	return &UpdateStockUseCase{products: products, ledger: ledger, log: log}
}

// MovementInput entrada de un movimiento. Amount es magnitud positiva; Direction
// decide el signo. Destination solo aplica a salidas.
type MovementInput struct {
	ProductName string
	Amount      int
	Direction   string // in | out
	Destination string
	User        string
}

// UpdateStock aplica el movimiento. Precondiciones: Amount > 0 y Direction
// conocida. Si ningún producto se llama ProductName la operación es un no-op
// silencioso: no se crea producto ni asiento. Con nombres duplicados muta el
// primero en orden de registro.
func (uc *UpdateStockUseCase) UpdateStock(in MovementInput) error {
	if in.Amount <= 0 {
		return domain.ErrInvalidInput
	}
	if in.Direction != entity.MovementIn && in.Direction != entity.MovementOut {
		return domain.ErrInvalidInput
	}

	product := uc.products.FirstByName(in.ProductName)
	if product == nil {
		uc.log.Debug().Str("product", in.ProductName).Msg("movimiento sobre producto inexistente, ignorado")
		return nil
	}

	product.Stock = stock.Apply(product.Stock, in.Amount, in.Direction)
	product.Status = stock.StatusFor(product.Stock)
	if err := uc.products.Update(product); err != nil {
		return err
	}

	user := in.User
	if user == "" {
		user = entity.PlaceholderUser
	}
	mov := &entity.Transaction{
		ID:          uuid.New().String(),
		ProductName: in.ProductName,
		User:        user,
		Amount:      stock.SignedAmount(in.Amount, in.Direction),
		Date:        time.Now().Format(entity.DateLayout),
		Type:        in.Direction,
	}
	if in.Direction == entity.MovementOut {
		mov.Destination = in.Destination
	}
	return uc.ledger.Prepend(mov)
}

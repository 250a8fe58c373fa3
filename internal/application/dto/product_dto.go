package dto

import (
	"github.com/shopspring/decimal"

	"github.com/nikiya/zaiko-api/internal/domain/entity"
)

// SaveProductRequest entrada para registrar o reemplazar un producto. Status no se
// acepta: siempre se deriva del stock.
type SaveProductRequest struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	MediumCategory string          `json:"mediumCategory"`
	SmallCategory  string          `json:"smallCategory"`
	ImageURL       string          `json:"imageUrl"`
	Stock          int             `json:"stock"`
	Price          decimal.Decimal `json:"price"`
}

// ProductListResponse listado de productos filtrados.
type ProductListResponse struct {
	Items []entity.Product `json:"items"`
	Total int              `json:"total"`
}

// TransactionListResponse listado de movimientos filtrados, en orden de libro
// (más reciente primero).
type TransactionListResponse struct {
	Items []entity.Transaction `json:"items"`
	Total int                  `json:"total"`
}

package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados (nunca se asignan manualmente; ver stock.StatusFor).
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// Product representa un artículo del inventario. Stock y Status se mutan únicamente
// a través del motor de movimientos; las tres categorías son strings independientes
// (no hay enlace padre/hijo con la taxonomía, el match es por nombre).
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`                 // nivel mayor, obligatorio
	MediumCategory string          `json:"mediumCategory,omitempty"` // nivel medio, opcional
	SmallCategory  string          `json:"smallCategory,omitempty"`  // nivel menor, opcional
	ImageURL       string          `json:"imageUrl,omitempty"`
	Stock          int             `json:"stock"`
	Status         string          `json:"status"`
	Price          decimal.Decimal `json:"price"` // precio unitario; cero = sin precio
}

// CategoryPath devuelve "mayor > medio > menor" omitiendo niveles vacíos.
func (p Product) CategoryPath() string {
	parts := make([]string, 0, 3)
	for _, level := range []string{p.Category, p.MediumCategory, p.SmallCategory} {
		if level != "" {
			parts = append(parts, level)
		}
	}
	return strings.Join(parts, " > ")
}

// HasPrice indica si el producto tiene precio asignado.
func (p Product) HasPrice() bool {
	return p.Price.IsPositive()
}

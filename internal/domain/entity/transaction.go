package entity

import "time"

// Tipos de movimiento del libro de inventario.
const (
	MovementIn  = "in"  // entrada
	MovementOut = "out" // salida
)

// InitialStockDestination marca reservada en Destination para la entrada sintética
// que se genera al registrar un producto con stock inicial mayor que cero.
const InitialStockDestination = "initial stock"

// PlaceholderUser valor de User cuando el formulario no indica encargado.
const PlaceholderUser = "現在のユーザー"

// DateLayout formato del timestamp de los movimientos (hora local, minuto de granularidad).
const DateLayout = "2006/01/02 15:04"

// Transaction es una entrada del libro de movimientos. Inmutable una vez creada:
// el libro solo crece por la cabeza y solo se poda en cascada al borrar un producto.
// El join con Product es por nombre, no por id.
type Transaction struct {
	ID          string `json:"id"`
	ProductName string `json:"productName"`
	User        string `json:"user"`
	Amount      int    `json:"amount"` // positivo para entradas, negativo para salidas
	Date        string `json:"date"`   // timestamp formateado con DateLayout
	Type        string `json:"type"`   // in | out
	Destination string `json:"destination,omitempty"`
}

// ParseDate interpreta el timestamp formateado del movimiento en hora local.
func (t Transaction) ParseDate() (time.Time, error) {
	return time.ParseInLocation(DateLayout, t.Date, time.Local)
}

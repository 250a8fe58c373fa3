// Package stock contiene la aritmética pura de niveles de stock: aplicación de
// deltas con piso en cero y derivación del estado a partir de la cantidad.
package stock

import "github.com/nikiya/zaiko-api/internal/domain/entity"

// LowThreshold cantidad por debajo de la cual (y mayor que cero) el producto
// queda en "Low Stock".
const LowThreshold = 10

// StatusFor deriva el estado de un producto desde su cantidad actual.
// Es función pura de la cantidad; el estado nunca se asigna por separado.
func StatusFor(qty int) string {
	switch {
	case qty == 0:
		return entity.StatusOutOfStock
	case qty < LowThreshold:
		return entity.StatusLowStock
	default:
		return entity.StatusInStock
	}
}

// Apply aplica un movimiento de amount unidades en la dirección dada sobre la
// cantidad actual. El resultado nunca baja de cero: una salida mayor que el
// stock disponible deja el nivel en cero, no en negativo.
func Apply(current, amount int, direction string) int {
	delta := amount
	if direction == entity.MovementOut {
		delta = -amount
	}
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

// SignedAmount devuelve el monto con el signo que corresponde a la dirección
// (positivo para entradas, negativo para salidas), tal como se asienta en el libro.
func SignedAmount(amount int, direction string) int {
	if direction == entity.MovementOut {
		return -amount
	}
	return amount
}

package entity

// Staff y Destination son listas de referencia planas: alimentan las sugerencias de
// los formularios de movimiento pero no se validan contra Transaction.User ni
// Transaction.Destination (ambos son texto libre).

// Staff persona encargada de un movimiento.
type Staff struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Destination destino de salida de stock.
type Destination struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

package dto

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// Amount es la magnitud (positiva); Type decide el signo del asiento.
type RegisterMovementRequest struct {
	ProductName string `json:"productName"`
	Amount      int    `json:"amount"`
	Type        string `json:"type"` // in | out
	Destination string `json:"destination"`
	User        string `json:"user"`
}

// CreateCategoryRequest entrada para añadir una entrada a la taxonomía.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"` // major | medium | minor
}

// CreateNameRequest entrada para las listas de referencia (encargados, destinos).
type CreateNameRequest struct {
	Name string `json:"name"`
}

package entity

// Niveles de la taxonomía de clasificación (tres niveles planos, sin aristas).
const (
	CategoryMajor  = "major"
	CategoryMedium = "medium"
	CategoryMinor  = "minor"
)

// DefaultCategoryIcon icono asignado a las categorías recién creadas.
const DefaultCategoryIcon = "category"

// Category es una entrada del vocabulario de clasificación. No guarda relación
// padre/hijo: la jerarquía queda implícita por Type más la coincidencia incidental
// de nombres contra los productos.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // major | medium | minor
	Icon string `json:"icon"`
}

// ValidCategoryType indica si s es uno de los tres niveles conocidos.
func ValidCategoryType(s string) bool {
	return s == CategoryMajor || s == CategoryMedium || s == CategoryMinor
}

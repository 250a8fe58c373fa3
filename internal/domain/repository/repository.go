// Package repository define los puertos de acceso al contenedor de estado.
// Toda mutación de las colecciones pasa por estas interfaces; ningún caller
// externo toca las colecciones directamente.
package repository

import "github.com/nikiya/zaiko-api/internal/domain/entity"

// ProductRepository colección de productos (orden de registro).
type ProductRepository interface {
	List() []entity.Product
	GetByID(id string) (*entity.Product, error)
	// FirstByName devuelve el primer producto con ese nombre exacto en orden de
	// registro, o nil si no existe. Con nombres duplicados gana el primero.
	FirstByName(name string) *entity.Product
	Create(p *entity.Product) error
	// Update reemplaza el registro cuyo ID coincide. No toca el libro de movimientos.
	Update(p *entity.Product) error
	// Delete elimina el producto y devuelve el registro eliminado (para la cascada
	// por nombre sobre el libro).
	Delete(id string) (*entity.Product, error)
}

// TransactionRepository libro de movimientos, append-only por la cabeza.
type TransactionRepository interface {
	List() []entity.Transaction
	// Prepend inserta el movimiento como nueva cabeza del libro (más reciente primero).
	Prepend(t *entity.Transaction) error
	// DeleteByProductName elimina todos los movimientos cuyo productName coincida.
	// Único camino de borrado del libro; existe solo como cascada de deleteProduct.
	DeleteByProductName(name string) error
}

// CategoryRepository vocabulario de clasificación (tres niveles planos).
type CategoryRepository interface {
	List() []entity.Category
	ListByType(categoryType string) []entity.Category
	Create(c *entity.Category) error
	Delete(id string) error
}

// StaffRepository lista plana de encargados.
type StaffRepository interface {
	List() []entity.Staff
	Create(s *entity.Staff) error
	Delete(id string) error
}

// DestinationRepository lista plana de destinos de salida.
type DestinationRepository interface {
	List() []entity.Destination
	Create(d *entity.Destination) error
	Delete(id string) error
}

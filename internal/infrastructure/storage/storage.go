// Package storage define el puerto de persistencia opaca del estado: cinco blobs
// JSON independientes, uno por colección, detrás de un par load/save. El motor de
// inventario no conoce la tecnología de almacenamiento.
package storage

import (
	"context"
	"errors"
)

// Claves de los blobs persistidos (una por colección, independientes entre sí).
const (
	KeyProducts     = "inventory_products"
	KeyTransactions = "inventory_transactions"
	KeyCategories   = "inventory_categories"
	KeyStaff        = "inventory_staff"
	KeyDestinations = "inventory_destinations"
)

// ErrBlobNotFound indica que la clave no tiene blob guardado. El contenedor de
// estado responde sustituyendo el dataset semilla de esa colección.
var ErrBlobNotFound = errors.New("storage: blob no encontrado")

// BlobStore puerto de persistencia clave→blob. Save es best-effort: su fallo se
// registra y no revierte el estado en memoria.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

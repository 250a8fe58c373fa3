// Package state implementa el contenedor de estado en memoria: dueño exclusivo de
// las colecciones (productos, libro de movimientos, taxonomía, encargados y
// destinos). Toda mutación entra por los puertos de repository y dispara una
// escritura best-effort al BlobStore; el fallo de esa escritura se registra y el
// estado en memoria sigue siendo la autoridad de la sesión.
package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nikiya/zaiko-api/internal/domain"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/domain/repository"
	"github.com/nikiya/zaiko-api/internal/infrastructure/storage"
	"github.com/nikiya/zaiko-api/pkg/logger"
)

// Container contenedor de estado. Un solo mutex serializa todas las operaciones:
// cada mutación y cada consulta corre completa antes de que entre la siguiente.
type Container struct {
	mu           sync.Mutex
	products     []entity.Product
	transactions []entity.Transaction
	categories   []entity.Category
	staff        []entity.Staff
	destinations []entity.Destination

	store storage.BlobStore
	log   *logger.Logger
}

// NewContainer carga las cinco colecciones desde el BlobStore. Un blob ausente o
// corrupto sustituye solo su colección por la semilla; las demás no se invalidan.
// Usar el contenedor sin construirlo por aquí es un error de programación.
func NewContainer(ctx context.Context, store storage.BlobStore, log *logger.Logger) *Container {
	if store == nil || log == nil {
		panic("state: Container requiere BlobStore y Logger")
	}
	return &Container{
		products:     loadCollection(ctx, store, log, storage.KeyProducts, seedProducts),
		transactions: loadCollection(ctx, store, log, storage.KeyTransactions, seedTransactions),
		categories:   loadCollection(ctx, store, log, storage.KeyCategories, seedCategories),
		staff:        loadCollection(ctx, store, log, storage.KeyStaff, seedStaff),
		destinations: loadCollection(ctx, store, log, storage.KeyDestinations, seedDestinations),
		store:        store,
		log:          log,
	}
}

// loadCollection lee y decodifica el blob de una colección, cayendo a la semilla
// ante cualquier fallo de lectura o de decodificación.
func loadCollection[T any](ctx context.Context, store storage.BlobStore, log *logger.Logger, key string, seed func() []T) []T {
	data, err := store.Load(ctx, key)
	if err != nil {
		if err != storage.ErrBlobNotFound {
			log.Warn().Err(err).Str("key", key).Msg("blob ilegible, usando semilla")
		}
		return seed()
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("blob corrupto, usando semilla")
		return seed()
	}
	return items
}

// persist serializa una colección y la guarda, con el lock del contenedor tomado
// por el caller: las escrituras salen en el mismo orden que las mutaciones.
// Best-effort: el error solo se loguea, el estado en memoria no se revierte.
func persist[T any](c *Container, key string, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("serializar colección")
		return
	}
	if err := c.store.Save(context.Background(), key, data); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("persistir colección")
	}
}

// ── Vistas repository ─────────────────────────────────────────────────────────

// Products vista del contenedor como repositorio de productos.
func (c *Container) Products() repository.ProductRepository { return productsView{c} }

// Transactions vista del contenedor como libro de movimientos.
func (c *Container) Transactions() repository.TransactionRepository { return ledgerView{c} }

// Categories vista del contenedor como vocabulario de clasificación.
func (c *Container) Categories() repository.CategoryRepository { return categoriesView{c} }

// Staff vista del contenedor como lista de encargados.
func (c *Container) Staff() repository.StaffRepository { return staffView{c} }

// Destinations vista del contenedor como lista de destinos.
func (c *Container) Destinations() repository.DestinationRepository { return destinationsView{c} }

// ── Productos ─────────────────────────────────────────────────────────────────

type productsView struct{ c *Container }

func (v productsView) List() []entity.Product {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	out := make([]entity.Product, len(v.c.products))
	copy(out, v.c.products)
	return out
}

func (v productsView) GetByID(id string) (*entity.Product, error) {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	for i := range v.c.products {
		if v.c.products[i].ID == id {
			p := v.c.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (v productsView) FirstByName(name string) *entity.Product {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	for i := range v.c.products {
		if v.c.products[i].Name == name {
			p := v.c.products[i]
			return &p
		}
	}
	return nil
}

func (v productsView) Create(p *entity.Product) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	v.c.products = append(v.c.products, *p)
	persist(v.c, storage.KeyProducts, v.c.products)
	return nil
}

func (v productsView) Update(p *entity.Product) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	found := false
	for i := range v.c.products {
		if v.c.products[i].ID == p.ID {
			v.c.products[i] = *p
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	persist(v.c, storage.KeyProducts, v.c.products)
	return nil
}

func (v productsView) Delete(id string) (*entity.Product, error) {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	var removed *entity.Product
	for i := range v.c.products {
		if v.c.products[i].ID == id {
			p := v.c.products[i]
			removed = &p
			v.c.products = append(v.c.products[:i], v.c.products[i+1:]...)
			break
		}
	}
	if removed == nil {
		return nil, domain.ErrNotFound
	}
	persist(v.c, storage.KeyProducts, v.c.products)
	return removed, nil
}

// ── Libro de movimientos ──────────────────────────────────────────────────────

type ledgerView struct{ c *Container }

func (v ledgerView) List() []entity.Transaction {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	out := make([]entity.Transaction, len(v.c.transactions))
	copy(out, v.c.transactions)
	return out
}

func (v ledgerView) Prepend(t *entity.Transaction) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	v.c.transactions = append([]entity.Transaction{*t}, v.c.transactions...)
	persist(v.c, storage.KeyTransactions, v.c.transactions)
	return nil
}

func (v ledgerView) DeleteByProductName(name string) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	kept := v.c.transactions[:0]
	for _, t := range v.c.transactions {
		if t.ProductName != name {
			kept = append(kept, t)
		}
	}
	v.c.transactions = kept
	persist(v.c, storage.KeyTransactions, v.c.transactions)
	return nil
}

// ── Taxonomía ─────────────────────────────────────────────────────────────────

type categoriesView struct{ c *Container }

func (v categoriesView) List() []entity.Category {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	out := make([]entity.Category, len(v.c.categories))
	copy(out, v.c.categories)
	return out
}

func (v categoriesView) ListByType(categoryType string) []entity.Category {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	var out []entity.Category
	for _, cat := range v.c.categories {
		if cat.Type == categoryType {
			out = append(out, cat)
		}
	}
	return out
}

func (v categoriesView) Create(cat *entity.Category) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	v.c.categories = append(v.c.categories, *cat)
	persist(v.c, storage.KeyCategories, v.c.categories)
	return nil
}

func (v categoriesView) Delete(id string) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	found := false
	for i := range v.c.categories {
		if v.c.categories[i].ID == id {
			v.c.categories = append(v.c.categories[:i], v.c.categories[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	persist(v.c, storage.KeyCategories, v.c.categories)
	return nil
}

// ── Encargados ────────────────────────────────────────────────────────────────

type staffView struct{ c *Container }

func (v staffView) List() []entity.Staff {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	out := make([]entity.Staff, len(v.c.staff))
	copy(out, v.c.staff)
	return out
}

func (v staffView) Create(s *entity.Staff) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	v.c.staff = append(v.c.staff, *s)
	persist(v.c, storage.KeyStaff, v.c.staff)
	return nil
}

func (v staffView) Delete(id string) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	found := false
	for i := range v.c.staff {
		if v.c.staff[i].ID == id {
			v.c.staff = append(v.c.staff[:i], v.c.staff[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	persist(v.c, storage.KeyStaff, v.c.staff)
	return nil
}

// ── Destinos ──────────────────────────────────────────────────────────────────

type destinationsView struct{ c *Container }

func (v destinationsView) List() []entity.Destination {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	out := make([]entity.Destination, len(v.c.destinations))
	copy(out, v.c.destinations)
	return out
}

func (v destinationsView) Create(d *entity.Destination) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	v.c.destinations = append(v.c.destinations, *d)
	persist(v.c, storage.KeyDestinations, v.c.destinations)
	return nil
}

func (v destinationsView) Delete(id string) error {
	v.c.mu.Lock()
	defer v.c.mu.Unlock()
	found := false
	for i := range v.c.destinations {
		if v.c.destinations[i].ID == id {
			v.c.destinations = append(v.c.destinations[:i], v.c.destinations[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	persist(v.c, storage.KeyDestinations, v.c.destinations)
	return nil
}

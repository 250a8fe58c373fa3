package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikiya/zaiko-api/internal/application/query"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/infrastructure/state"
	"github.com/nikiya/zaiko-api/internal/infrastructure/storage"
	"github.com/nikiya/zaiko-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: tres productos en dos ramas de la taxonomía y un libro con
// movimientos fechados, sobre un contenedor sin semillas.
// ──────────────────────────────────────────────────────────────────────────────

func newEngine(t *testing.T) (*query.Engine, *state.Container) {
	t.Helper()
	store := storage.NewMemoryStore()
	for _, key := range []string{
		storage.KeyProducts, storage.KeyTransactions, storage.KeyCategories,
		storage.KeyStaff, storage.KeyDestinations,
	} {
		store.Seed(key, []byte("[]"))
	}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	c := state.NewContainer(context.Background(), store, log)
	return query.NewEngine(c.Products(), c.Transactions(), c.Categories()), c
}

func seedCatalog(t *testing.T, c *state.Container) {
	t.Helper()
	products := []entity.Product{
		{ID: "p1", Name: "Tシャツ", Category: "衣類", MediumCategory: "トップス", SmallCategory: "半袖", Stock: 25},
		{ID: "p2", Name: "デニムパンツ", Category: "衣類", MediumCategory: "ボトムス", Stock: 8},
		{ID: "p3", Name: "レザーベルト", Category: "服飾雑貨", Stock: 0},
	}
	for i := range products {
		require.NoError(t, c.Products().Create(&products[i]))
	}
	// El libro se asienta por la cabeza: el último Prepend queda primero.
	movements := []entity.Transaction{
		{ID: "t1", ProductName: "Tシャツ", Amount: 25, Date: "2026/08/01 09:00", Type: entity.MovementIn},
		{ID: "t2", ProductName: "デニムパンツ", Amount: -2, Date: "2026/08/15 14:30", Type: entity.MovementOut, Destination: "店舗A"},
		{ID: "t3", ProductName: "Tシャツ", Amount: -5, Date: "2026/08/20 18:45", Type: entity.MovementOut, Destination: "店舗B"},
	}
	for i := range movements {
		require.NoError(t, c.Transactions().Prepend(&movements[i]))
	}
}

func productIDs(items []entity.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func movementIDs(items []entity.Transaction) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.ID
	}
	return out
}

func TestProducts_FiltroVacioDevuelveTodoEnOrden(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)

	got := engine.Products(query.Filter{})
	assert.Equal(t, []string{"p1", "p2", "p3"}, productIDs(got))
}

func TestProducts_NombrePorSubstringSinDistinguirMayusculas(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)
	require.NoError(t, c.Products().Create(&entity.Product{ID: "p4", Name: "Summer Shirt", Category: "衣類"}))

	got := engine.Products(query.Filter{Name: "summer"})
	assert.Equal(t, []string{"p4"}, productIDs(got))
}

func TestProducts_CategoriaPorIgualdadExacta(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)

	assert.Equal(t, []string{"p1", "p2"}, productIDs(engine.Products(query.Filter{Major: "衣類"})))
	assert.Equal(t, []string{"p1"}, productIDs(engine.Products(query.Filter{Major: "衣類", Medium: "トップス"})))
	assert.Empty(t, engine.Products(query.Filter{Major: "衣"}), "sin coincidencia parcial en categorías")
}

func TestTransactions_VentanaDeFechasInclusiva(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)

	// El límite superior cubre su día completo: t2 (15/08 14:30) entra con to=2026-08-15.
	got := engine.Transactions(query.Filter{StartDate: "2026-08-15", EndDate: "2026-08-15"})
	assert.Equal(t, []string{"t2"}, movementIDs(got))

	got = engine.Transactions(query.Filter{StartDate: "2026-08-02"})
	assert.Equal(t, []string{"t3", "t2"}, movementIDs(got), "orden de libro, más reciente primero")
}

func TestTransactions_LimiteIlegibleSeIgnora(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)

	got := engine.Transactions(query.Filter{StartDate: "notadate"})
	assert.Len(t, got, 3, "el límite que no parsea equivale a ausente")
}

// TestTransactions_ProductoBorradoExcluidoPorCategoria un movimiento cuyo
// producto ya no existe sigue en el libro crudo pero desaparece de las vistas
// filtradas por categoría.
func TestTransactions_ProductoBorradoExcluidoPorCategoria(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)
	_, err := c.Products().Delete("p2")
	require.NoError(t, err)

	raw := engine.Transactions(query.Filter{})
	assert.Len(t, raw, 3, "el libro crudo conserva el movimiento huérfano")

	byCategory := engine.Transactions(query.Filter{Major: "衣類"})
	assert.Equal(t, []string{"t3", "t1"}, movementIDs(byCategory))
}

func TestOptions_UsadosPrimeroLuegoConfigurados(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)
	require.NoError(t, c.Categories().Create(&entity.Category{ID: "c1", Name: "食品", Type: entity.CategoryMajor}))
	require.NoError(t, c.Categories().Create(&entity.Category{ID: "c2", Name: "衣類", Type: entity.CategoryMajor}))

	got := engine.Options(entity.CategoryMajor)
	assert.Equal(t, []string{"衣類", "服飾雑貨", "食品"}, got,
		"valores en uso primero, configurados después, sin repetidos")
}

// TestOptions_ValorVivoSinEntradaConfigurada el vocabulario se auto-repara: un
// valor usado por productos aparece aunque su entrada de taxonomía no exista.
func TestOptions_ValorVivoSinEntradaConfigurada(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)

	got := engine.Options(entity.CategoryMedium)
	assert.Equal(t, []string{"トップス", "ボトムス"}, got)
}

func TestCategoryPaths_RutasCompletas(t *testing.T) {
	engine, c := newEngine(t)
	seedCatalog(t, c)

	paths := engine.CategoryPaths()
	assert.Equal(t, "衣類 > トップス > 半袖", paths["Tシャツ"])
	assert.Equal(t, "衣類 > ボトムス", paths["デニムパンツ"], "los niveles vacíos no dejan separadores colgantes")
	assert.Equal(t, "服飾雑貨", paths["レザーベルト"])
}

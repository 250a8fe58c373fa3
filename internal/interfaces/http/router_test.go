package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikiya/zaiko-api/internal/application/inventory"
	"github.com/nikiya/zaiko-api/internal/application/query"
	"github.com/nikiya/zaiko-api/internal/application/report"
	"github.com/nikiya/zaiko-api/internal/application/usecase"
	"github.com/nikiya/zaiko-api/internal/domain/entity"
	infraexcel "github.com/nikiya/zaiko-api/internal/infrastructure/excel"
	infrapdf "github.com/nikiya/zaiko-api/internal/infrastructure/pdf"
	"github.com/nikiya/zaiko-api/internal/infrastructure/state"
	"github.com/nikiya/zaiko-api/internal/infrastructure/storage"
	apphttp "github.com/nikiya/zaiko-api/internal/interfaces/http"
	"github.com/nikiya/zaiko-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación completa sobre un contenedor vacío en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *state.Container) {
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

	engine := query.NewEngine(c.Products(), c.Transactions(), c.Categories())
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(c.Products(), c.Transactions()),
		CategoryUC:  usecase.NewCategoryUseCase(c.Categories()),
		ReferenceUC: usecase.NewReferenceUseCase(c.Staff(), c.Destinations()),
		UpdateStock: inventory.NewUpdateStockUseCase(c.Products(), c.Transactions(), log),
		Engine:      engine,
		Reports:     report.NewBuilder(engine),
		PDF:         infrapdf.NewMarotoReportGenerator(),
		Excel:       infraexcel.NewExcelizeReportWriter(),
	})
	return app, c
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_AltaYListado(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{
		"name": "Tシャツ", "category": "衣類", "stock": 12, "price": "2500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.Product
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.StatusInStock, created.Status)

	resp = doJSON(t, app, http.MethodGet, "/api/products/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Items []entity.Product `json:"items"`
		Total int              `json:"total"`
	}
	decodeBody(t, resp, &list)
	assert.Equal(t, 1, list.Total)
}

func TestProductos_AltaInvalida(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "", "category": "衣類"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_ObtenerInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/products/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductos_BajaConCascada(t *testing.T) {
	app, c := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{
		"name": "帽子", "category": "服飾雑貨", "stock": 5,
	})
	var created entity.Product
	decodeBody(t, resp, &created)
	require.Len(t, c.Transactions().List(), 1, "el alta con stock asienta la entrada inicial")

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, c.Products().List())
	assert.Empty(t, c.Transactions().List(), "la baja arrastra la historia del producto")
}

func TestProductos_FiltroPorQuery(t *testing.T) {
	app, _ := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "Tシャツ", "category": "衣類"})
	doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "ベルト", "category": "服飾雑貨"})

	resp := doJSON(t, app, http.MethodGet, "/api/products/?category=衣類", nil)
	var list struct {
		Items []entity.Product `json:"items"`
		Total int              `json:"total"`
	}
	decodeBody(t, resp, &list)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Tシャツ", list.Items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientos_RegistroYListado(t *testing.T) {
	app, c := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "Tシャツ", "category": "衣類", "stock": 5})

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", fiber.Map{
		"productName": "Tシャツ", "amount": 20, "type": "in", "user": "田中",
	})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	p := c.Products().FirstByName("Tシャツ")
	require.NotNil(t, p)
	assert.Equal(t, 25, p.Stock)

	resp = doJSON(t, app, http.MethodGet, "/api/movements/", nil)
	var list struct {
		Items []entity.Transaction `json:"items"`
		Total int                  `json:"total"`
	}
	decodeBody(t, resp, &list)
	require.Equal(t, 2, list.Total, "la entrada inicial más el movimiento registrado")
	assert.Equal(t, 20, list.Items[0].Amount, "el más reciente primero")
}

func TestMovimientos_ProductoInexistenteEsAceptado(t *testing.T) {
	app, c := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", fiber.Map{
		"productName": "存在しない", "amount": 3, "type": "in",
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode, "el no-op silencioso no es un error HTTP")
	assert.Empty(t, c.Transactions().List())
}

func TestMovimientos_InputInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/movements/", fiber.Map{
		"productName": "Tシャツ", "amount": 0, "type": "in",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías y referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_AltaYOpciones(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/categories/", fiber.Map{"name": "衣類", "type": "major"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "コート", "category": "アウター用"})

	resp = doJSON(t, app, http.MethodGet, "/api/categories/options?type=major", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var options []string
	decodeBody(t, resp, &options)
	assert.Equal(t, []string{"アウター用", "衣類"}, options, "valores en uso primero, configurados después")
}

func TestCategorias_OpcionesNivelInvalido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories/options?type=mega", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReferencias_AltaYBaja(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/staff/", fiber.Map{"name": "田中"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var s entity.Staff
	decodeBody(t, resp, &s)

	resp = doJSON(t, app, http.MethodDelete, "/api/staff/"+s.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/destinations/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReportes_InventarioPDF(t *testing.T) {
	app, _ := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "Tシャツ", "category": "衣類", "stock": 12, "price": "2500"})

	resp := doJSON(t, app, http.MethodGet, "/api/reports/inventory?orientation=landscape", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

func TestReportes_HistorialXLSX(t *testing.T) {
	app, _ := buildTestApp(t)
	doJSON(t, app, http.MethodPost, "/api/products/", fiber.Map{"name": "Tシャツ", "category": "衣類", "stock": 12})

	resp := doJSON(t, app, http.MethodGet, "/api/reports/history?format=xlsx&start=1&end=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, data)
	assert.Equal(t, byte('P'), data[0], "un .xlsx es un contenedor ZIP")
}

func TestReportes_FormatoDesconocido(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/reports/inventory?format=csv", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

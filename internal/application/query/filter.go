// Package query implementa el motor de filtrado de solo lectura: predicados
// opcionales combinados con AND sobre productos o movimientos, más el vocabulario
// efectivo de cada nivel de la taxonomía. Funciones puras del estado actual:
// seguras de recalcular en cada cambio de input.
package query

import (
	"strings"
	"time"

	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/domain/repository"
)

// Filter inputs de filtrado. Campo vacío = predicado ausente (siempre verdadero).
// StartDate y EndDate llegan como fechas de calendario (2006-01-02) y se
// normalizan al inicio y fin de su día.
type Filter struct {
	Name      string
	StartDate string
	EndDate   string
	Major     string
	Medium    string
	Minor     string
}

// DateInputLayout formato de los límites de fecha del filtro.
const DateInputLayout = "2006-01-02"

// Engine resuelve los filtros contra el estado actual.
type Engine struct {
	products     repository.ProductRepository
	transactions repository.TransactionRepository
	categories   repository.CategoryRepository
}

// NewEngine construye el motor.
func NewEngine(products repository.ProductRepository, transactions repository.TransactionRepository, categories repository.CategoryRepository) *Engine {
	return &Engine{products: products, transactions: transactions, categories: categories}
}

// Products devuelve los productos que pasan todos los predicados, en orden de
// registro. La ventana de fechas no aplica a productos.
func (e *Engine) Products(f Filter) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range e.products.List() {
		if f.Name != "" && !containsFold(p.Name, f.Name) {
			continue
		}
		if f.Major != "" && p.Category != f.Major {
			continue
		}
		if f.Medium != "" && p.MediumCategory != f.Medium {
			continue
		}
		if f.Minor != "" && p.SmallCategory != f.Minor {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Transactions devuelve los movimientos que pasan todos los predicados, en orden
// de libro (más reciente primero). El predicado de categorías se resuelve vía el
// mapa nombre→niveles de los productos actuales: un movimiento cuyo producto ya
// no existe queda excluido de las vistas filtradas por categoría aunque siga en
// el libro crudo.
func (e *Engine) Transactions(f Filter) []entity.Transaction {
	start, end := f.dateBounds()
	byCategory := f.Major != "" || f.Medium != "" || f.Minor != ""
	var paths map[string]categoryPath
	if byCategory {
		paths = e.categoryIndex()
	}

	out := make([]entity.Transaction, 0)
	for _, t := range e.transactions.List() {
		if f.Name != "" && !containsFold(t.ProductName, f.Name) {
			continue
		}
		if start != nil || end != nil {
			ts, err := t.ParseDate()
			if err != nil {
				continue
			}
			if start != nil && ts.Before(*start) {
				continue
			}
			if end != nil && ts.After(*end) {
				continue
			}
		}
		if byCategory {
			path, known := paths[t.ProductName]
			if !known {
				continue
			}
			if f.Major != "" && path.major != f.Major {
				continue
			}
			if f.Medium != "" && path.medium != f.Medium {
				continue
			}
			if f.Minor != "" && path.minor != f.Minor {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Options devuelve el vocabulario efectivo de un nivel: la unión de los valores
// en uso por algún producto y los nombres configurados en la taxonomía, en ese
// orden y sin repetidos. Así el filtro nunca oculta valores vivos aunque la
// entrada de taxonomía se haya renombrado o borrado.
func (e *Engine) Options(level string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	for _, p := range e.products.List() {
		switch level {
		case entity.CategoryMajor:
			add(p.Category)
		case entity.CategoryMedium:
			add(p.MediumCategory)
		case entity.CategoryMinor:
			add(p.SmallCategory)
		}
	}
	for _, c := range e.categories.ListByType(level) {
		add(c.Name)
	}
	return out
}

// CategoryPaths devuelve el mapa nombre→ruta de categorías ("mayor > medio >
// menor") de los productos actuales, para rotular reportes.
func (e *Engine) CategoryPaths() map[string]string {
	out := make(map[string]string)
	for _, p := range e.products.List() {
		out[p.Name] = p.CategoryPath()
	}
	return out
}

type categoryPath struct {
	major, medium, minor string
}

// categoryIndex construye el mapa nombre→niveles. Con nombres duplicados el
// último registrado pisa al anterior, igual que el snapshot de productos que ve
// la pantalla.
func (e *Engine) categoryIndex() map[string]categoryPath {
	out := make(map[string]categoryPath)
	for _, p := range e.products.List() {
		out[p.Name] = categoryPath{major: p.Category, medium: p.MediumCategory, minor: p.SmallCategory}
	}
	return out
}

// dateBounds normaliza los límites: inicio al 00:00:00.000 del día, fin al
// 23:59:59.999. Un límite que no parsea se trata como ausente.
func (f Filter) dateBounds() (start, end *time.Time) {
	if f.StartDate != "" {
		if d, err := time.ParseInLocation(DateInputLayout, f.StartDate, time.Local); err == nil {
			start = &d
		}
	}
	if f.EndDate != "" {
		if d, err := time.ParseInLocation(DateInputLayout, f.EndDate, time.Local); err == nil {
			e := d.Add(24*time.Hour - time.Millisecond)
			end = &e
		}
	}
	return start, end
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

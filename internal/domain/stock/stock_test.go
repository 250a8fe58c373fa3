package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikiya/zaiko-api/internal/domain/entity"
	"github.com/nikiya/zaiko-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// StatusFor: el estado es función pura de la cantidad. Cero es agotado, entre
// uno y nueve es stock bajo, y desde diez en adelante es stock normal.
// ──────────────────────────────────────────────────────────────────────────────

func TestStatusFor_Umbrales(t *testing.T) {
	cases := []struct {
		qty  int
		want string
	}{
		{0, entity.StatusOutOfStock},
		{1, entity.StatusLowStock},
		{9, entity.StatusLowStock},
		{10, entity.StatusInStock},
		{250, entity.StatusInStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stock.StatusFor(tc.qty), "qty=%d", tc.qty)
	}
}

func TestApply_EntradaSumaYSalidaResta(t *testing.T) {
	assert.Equal(t, 25, stock.Apply(5, 20, entity.MovementIn))
	assert.Equal(t, 5, stock.Apply(25, 20, entity.MovementOut))
}

// TestApply_PisoEnCero verifica que una salida mayor al disponible deja el
// nivel exactamente en cero, nunca en negativo.
func TestApply_PisoEnCero(t *testing.T) {
	assert.Equal(t, 0, stock.Apply(25, 30, entity.MovementOut))
	assert.Equal(t, 0, stock.Apply(0, 1, entity.MovementOut))
}

func TestSignedAmount_SignoPorDireccion(t *testing.T) {
	assert.Equal(t, 20, stock.SignedAmount(20, entity.MovementIn))
	assert.Equal(t, -30, stock.SignedAmount(30, entity.MovementOut))
}

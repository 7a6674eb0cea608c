package catalogue_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/teerex-store/internal/domain/catalogue"
	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

func product(id int, name, color, gender, typ string, price int64, qty int) entity.Product {
	return entity.Product{
		ID: id, Name: name, Color: color, Gender: gender, Type: typ,
		Price: decimal.NewFromInt(price), Quantity: qty,
	}
}

func testCatalogue() []entity.Product {
	return []entity.Product{
		product(1, "Black Polo", "Black", "Men", "Polo", 250, 3),
		product(2, "Blue Hoodie", "Blue", "Women", "Hoodie", 500, 2),
		product(3, "Red Round", "Red", "Men", "Round", 251, 0),
		product(4, "Green Basic", "Green", "Unisex", "Basic", 300, 5),
		product(5, "Pink Polo", "Pink", "Women", "Polo", 850, 1),
		product(6, "White Basic", "White", "Men", "Basic", 100, 4),
	}
}

func ids(products []entity.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func bucket(t *testing.T, value string) *catalogue.PriceBucket {
	t.Helper()
	b, ok := catalogue.ParsePriceBucket(value)
	require.True(t, ok, "el rango %q debe existir", value)
	return &b
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_SinFiltros_DevuelveCatalogoEnOrden(t *testing.T) {
	got := catalogue.Apply(testCatalogue(), catalogue.FilterState{})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(got))
}

func TestApply_BusquedaIgnoraMayusculas(t *testing.T) {
	got := catalogue.Apply(testCatalogue(), catalogue.FilterState{Search: "RED"})
	assert.Equal(t, []int{3}, ids(got), "RED debe coincidir con el color Red")
}

func TestApply_BusquedaEnNombreColorOTipo(t *testing.T) {
	cat := testCatalogue()

	assert.Equal(t, []int{1, 5}, ids(catalogue.Apply(cat, catalogue.FilterState{Search: "polo"})))
	assert.Equal(t, []int{2}, ids(catalogue.Apply(cat, catalogue.FilterState{Search: "hood"})))
	assert.Equal(t, []int{4, 6}, ids(catalogue.Apply(cat, catalogue.FilterState{Search: "basic"})))
	assert.Empty(t, catalogue.Apply(cat, catalogue.FilterState{Search: "women"}),
		"el género no participa en la búsqueda libre")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros exactos
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_FiltrosExactosSinDistinguirMayusculas(t *testing.T) {
	cat := testCatalogue()

	assert.Equal(t, []int{2}, ids(catalogue.Apply(cat, catalogue.FilterState{Color: "blue"})))
	assert.Equal(t, []int{2, 5}, ids(catalogue.Apply(cat, catalogue.FilterState{Gender: "WOMEN"})))
	assert.Equal(t, []int{4, 6}, ids(catalogue.Apply(cat, catalogue.FilterState{Type: "Basic"})))
	assert.Empty(t, catalogue.Apply(cat, catalogue.FilterState{Color: "Bl"}),
		"el filtro de color es exacto, no substring")
}

func TestApply_FiltrosSeCombinanConAND(t *testing.T) {
	got := catalogue.Apply(testCatalogue(), catalogue.FilterState{
		Gender: "Men",
		Type:   "Basic",
		Price:  bucket(t, "0-250"),
	})
	assert.Equal(t, []int{6}, ids(got))

	got = catalogue.Apply(testCatalogue(), catalogue.FilterState{
		Search: "polo",
		Color:  "Pink",
		Gender: "Men",
	})
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rangos de precio
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_RangoPrecioIncluyeExtremos(t *testing.T) {
	cat := testCatalogue()

	got := catalogue.Apply(cat, catalogue.FilterState{Price: bucket(t, "0-250")})
	assert.Equal(t, []int{1, 6}, ids(got), "250 entra en 0-250 y 251 no")

	got = catalogue.Apply(cat, catalogue.FilterState{Price: bucket(t, "251-450")})
	assert.Equal(t, []int{3, 4}, ids(got))

	got = catalogue.Apply(cat, catalogue.FilterState{Price: bucket(t, "451-850")})
	assert.Equal(t, []int{2, 5}, ids(got), "850 entra en 451-850")
}

func TestParsePriceBucket_ValoresDesconocidos(t *testing.T) {
	_, ok := catalogue.ParsePriceBucket("")
	assert.False(t, ok)

	_, ok = catalogue.ParsePriceBucket("0-1000")
	assert.False(t, ok)

	b, ok := catalogue.ParsePriceBucket(" 251-450 ")
	require.True(t, ok)
	assert.Equal(t, "251 - 450", b.Label)
	assert.True(t, b.Contains(decimal.NewFromInt(251)))
	assert.False(t, b.Contains(decimal.NewFromInt(250)))
}

func TestPriceBuckets_SinSolapamiento(t *testing.T) {
	buckets := catalogue.PriceBuckets()
	require.Len(t, buckets, 3)
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i].Min.GreaterThan(buckets[i-1].Max),
			"el rango %s debe empezar después de %s", buckets[i].Value, buckets[i-1].Value)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_Idempotente(t *testing.T) {
	cat := testCatalogue()
	f := catalogue.FilterState{Search: "o", Gender: "men", Price: bucket(t, "0-250")}

	once := catalogue.Apply(cat, f)
	twice := catalogue.Apply(once, f)
	assert.Equal(t, ids(once), ids(twice))
	assert.Equal(t, ids(once), ids(catalogue.Apply(cat, f)), "misma entrada, mismo resultado")
}

func TestApply_ResetDevuelveOrdenOriginal(t *testing.T) {
	cat := testCatalogue()
	f := catalogue.FilterState{Color: "Red", Type: "Round"}
	require.NotEmpty(t, catalogue.Apply(cat, f))
	require.False(t, f.IsZero())

	reset := catalogue.FilterState{}
	assert.True(t, reset.IsZero())
	assert.Equal(t, ids(cat), ids(catalogue.Apply(cat, reset)))
}

func TestApply_NoModificaLaEntrada(t *testing.T) {
	cat := testCatalogue()
	_ = catalogue.Apply(cat, catalogue.FilterState{Color: "Green"})
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(cat))
}

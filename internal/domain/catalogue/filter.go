// Package catalogue contiene el motor de búsqueda y filtros del catálogo.
// Es puro: no guarda estado más allá del FilterState que recibe.
package catalogue

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

// FilterState selección actual de búsqueda y filtros. Cadena vacía (o Price nil) = sin filtro.
type FilterState struct {
	Search string
	Color  string
	Gender string
	Type   string
	Price  *PriceBucket
}

// IsZero indica si no hay ningún filtro activo.
func (f FilterState) IsZero() bool {
	return f.Search == "" && f.Color == "" && f.Gender == "" && f.Type == "" && f.Price == nil
}

// Apply devuelve los productos que cumplen TODOS los filtros, en el orden del catálogo.
// Nunca reordena ni modifica la lista de entrada.
func Apply(products []entity.Product, f FilterState) []entity.Product {
	fold := cases.Fold()
	search := fold.String(f.Search)
	color := fold.String(f.Color)
	gender := fold.String(f.Gender)
	typ := fold.String(f.Type)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(fold, p, search) {
			continue
		}
		if color != "" && fold.String(p.Color) != color {
			continue
		}
		if gender != "" && fold.String(p.Gender) != gender {
			continue
		}
		if typ != "" && fold.String(p.Type) != typ {
			continue
		}
		if f.Price != nil && !f.Price.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesSearch: substring sin distinguir mayúsculas en nombre, color o tipo.
func matchesSearch(fold cases.Caser, p entity.Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(fold.String(p.Name), search) ||
		strings.Contains(fold.String(p.Color), search) ||
		strings.Contains(fold.String(p.Type), search)
}

// PriceBucket rango de precio inclusivo [Min, Max].
type PriceBucket struct {
	Value string // "0-250", valor de formulario
	Label string // "0 - 250", texto visible
	Min   decimal.Decimal
	Max   decimal.Decimal
}

// Contains indica si price está dentro del rango (ambos extremos incluidos).
func (b PriceBucket) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(b.Min) && price.LessThanOrEqual(b.Max)
}

func bucket(min, max int64, value, label string) PriceBucket {
	return PriceBucket{
		Value: value,
		Label: label,
		Min:   decimal.NewFromInt(min),
		Max:   decimal.NewFromInt(max),
	}
}

// Rangos fijos, sin solapamiento.
var priceBuckets = []PriceBucket{
	bucket(0, 250, "0-250", "0 - 250"),
	bucket(251, 450, "251-450", "251 - 450"),
	bucket(451, 850, "451-850", "451 - 850"),
}

// PriceBuckets devuelve una copia de los rangos de precio disponibles.
func PriceBuckets() []PriceBucket {
	out := make([]PriceBucket, len(priceBuckets))
	copy(out, priceBuckets)
	return out
}

// ParsePriceBucket resuelve un valor de formulario ("251-450") a su rango.
// Valores vacíos o desconocidos devuelven ok=false (sin filtro).
func ParsePriceBucket(value string) (PriceBucket, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return PriceBucket{}, false
	}
	for _, b := range priceBuckets {
		if b.Value == value {
			return b, true
		}
	}
	return PriceBucket{}, false
}

// Opciones que muestra la barra lateral de filtros.
var (
	Colors  = []string{"Red", "Blue", "Green", "Pink", "Black", "White"}
	Genders = []string{"Men", "Women", "Unisex"}
	Types   = []string{"Polo", "Hoodie", "Basic", "Round"}
)

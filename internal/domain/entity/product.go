package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo externo. Es inmutable dentro de la aplicación.
// Quantity es el stock disponible publicado por el catálogo.
type Product struct {
	ID       int
	Name     string
	Color    string
	Gender   string
	Type     string
	Price    decimal.Decimal
	ImageURL string
	Quantity int
}

// InStock indica si el catálogo publica al menos una unidad.
func (p Product) InStock() bool {
	return p.Quantity > 0
}

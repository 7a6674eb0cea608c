package entity

import "github.com/shopspring/decimal"

// CartLine una línea del carrito: el producto, la cantidad elegida y el tope de stock
// capturado al agregarlo. Invariante: 1 <= Quantity <= Stock.
type CartLine struct {
	Product
	Quantity int // cantidad en el carrito (oculta Product.Quantity)
	Stock    int // tope capturado en el momento de agregar; no se re-sincroniza
}

// Subtotal precio x cantidad.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// AtCeiling indica si la línea ya alcanzó su tope de stock.
func (l CartLine) AtCeiling() bool {
	return l.Quantity >= l.Stock
}

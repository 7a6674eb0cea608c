package dto

import "github.com/shopspring/decimal"

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Color        string          `json:"color"`
	Gender       string          `json:"gender"`
	Type         string          `json:"type"`
	ImageURL     string          `json:"imageURL"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Stock        int             `json:"stock"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	CanIncrement bool            `json:"can_increment"`
}

// CartResponse carrito de la sesión con el resumen de totales.
// Shipping y Tax son siempre 0: no hay cálculo de impuestos ni envío.
type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Count    int                `json:"count"`
	Units    int                `json:"units"`
	Subtotal decimal.Decimal    `json:"subtotal"`
	Shipping decimal.Decimal    `json:"shipping"`
	Tax      decimal.Decimal    `json:"tax"`
	Total    decimal.Decimal    `json:"total"`
	Notices  []NoticeResponse   `json:"notices,omitempty"`
}

// Empty indica si el carrito no tiene líneas.
func (c CartResponse) Empty() bool { return len(c.Lines) == 0 }

package dto

import "github.com/shopspring/decimal"

// CatalogueQuery filtros recibidos por query string / formulario.
type CatalogueQuery struct {
	Search string `query:"search"`
	Color  string `query:"color"`
	Gender string `query:"gender"`
	Type   string `query:"type"`
	Price  string `query:"price"`
}

// ProductResponse producto del catálogo con su estado en el carrito de la sesión.
type ProductResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Color        string          `json:"color"`
	Gender       string          `json:"gender"`
	Type         string          `json:"type"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"imageURL"`
	Stock        int             `json:"quantity"`
	InCart       bool            `json:"in_cart"`
	CartQuantity int             `json:"cart_quantity"`
	OutOfStock   bool            `json:"out_of_stock"`
	CanIncrement bool            `json:"can_increment"`
}

// FilterOption opción de un grupo de radios.
type FilterOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FilterOptions grupos de la barra lateral.
type FilterOptions struct {
	Colors  []FilterOption `json:"colors"`
	Genders []FilterOption `json:"genders"`
	Prices  []FilterOption `json:"prices"`
	Types   []FilterOption `json:"types"`
}

// CatalogueView respuesta de la vista de catálogo.
type CatalogueView struct {
	Status    string            `json:"status"` // loading | ready | failed
	Error     string            `json:"error,omitempty"`
	Query     CatalogueQuery    `json:"query"`
	Filtered  bool              `json:"filtered"`
	Products  []ProductResponse `json:"products"`
	Total     int               `json:"total"`
	CartCount int               `json:"cart_count"`
	Filters   FilterOptions     `json:"filters"`
}

// Loading indica si el catálogo aún no terminó de cargar.
func (v CatalogueView) Loading() bool { return v.Status == "loading" }

// Failed indica si la carga del catálogo falló.
func (v CatalogueView) Failed() bool { return v.Status == "failed" }

// Empty indica que el catálogo cargó pero ningún producto pasa los filtros.
func (v CatalogueView) Empty() bool { return v.Status == "ready" && len(v.Products) == 0 }

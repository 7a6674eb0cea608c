package usecase

import (
	"strings"

	appcatalogue "github.com/jhoicas/teerex-store/internal/application/catalogue"
	"github.com/jhoicas/teerex-store/internal/application/dto"
	"github.com/jhoicas/teerex-store/internal/application/ports"
	"github.com/jhoicas/teerex-store/internal/domain/cart"
	"github.com/jhoicas/teerex-store/internal/domain/catalogue"
	"github.com/jhoicas/teerex-store/internal/domain/entity"
	"github.com/jhoicas/teerex-store/internal/domain/repository"
)

// CatalogueUseCase vista de catálogo: estado de carga + filtros + estado del carrito de la sesión.
type CatalogueUseCase struct {
	catalogue ports.CatalogueReader
	sessions  repository.CartSessionRepository
}

// NewCatalogueUseCase construye el caso de uso.
func NewCatalogueUseCase(reader ports.CatalogueReader, sessions repository.CartSessionRepository) *CatalogueUseCase {
	return &CatalogueUseCase{catalogue: reader, sessions: sessions}
}

// FilterFromQuery traduce la query del formulario a FilterState. Un rango de precio
// desconocido se ignora (equivale a "All").
func FilterFromQuery(q dto.CatalogueQuery) catalogue.FilterState {
	f := catalogue.FilterState{
		Search: strings.TrimSpace(q.Search),
		Color:  strings.TrimSpace(q.Color),
		Gender: strings.TrimSpace(q.Gender),
		Type:   strings.TrimSpace(q.Type),
	}
	if b, ok := catalogue.ParsePriceBucket(q.Price); ok {
		f.Price = &b
	}
	return f
}

// CanonicalQuery normaliza la query a los valores de las opciones del formulario
// ("red" -> "Red"). Un rango de precio desconocido se descarta.
func CanonicalQuery(q dto.CatalogueQuery) dto.CatalogueQuery {
	out := dto.CatalogueQuery{
		Search: strings.TrimSpace(q.Search),
		Color:  canonicalOption(catalogue.Colors, q.Color),
		Gender: canonicalOption(catalogue.Genders, q.Gender),
		Type:   canonicalOption(catalogue.Types, q.Type),
	}
	if b, ok := catalogue.ParsePriceBucket(q.Price); ok {
		out.Price = b.Value
	}
	return out
}

func canonicalOption(values []string, v string) string {
	v = strings.TrimSpace(v)
	for _, opt := range values {
		if strings.EqualFold(opt, v) {
			return opt
		}
	}
	return v
}

// Browse arma la vista del catálogo para la sesión.
func (uc *CatalogueUseCase) Browse(sessionID string, q dto.CatalogueQuery) dto.CatalogueView {
	session := uc.sessions.GetOrCreate(sessionID)
	st := uc.catalogue.State()
	q = CanonicalQuery(q)

	view := dto.CatalogueView{
		Status:    string(st.Status),
		Query:     q,
		Filtered:  !FilterFromQuery(q).IsZero(),
		Products:  []dto.ProductResponse{},
		CartCount: session.Cart.Len(),
		Filters:   filterOptions(q),
	}

	switch st.Status {
	case appcatalogue.StatusFailed:
		view.Error = st.Message
		return view
	case appcatalogue.StatusLoading:
		return view
	}

	visible := catalogue.Apply(st.Products, FilterFromQuery(q))
	view.Products = make([]dto.ProductResponse, 0, len(visible))
	for _, p := range visible {
		view.Products = append(view.Products, toProductResponse(p, session.Cart))
	}
	view.Total = len(view.Products)
	return view
}

func toProductResponse(p entity.Product, c *cart.Store) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Color:      p.Color,
		Gender:     p.Gender,
		Type:       p.Type,
		Price:      p.Price,
		ImageURL:   p.ImageURL,
		Stock:      p.Quantity,
		OutOfStock: !p.InStock(),
	}
	if line, ok := c.Line(p.ID); ok {
		out.InCart = true
		out.CartQuantity = line.Quantity
		out.CanIncrement = !line.AtCeiling()
		out.OutOfStock = out.OutOfStock || line.AtCeiling()
	}
	return out
}

// filterOptions espera la query ya normalizada por CanonicalQuery.
func filterOptions(q dto.CatalogueQuery) dto.FilterOptions {
	group := func(values []string, selected string) []dto.FilterOption {
		opts := []dto.FilterOption{{Value: "", Label: "All", Selected: selected == ""}}
		for _, v := range values {
			opts = append(opts, dto.FilterOption{Value: v, Label: v, Selected: v == selected})
		}
		return opts
	}

	prices := []dto.FilterOption{{Value: "", Label: "All", Selected: q.Price == ""}}
	for _, b := range catalogue.PriceBuckets() {
		prices = append(prices, dto.FilterOption{Value: b.Value, Label: b.Label, Selected: b.Value == q.Price})
	}

	return dto.FilterOptions{
		Colors:  group(catalogue.Colors, q.Color),
		Genders: group(catalogue.Genders, q.Gender),
		Prices:  prices,
		Types:   group(catalogue.Types, q.Type),
	}
}

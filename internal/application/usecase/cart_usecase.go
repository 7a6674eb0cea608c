package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	appcatalogue "github.com/jhoicas/teerex-store/internal/application/catalogue"
	"github.com/jhoicas/teerex-store/internal/application/dto"
	"github.com/jhoicas/teerex-store/internal/application/ports"
	"github.com/jhoicas/teerex-store/internal/domain"
	"github.com/jhoicas/teerex-store/internal/domain/cart"
	"github.com/jhoicas/teerex-store/internal/domain/entity"
	"github.com/jhoicas/teerex-store/internal/domain/repository"
)

// CartUseCase operaciones del carrito de una sesión. El carrito pertenece a la sesión;
// el caso de uso solo la localiza y delega en cart.Store.
type CartUseCase struct {
	catalogue ports.CatalogueReader
	sessions  repository.CartSessionRepository
	pdf       ports.CartPDFGenerator
	storeName string
	now       func() time.Time
}

// NewCartUseCase construye el caso de uso. pdf puede ser nil si no se expone el resumen PDF.
func NewCartUseCase(
	reader ports.CatalogueReader,
	sessions repository.CartSessionRepository,
	pdf ports.CartPDFGenerator,
	storeName string,
) *CartUseCase {
	return &CartUseCase{
		catalogue: reader,
		sessions:  sessions,
		pdf:       pdf,
		storeName: storeName,
		now:       time.Now,
	}
}

// Get devuelve el carrito de la sesión (sin consumir avisos).
func (uc *CartUseCase) Get(sessionID string) dto.CartResponse {
	return toCartResponse(uc.sessions.GetOrCreate(sessionID).Cart)
}

// Add agrega el producto del catálogo al carrito con tope = stock publicado.
// Retorna domain.ErrCatalogueUnavailable si el catálogo no está listo y
// domain.ErrNotFound si el producto no existe.
func (uc *CartUseCase) Add(sessionID string, productID int) (dto.CartResponse, error) {
	if uc.catalogue.State().Status != appcatalogue.StatusReady {
		return dto.CartResponse{}, domain.ErrCatalogueUnavailable
	}
	p, ok := uc.catalogue.Product(productID)
	if !ok {
		return dto.CartResponse{}, domain.ErrNotFound
	}
	c := uc.sessions.GetOrCreate(sessionID).Cart
	c.AddToCart(p, p.Quantity)
	return toCartResponse(c), nil
}

// Increment suma una unidad a la línea. Sin línea no hace nada.
func (uc *CartUseCase) Increment(sessionID string, productID int) dto.CartResponse {
	c := uc.sessions.GetOrCreate(sessionID).Cart
	c.IncrementQuantity(entity.Product{ID: productID})
	return toCartResponse(c)
}

// Decrement resta una unidad; en cantidad 1 elimina la línea.
func (uc *CartUseCase) Decrement(sessionID string, productID int) dto.CartResponse {
	c := uc.sessions.GetOrCreate(sessionID).Cart
	c.DecrementQuantity(productID)
	return toCartResponse(c)
}

// Remove elimina la línea del producto.
func (uc *CartUseCase) Remove(sessionID string, productID int) dto.CartResponse {
	c := uc.sessions.GetOrCreate(sessionID).Cart
	c.RemoveFromCart(productID)
	return toCartResponse(c)
}

// TakeNotices consume los avisos pendientes de la sesión.
func (uc *CartUseCase) TakeNotices(sessionID string) []dto.NoticeResponse {
	s, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	notices := s.TakeNotices()
	if len(notices) == 0 {
		return nil
	}
	out := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, dto.NoticeResponse{
			Kind:      string(n.Kind),
			ProductID: n.ProductID,
			Product:   n.ProductName,
			Stock:     n.Stock,
			Message:   n.Message,
		})
	}
	return out
}

// SummaryPDF genera el resumen imprimible del carrito.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvalidInput     si no hay generador configurado.
func (uc *CartUseCase) SummaryPDF(ctx context.Context, sessionID string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", domain.ErrInvalidInput
	}
	now := uc.now()
	out := uc.Get(sessionID)
	b, err := uc.pdf.GenerateCartSummaryPDF(ctx, uc.storeName, out, now)
	if err != nil {
		return nil, "", fmt.Errorf("carrito: generar PDF: %w", err)
	}
	return b, fmt.Sprintf("cart-%s.pdf", now.Format("20060102-150405")), nil
}

func toCartResponse(c *cart.Store) dto.CartResponse {
	snap := c.Snapshot()
	out := dto.CartResponse{
		Lines:    make([]dto.CartLineResponse, 0, len(snap.Lines)),
		Count:    len(snap.Lines),
		Units:    snap.Units,
		Subtotal: snap.Total,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
	}
	for _, l := range snap.Lines {
		out.Lines = append(out.Lines, dto.CartLineResponse{
			ID:           l.ID,
			Name:         l.Name,
			Color:        l.Color,
			Gender:       l.Gender,
			Type:         l.Type,
			ImageURL:     l.ImageURL,
			Price:        l.Price,
			Quantity:     l.Quantity,
			Stock:        l.Stock,
			Subtotal:     l.Subtotal(),
			CanIncrement: !l.AtCeiling(),
		})
	}
	out.Total = out.Subtotal.Add(out.Shipping).Add(out.Tax)
	return out
}

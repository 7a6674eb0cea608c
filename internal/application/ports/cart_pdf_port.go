package ports

import (
	"context"
	"time"

	"github.com/jhoicas/teerex-store/internal/application/dto"
)

// CartPDFGenerator define el puerto de salida para el resumen imprimible del carrito.
// Cualquier adaptador (Maroto, mock) debe implementar esta interfaz.
type CartPDFGenerator interface {
	// GenerateCartSummaryPDF genera el PDF del carrito y devuelve sus bytes.
	GenerateCartSummaryPDF(ctx context.Context, storeName string, cart dto.CartResponse, generatedAt time.Time) ([]byte, error)
}

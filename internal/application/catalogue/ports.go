package catalogue

import (
	"context"

	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

// Source obtiene el catálogo completo desde el origen externo.
type Source interface {
	Fetch(ctx context.Context) ([]entity.Product, error)
}

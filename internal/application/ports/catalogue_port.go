package ports

import (
	appcatalogue "github.com/jhoicas/teerex-store/internal/application/catalogue"
	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

// CatalogueReader lectura del catálogo cargado. Lo implementa *catalogue.Loader.
type CatalogueReader interface {
	State() appcatalogue.State
	Product(id int) (entity.Product, bool)
}

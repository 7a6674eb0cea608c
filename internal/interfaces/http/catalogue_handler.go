package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/teerex-store/internal/application/dto"
	"github.com/jhoicas/teerex-store/internal/application/usecase"
)

// CatalogueHandler vista y API del catálogo.
type CatalogueHandler struct {
	uc     *usecase.CatalogueUseCase
	cartUC *usecase.CartUseCase
	views  *Views
}

// NewCatalogueHandler construye el handler.
func NewCatalogueHandler(uc *usecase.CatalogueUseCase, cartUC *usecase.CartUseCase, views *Views) *CatalogueHandler {
	return &CatalogueHandler{uc: uc, cartUC: cartUC, views: views}
}

// Page renderiza el catálogo con los filtros del formulario (GET /).
func (h *CatalogueHandler) Page(c *fiber.Ctx) error {
	var q dto.CatalogueQuery
	if err := c.QueryParser(&q); err != nil {
		q = dto.CatalogueQuery{}
	}
	sid := GetSessionID(c)
	view := h.uc.Browse(sid, q)
	return h.views.RenderCatalogue(c, CataloguePage{
		View:    view,
		Notices: h.cartUC.TakeNotices(sid),
		Return:  catalogueReturn(view.Query),
	})
}

// List godoc
// @Summary      Catálogo filtrado
// @Tags         catalogue
// @Produce      json
// @Param        search  query  string  false  "Texto libre (nombre, color o tipo)"
// @Param        color   query  string  false  "Color exacto"
// @Param        gender  query  string  false  "Género exacto"
// @Param        type    query  string  false  "Tipo exacto"
// @Param        price   query  string  false  "Rango: 0-250 | 251-450 | 451-850"
// @Success      200     {object}  dto.CatalogueView
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/catalogue [get]
func (h *CatalogueHandler) List(c *fiber.Ctx) error {
	var q dto.CatalogueQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	return c.JSON(h.uc.Browse(GetSessionID(c), q))
}

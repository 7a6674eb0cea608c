package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/teerex-store/internal/application/dto"
	"github.com/jhoicas/teerex-store/internal/application/usecase"
	"github.com/jhoicas/teerex-store/internal/domain"
	"github.com/jhoicas/teerex-store/pkg/logger"
)

// CartHandler vista, acciones de formulario y API del carrito de la sesión.
type CartHandler struct {
	uc    *usecase.CartUseCase
	views *Views
	log   *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase, views *Views, log *logger.Logger) *CartHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CartHandler{uc: uc, views: views, log: log}
}

// Page renderiza el carrito (GET /cart).
func (h *CartHandler) Page(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	return h.views.RenderCart(c, CartPage{
		Cart:    h.uc.Get(sid),
		Notices: h.uc.TakeNotices(sid),
	})
}

// ── Acciones de formulario (POST + redirect) ─────────────────────────────────

// FormAction ejecuta add/increment/decrement/remove y vuelve a la vista indicada en "return".
// Los avisos quedan en la sesión y los muestra la siguiente vista.
func (h *CartHandler) FormAction(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ret := safeReturn(c.FormValue("return"), "/")
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.Redirect(ret, fiber.StatusSeeOther)
		}
		sid := GetSessionID(c)
		switch action {
		case "add":
			if _, err := h.uc.Add(sid, id); err != nil {
				// Producto desconocido o catálogo sin cargar: la vista ya refleja ese estado.
				h.log.Debug().Err(err).Int("product_id", id).Msg("agregar al carrito descartado")
			}
		case "increment":
			h.uc.Increment(sid, id)
		case "decrement":
			h.uc.Decrement(sid, id)
		case "remove":
			h.uc.Remove(sid, id)
		default:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "acción desconocida"})
		}
		return c.Redirect(ret, fiber.StatusSeeOther)
	}
}

// ── API JSON ─────────────────────────────────────────────────────────────────

// Get godoc
// @Summary      Carrito de la sesión
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	sid := GetSessionID(c)
	out := h.uc.Get(sid)
	out.Notices = h.uc.TakeNotices(sid)
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito equivale a incrementar. En el tope de stock no cambia nada y devuelve un aviso STOCK_EXHAUSTED.
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
	}
	sid := GetSessionID(c)
	out, err := h.uc.Add(sid, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrCatalogueUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CATALOGUE_UNAVAILABLE", Message: "catálogo no disponible"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	out.Notices = h.uc.TakeNotices(sid)
	return c.JSON(out)
}

// Increment godoc
// @Summary      Incrementar cantidad
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id}/increment [post]
func (h *CartHandler) Increment(c *fiber.Ctx) error {
	return h.mutate(c, h.uc.Increment)
}

// Decrement godoc
// @Summary      Decrementar cantidad (en 1 elimina la línea)
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id}/decrement [post]
func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	return h.mutate(c, h.uc.Decrement)
}

// Remove godoc
// @Summary      Eliminar línea del carrito
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	return h.mutate(c, h.uc.Remove)
}

// SummaryPDF godoc
// @Summary      Resumen del carrito en PDF
// @Tags         cart
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cart/summary.pdf [get]
func (h *CartHandler) SummaryPDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.SummaryPDF(c.UserContext(), GetSessionID(c))
	if err != nil {
		h.log.Error().Err(err).Msg("resumen PDF del carrito")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(b)
}

func (h *CartHandler) mutate(c *fiber.Ctx, op func(sessionID string, productID int) dto.CartResponse) error {
	id, ok := productID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de producto inválido"})
	}
	sid := GetSessionID(c)
	out := op(sid, id)
	out.Notices = h.uc.TakeNotices(sid)
	return c.JSON(out)
}

func productID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/teerex-store/internal/application/dto"
	"github.com/jhoicas/teerex-store/pkg/money"
)

//go:embed views/*.html
var viewFS embed.FS

// qtyArgs datos del control −/+ compartido por ambas vistas.
type qtyArgs struct {
	ID           int
	Quantity     int
	CanIncrement bool
	Return       string
}

// Views plantillas HTML embebidas en el binario.
type Views struct {
	tmpl      *template.Template
	storeName string
}

// NewViews parsea las plantillas. Falla solo si las plantillas embebidas están rotas.
func NewViews(storeName string) (*Views, error) {
	funcs := template.FuncMap{
		"money": money.Format,
		"qtyArgs": func(id, qty int, canIncrement bool, ret string) qtyArgs {
			return qtyArgs{ID: id, Quantity: qty, CanIncrement: canIncrement, Return: ret}
		},
	}
	tmpl, err := template.New("views").Funcs(funcs).ParseFS(viewFS, "views/*.html")
	if err != nil {
		return nil, err
	}
	return &Views{tmpl: tmpl, storeName: storeName}, nil
}

// CataloguePage datos de la vista "/".
type CataloguePage struct {
	StoreName string
	View      dto.CatalogueView
	Notices   []dto.NoticeResponse
	Return    string
}

// CartPage datos de la vista "/cart".
type CartPage struct {
	Cart    dto.CartResponse
	Notices []dto.NoticeResponse
}

// RenderCatalogue escribe la vista del catálogo.
func (v *Views) RenderCatalogue(c *fiber.Ctx, page CataloguePage) error {
	page.StoreName = v.storeName
	return v.render(c, "catalogue", page)
}

// RenderCart escribe la vista del carrito.
func (v *Views) RenderCart(c *fiber.Ctx, page CartPage) error {
	return v.render(c, "cart", page)
}

func (v *Views) render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// catalogueReturn reconstruye "/?filtros" para volver al catálogo con los mismos filtros.
func catalogueReturn(q dto.CatalogueQuery) string {
	vals := url.Values{}
	set := func(k, v string) {
		if strings.TrimSpace(v) != "" {
			vals.Set(k, v)
		}
	}
	set("search", q.Search)
	set("color", q.Color)
	set("gender", q.Gender)
	set("type", q.Type)
	set("price", q.Price)
	if len(vals) == 0 {
		return "/"
	}
	return "/?" + vals.Encode()
}

// safeReturn acepta solo rutas locales ("/..." pero no "//host").
func safeReturn(ret, fallback string) string {
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") || strings.Contains(ret, "\\") {
		return fallback
	}
	return ret
}

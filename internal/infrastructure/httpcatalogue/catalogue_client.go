// Package httpcatalogue obtiene el catálogo de productos desde una URL JSON estática.
package httpcatalogue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/teerex-store/internal/application/catalogue"
	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa catalogue.Source.
var _ catalogue.Source = (*Client)(nil)

// maxBodyBytes tope de lectura del catálogo.
const maxBodyBytes = 8 << 20

// ErrBadStatus el origen respondió con un status distinto de 2xx.
var ErrBadStatus = errors.New("Failed to fetch products")

// Client adaptador HTTP del catálogo. Un único GET, sin parámetros ni cabeceras de auth.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout 0 = sin timeout de red.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// catalogueItem formato del JSON publicado.
type catalogueItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Gender   string          `json:"gender"`
	Type     string          `json:"type"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageURL"`
	Quantity int             `json:"quantity"`
}

// Fetch descarga y decodifica el catálogo.
func (c *Client) Fetch(ctx context.Context) ([]entity.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catálogo: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("catálogo: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("catálogo: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drenar para reutilizar la conexión.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return nil, fmt.Errorf("%w (HTTP %d)", ErrBadStatus, resp.StatusCode)
	}

	var items []catalogueItem
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&items); err != nil {
		return nil, fmt.Errorf("catálogo: deserializar respuesta: %w", err)
	}

	products := make([]entity.Product, 0, len(items))
	for _, it := range items {
		p, err := toProduct(it)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func toProduct(it catalogueItem) (entity.Product, error) {
	if it.Price.IsNegative() {
		return entity.Product{}, fmt.Errorf("catálogo: producto %d con precio negativo", it.ID)
	}
	qty := it.Quantity
	if qty < 0 {
		qty = 0
	}
	return entity.Product{
		ID:       it.ID,
		Name:     it.Name,
		Color:    it.Color,
		Gender:   it.Gender,
		Type:     it.Type,
		Price:    it.Price,
		ImageURL: it.ImageURL,
		Quantity: qty,
	}, nil
}

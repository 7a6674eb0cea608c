// Package cart implementa el estado del carrito: líneas únicas por producto, cantidades
// acotadas por el stock capturado al agregar y el total derivado.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

// Store carrito en memoria de una sesión. Cada mutación se ejecuta completa bajo el mutex,
// de modo que dos operaciones nunca se intercalan.
type Store struct {
	mu       sync.Mutex
	lines    []entity.CartLine
	notifier Notifier
}

// NewStore crea un carrito vacío. notifier puede ser nil (los avisos se descartan).
func NewStore(notifier Notifier) *Store {
	if notifier == nil {
		notifier = discard{}
	}
	return &Store{notifier: notifier}
}

// AddToCart agrega el producto con cantidad 1 y tope stock. Si ya existe una línea
// se comporta como IncrementQuantity (misma regla de tope).
// Un producto nuevo con stock < 1 no se agrega y emite el aviso de stock agotado.
func (s *Store) AddToCart(p entity.Product, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.incrementAt(i)
		return
	}
	if stock < 1 {
		s.notifier.Notify(stockExhausted(p, stock))
		return
	}
	s.lines = append(s.lines, entity.CartLine{Product: p, Quantity: 1, Stock: stock})
}

// IncrementQuantity suma una unidad a la línea del producto si no alcanzó su tope.
// En el tope no cambia nada y emite el aviso de stock agotado. Sin línea: no-op silencioso.
func (s *Store) IncrementQuantity(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.incrementAt(i)
	}
}

// DecrementQuantity resta una unidad; una línea con cantidad 1 se elimina. Sin línea: no-op.
func (s *Store) DecrementQuantity(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	if s.lines[i].Quantity > 1 {
		s.lines[i].Quantity--
		return
	}
	s.removeAt(i)
}

// RemoveFromCart elimina la línea del producto, si existe.
func (s *Store) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.removeAt(i)
	}
}

// TotalPrice suma precio x cantidad de todas las líneas. Se recalcula en cada lectura.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// Snapshot lectura consistente del carrito.
type Snapshot struct {
	Lines []entity.CartLine
	Units int
	Total decimal.Decimal
}

// Snapshot copia líneas (en orden de inserción), unidades y total bajo un mismo lock:
// el total siempre coincide con la suma de las líneas devueltas.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]entity.CartLine, len(s.lines))
	copy(lines, s.lines)
	units := 0
	for _, l := range s.lines {
		units += l.Quantity
	}
	return Snapshot{Lines: lines, Units: units, Total: s.totalLocked()}
}

// Line devuelve la línea del producto, si existe.
func (s *Store) Line(productID int) (entity.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		return s.lines[i], true
	}
	return entity.CartLine{}, false
}

// Len número de líneas (productos distintos).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// ── helpers (requieren s.mu tomado) ──────────────────────────────────────────

func (s *Store) indexOf(productID int) int {
	for i := range s.lines {
		if s.lines[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (s *Store) incrementAt(i int) {
	line := s.lines[i]
	if line.AtCeiling() {
		s.notifier.Notify(stockExhausted(line.Product, line.Stock))
		return
	}
	s.lines[i].Quantity++
}

func (s *Store) removeAt(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}

package cart

import (
	"sync"

	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

// NoticeKind tipo de aviso emitido por el carrito.
type NoticeKind string

// NoticeStockExhausted se intentó superar el tope de stock de una línea.
const NoticeStockExhausted NoticeKind = "STOCK_EXHAUSTED"

// StockExhaustedMessage texto visible del aviso de stock agotado.
const StockExhaustedMessage = "Cannot add more. Out of stock!"

// Notice aviso para el usuario. Se entrega antes de que la operación descartada retorne.
type Notice struct {
	Kind        NoticeKind
	ProductID   int
	ProductName string
	Stock       int
	Message     string
}

// Notifier recibe los avisos del carrito de forma síncrona, con el carrito bloqueado:
// no debe volver a llamar al Store.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapta una función a Notifier.
type NotifierFunc func(Notice)

// Notify implementa Notifier.
func (f NotifierFunc) Notify(n Notice) { f(n) }

type discard struct{}

func (discard) Notify(Notice) {}

func stockExhausted(p entity.Product, stock int) Notice {
	return Notice{
		Kind:        NoticeStockExhausted,
		ProductID:   p.ID,
		ProductName: p.Name,
		Stock:       stock,
		Message:     StockExhaustedMessage,
	}
}

// NoticeQueue acumula avisos hasta que la vista los consume.
type NoticeQueue struct {
	mu      sync.Mutex
	pending []Notice
}

// Notify implementa Notifier.
func (q *NoticeQueue) Notify(n Notice) {
	q.mu.Lock()
	q.pending = append(q.pending, n)
	q.mu.Unlock()
}

// Drain devuelve y vacía los avisos pendientes.
func (q *NoticeQueue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Fanout reenvía cada aviso a todos los notifiers.
type Fanout []Notifier

// Notify implementa Notifier.
func (f Fanout) Notify(n Notice) {
	for _, nt := range f {
		if nt != nil {
			nt.Notify(n)
		}
	}
}

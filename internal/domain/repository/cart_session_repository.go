package repository

import "github.com/jhoicas/teerex-store/internal/domain/cart"

// CartSessionRepository define el puerto del registro de sesiones de carrito (DIP).
// Las sesiones viven solo en memoria del proceso.
type CartSessionRepository interface {
	// GetOrCreate devuelve la sesión id, creándola vacía si no existe o expiró.
	GetOrCreate(id string) *cart.Session
	// Get devuelve la sesión si existe y no expiró.
	Get(id string) (*cart.Session, bool)
	// Len número de sesiones registradas.
	Len() int
}

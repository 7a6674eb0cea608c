// Package memory implementa repositorios en memoria del proceso.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/teerex-store/internal/domain/cart"
	"github.com/jhoicas/teerex-store/internal/domain/repository"
)

var _ repository.CartSessionRepository = (*CartSessionRepository)(nil)

// sweepEvery intervalo mínimo entre barridos de sesiones inactivas.
const sweepEvery = time.Minute

// CartSessionRepository registro de sesiones protegido con RWMutex.
// Las sesiones inactivas más de ttl se descartan en los barridos que hace GetOrCreate.
type CartSessionRepository struct {
	mu        sync.RWMutex
	sessions  map[string]*cart.Session
	ttl       time.Duration
	notifier  cart.Notifier
	now       func() time.Time
	lastSweep time.Time
}

// Option configura el repositorio.
type Option func(*CartSessionRepository)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(r *CartSessionRepository) { r.now = now }
}

// WithNotifier reenvía los avisos de todos los carritos (p. ej. para log).
func WithNotifier(n cart.Notifier) Option {
	return func(r *CartSessionRepository) { r.notifier = n }
}

// NewCartSessionRepository construye el registro.
func NewCartSessionRepository(ttl time.Duration, opts ...Option) *CartSessionRepository {
	r := &CartSessionRepository{
		sessions: make(map[string]*cart.Session),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lastSweep = r.now()
	return r
}

// GetOrCreate devuelve la sesión id (o una nueva) y registra actividad.
func (r *CartSessionRepository) GetOrCreate(id string) *cart.Session {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if now.Sub(r.lastSweep) >= sweepEvery {
		r.sweepLocked(now)
	}

	s, ok := r.sessions[id]
	if !ok || s.Expired(now, r.ttl) {
		s = cart.NewSession(id, now, r.notifier)
		r.sessions[id] = s
		return s
	}
	s.Touch(now)
	return s
}

// Get devuelve la sesión si existe y sigue vigente.
func (r *CartSessionRepository) Get(id string) (*cart.Session, bool) {
	now := r.now()

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || s.Expired(now, r.ttl) {
		return nil, false
	}
	s.Touch(now)
	return s, true
}

// Len número de sesiones registradas (incluye las expiradas aún no barridas).
func (r *CartSessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *CartSessionRepository) sweepLocked(now time.Time) {
	for id, s := range r.sessions {
		if s.Expired(now, r.ttl) {
			delete(r.sessions, id)
		}
	}
	r.lastSweep = now
}

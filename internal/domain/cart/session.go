package cart

import (
	"sync"
	"time"
)

// Session dueña explícita de un carrito. Vive lo que vive la cookie del navegador
// (o hasta que expira por inactividad); nunca se persiste.
type Session struct {
	ID      string
	Cart    *Store
	notices *NoticeQueue

	mu       sync.Mutex
	lastSeen time.Time
}

// NewSession crea una sesión con carrito vacío. Los avisos del carrito se encolan en la
// sesión y, si extra no es nil, también se reenvían a extra.
func NewSession(id string, now time.Time, extra Notifier) *Session {
	q := &NoticeQueue{}
	var n Notifier = q
	if extra != nil {
		n = Fanout{q, extra}
	}
	return &Session{
		ID:       id,
		Cart:     NewStore(n),
		notices:  q,
		lastSeen: now,
	}
}

// TakeNotices consume los avisos pendientes.
func (s *Session) TakeNotices() []Notice {
	return s.notices.Drain()
}

// Touch marca actividad.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen última actividad registrada.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Expired indica si la sesión superó ttl sin actividad.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen()) > ttl
}

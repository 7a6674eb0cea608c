// Package catalogue carga el catálogo una sola vez por arranque y expone su estado.
package catalogue

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/teerex-store/internal/domain/entity"
	"github.com/jhoicas/teerex-store/pkg/logger"
)

// Status estado del cargador.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// FailureMessage texto visible cuando la carga falla.
const FailureMessage = "Failed to fetch products"

// State instantánea del cargador. Products solo tiene datos en StatusReady;
// Message y Detail solo en StatusFailed.
type State struct {
	Status   Status
	Products []entity.Product
	Message  string
	Detail   string
	LoadedAt time.Time
}

// Loader ejecuta un único fetch del catálogo. loading -> ready | failed, ambos terminales:
// no hay reintentos automáticos.
type Loader struct {
	source Source
	log    *logger.Logger

	once sync.Once
	done chan struct{}

	mu    sync.RWMutex
	state State
}

// NewLoader construye el cargador en estado loading.
func NewLoader(source Source, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		source: source,
		log:    log,
		done:   make(chan struct{}),
		state:  State{Status: StatusLoading},
	}
}

// Start lanza el fetch en segundo plano. Llamadas posteriores no hacen nada.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.run(ctx)
	})
}

// Load ejecuta el fetch de forma síncrona (si aún no se ejecutó) y devuelve el estado final.
// Si el fetch ya corre en segundo plano espera a que termine o a que ctx se cancele;
// en ese caso devuelve el estado actual (loading).
func (l *Loader) Load(ctx context.Context) State {
	l.once.Do(func() { l.run(ctx) })
	st, _ := l.Wait(ctx)
	return st
}

// Wait bloquea hasta que la carga termina o ctx se cancela.
func (l *Loader) Wait(ctx context.Context) (State, error) {
	select {
	case <-l.done:
		return l.State(), nil
	case <-ctx.Done():
		return l.State(), ctx.Err()
	}
}

// State devuelve la instantánea actual.
func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Product busca un producto por id en el catálogo cargado.
func (l *Loader) Product(id int) (entity.Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, p := range l.state.Products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)

	l.log.Info().Msg("cargando catálogo")
	products, err := l.source.Fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = State{Status: StatusFailed, Message: FailureMessage, Detail: err.Error()}
		l.log.Error().Err(err).Msg("carga del catálogo fallida")
		return
	}
	if products == nil {
		products = []entity.Product{}
	}
	l.state = State{Status: StatusReady, Products: products, LoadedAt: time.Now()}
	l.log.Info().Int("productos", len(products)).Msg("catálogo listo")
}

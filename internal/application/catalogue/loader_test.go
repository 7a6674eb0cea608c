package catalogue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/teerex-store/internal/application/catalogue"
	"github.com/jhoicas/teerex-store/internal/domain/entity"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSource cuenta llamadas y puede bloquearse hasta que se libere release.
type fakeSource struct {
	calls    atomic.Int32
	products []entity.Product
	err      error
	release  chan struct{}
}

func (f *fakeSource) Fetch(ctx context.Context) ([]entity.Product, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.products, f.err
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Tee", Color: "Red", Type: "Polo", Gender: "Men", Price: decimal.NewFromInt(300), Quantity: 2},
		{ID: 2, Name: "Hoodie", Color: "Blue", Type: "Hoodie", Gender: "Women", Price: decimal.NewFromInt(500), Quantity: 1},
	}
}

func TestLoader_EstadoInicialLoading(t *testing.T) {
	l := catalogue.NewLoader(&fakeSource{}, nil)

	st := l.State()
	assert.Equal(t, catalogue.StatusLoading, st.Status)
	assert.Empty(t, st.Products)
}

func TestLoader_Load_Ready(t *testing.T) {
	src := &fakeSource{products: sampleProducts()}
	l := catalogue.NewLoader(src, nil)

	st := l.Load(context.Background())

	assert.Equal(t, catalogue.StatusReady, st.Status)
	assert.Len(t, st.Products, 2)
	assert.Empty(t, st.Message)

	p, ok := l.Product(2)
	require.True(t, ok)
	assert.Equal(t, "Hoodie", p.Name)
	_, ok = l.Product(99)
	assert.False(t, ok)
}

func TestLoader_Load_Failed(t *testing.T) {
	src := &fakeSource{err: errors.New("HTTP 500")}
	l := catalogue.NewLoader(src, nil)

	st := l.Load(context.Background())

	assert.Equal(t, catalogue.StatusFailed, st.Status)
	assert.Equal(t, catalogue.FailureMessage, st.Message)
	assert.Contains(t, st.Detail, "HTTP 500")
	assert.Empty(t, st.Products)
}

func TestLoader_UnSoloFetch(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	l := catalogue.NewLoader(src, nil)

	l.Start(context.Background())
	l.Start(context.Background())
	_ = l.Load(context.Background())
	_ = l.Load(context.Background())

	assert.Equal(t, int32(1), src.calls.Load(), "failed es terminal: sin reintentos")
}

func TestLoader_StartAsincronoYWait(t *testing.T) {
	src := &fakeSource{products: sampleProducts(), release: make(chan struct{})}
	l := catalogue.NewLoader(src, nil)

	l.Start(context.Background())
	assert.Equal(t, catalogue.StatusLoading, l.State().Status, "mientras el fetch no responde sigue loading")

	close(src.release)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	st, err := l.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalogue.StatusReady, st.Status)
}

func TestLoader_WaitRespetaContexto(t *testing.T) {
	src := &fakeSource{release: make(chan struct{})}
	l := catalogue.NewLoader(src, nil)
	l.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	st, err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, catalogue.StatusLoading, st.Status)

	// Liberar la goroutine del fetch para que goleak no la reporte.
	close(src.release)
	_, err = l.Wait(context.Background())
	require.NoError(t, err)
}

func TestLoader_LoadTrasStart_RespetaContexto(t *testing.T) {
	src := &fakeSource{products: sampleProducts(), release: make(chan struct{})}
	l := catalogue.NewLoader(src, nil)
	l.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	st := l.Load(ctx)
	assert.Equal(t, catalogue.StatusLoading, st.Status, "Load no bloquea más allá de ctx")

	close(src.release)
	st = l.Load(context.Background())
	assert.Equal(t, catalogue.StatusReady, st.Status)
	assert.Equal(t, int32(1), src.calls.Load(), "Load no lanza un segundo fetch")
}

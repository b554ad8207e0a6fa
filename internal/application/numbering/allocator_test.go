package numbering_test

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/cloudonetech/console-api/internal/application/numbering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounterRepo implementa el puerto con la misma garantía que el adaptador
// PostgreSQL: incremento serializado por tipo.
type fakeCounterRepo struct {
	mu      sync.Mutex
	current map[string]int64
	failing bool
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{current: make(map[string]int64)}
}

func (r *fakeCounterRepo) NextValue(_ context.Context, docType string, floor int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return 0, fmt.Errorf("escritura rechazada")
	}
	if _, ok := r.current[docType]; !ok {
		r.current[docType] = floor
	} else {
		r.current[docType]++
	}
	return r.current[docType], nil
}

func (r *fakeCounterRepo) Current(_ context.Context, docType string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current[docType], nil
}

func TestAllocate_PrimerValorEsElPiso(t *testing.T) {
	alloc := numbering.NewSequenceAllocator(newFakeCounterRepo(), 1000)

	num, err := alloc.Allocate(context.Background(), "QTN")
	require.NoError(t, err)
	assert.Equal(t, "QTN-1000", num, "el primer consecutivo arranca en el piso")

	num, err = alloc.Allocate(context.Background(), "QTN")
	require.NoError(t, err)
	assert.Equal(t, "QTN-1001", num)
}

func TestAllocate_TiposIndependientes(t *testing.T) {
	alloc := numbering.NewSequenceAllocator(newFakeCounterRepo(), 1000)

	qtn, err := alloc.Allocate(context.Background(), "QTN")
	require.NoError(t, err)
	inv, err := alloc.Allocate(context.Background(), "INV")
	require.NoError(t, err)

	assert.Equal(t, "QTN-1000", qtn)
	assert.Equal(t, "INV-1000", inv, "cada tipo lleva su propio contador")
}

func TestAllocate_TipoDesconocido(t *testing.T) {
	alloc := numbering.NewSequenceAllocator(newFakeCounterRepo(), 1000)
	_, err := alloc.Allocate(context.Background(), "RCP")
	assert.Error(t, err)
}

// TestAllocate_FalloDePersistenciaNoEmiteNumero: si la escritura falla, la
// asignación falla completa — nunca se devuelve un número sin write durable.
func TestAllocate_FalloDePersistenciaNoEmiteNumero(t *testing.T) {
	repo := newFakeCounterRepo()
	alloc := numbering.NewSequenceAllocator(repo, 1000)

	repo.failing = true
	_, err := alloc.Allocate(context.Background(), "INV")
	require.Error(t, err)

	repo.failing = false
	num, err := alloc.Allocate(context.Background(), "INV")
	require.NoError(t, err)
	assert.Equal(t, "INV-1000", num, "el fallo anterior no debe haber consumido número")
}

// TestAllocate_ConcurrenciaSinDuplicados: N asignaciones concurrentes
// producen números pares-a-pares distintos que forman un rango contiguo
// creciente desde el piso.
func TestAllocate_ConcurrenciaSinDuplicados(t *testing.T) {
	const n = 200
	alloc := numbering.NewSequenceAllocator(newFakeCounterRepo(), 1000)

	results := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			num, err := alloc.Allocate(context.Background(), "INV")
			assert.NoError(t, err)
			results <- num
		}()
	}
	wg.Wait()
	close(results)

	values := make([]int, 0, n)
	seen := make(map[string]bool, n)
	for num := range results {
		assert.False(t, seen[num], "número duplicado: %s", num)
		seen[num] = true
		v, err := strconv.Atoi(strings.TrimPrefix(num, "INV-"))
		require.NoError(t, err)
		values = append(values, v)
	}

	sort.Ints(values)
	require.Len(t, values, n)
	for i, v := range values {
		assert.Equal(t, 1000+i, v, "el rango debe ser contiguo desde el piso")
	}
}

package identifier

import (
	"bytes"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Version7(t *testing.T) {
	id := New()
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())
}

func TestNew_Monotonic(t *testing.T) {
	prev := New()
	for i := 0; i < 10000; i++ {
		next := New()
		require.Equal(t, 1, bytes.Compare(next[:], prev[:]), "id %d did not sort after its predecessor", i)
		prev = next
	}
}

func TestNew_ConcurrentUnique(t *testing.T) {
	const workers, perWorker = 8, 2000

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[uuid.UUID]struct{}, workers*perWorker)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uuid.UUID, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, New())
			}

			// Each goroutine sees its own ids in increasing order.
			assert.True(t, sort.SliceIsSorted(local, func(i, j int) bool {
				return bytes.Compare(local[i][:], local[j][:]) < 0
			}))

			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestSequence(t *testing.T) {
	a := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")
	b := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8058")

	gen := Sequence(a, b)
	assert.Equal(t, a, gen())
	assert.Equal(t, b, gen())
	assert.Equal(t, uuid.Version(7), gen().Version())
}

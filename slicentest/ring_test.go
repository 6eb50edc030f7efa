// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicentest

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBasic(t *testing.T) {
	q := newRing[int](3)
	require.Equal(t, 4, q.Cap())

	for i := range 4 {
		v := i + 100
		require.NoError(t, q.Enqueue(&v), "Enqueue(%d)", i)
	}

	v := 999
	assert.True(t, iox.IsWouldBlock(q.Enqueue(&v)), "Enqueue on full")

	for i := range 4 {
		got, err := q.Dequeue()
		require.NoError(t, err, "Dequeue(%d)", i)
		assert.Equal(t, i+100, got)
	}

	_, err := q.Dequeue()
	assert.True(t, iox.IsWouldBlock(err), "Dequeue on empty")
}

func TestRingWraparound(t *testing.T) {
	q := newRing[[]byte](2)
	for round := range 50 {
		for i := range 2 {
			v := []byte{byte(round), byte(i)}
			require.NoError(t, q.Enqueue(&v))
		}
		for i := range 2 {
			got, err := q.Dequeue()
			require.NoError(t, err)
			assert.Equal(t, []byte{byte(round), byte(i)}, got)
		}
	}
}

func TestRingPanicsOnSmallCapacity(t *testing.T) {
	assert.Panics(t, func() { newRing[int](1) })
}

func TestRoundToPow2(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, 2}, {1, 2}, {2, 2}, {3, 4}, {4, 4}, {1000, 1024}, {1024, 1024},
	} {
		assert.Equal(t, tc.want, roundToPow2(tc.in), "roundToPow2(%d)", tc.in)
	}
}

func TestRingClose(t *testing.T) {
	q := newRing[int](4)

	_, err := q.Dequeue()
	assert.True(t, iox.IsWouldBlock(err), "Dequeue on open empty ring")

	for i := range 3 {
		require.NoError(t, q.Enqueue(&i))
	}
	q.Close()

	v := 7
	assert.ErrorIs(t, q.Enqueue(&v), errRingClosed, "Enqueue after Close")

	for i := range 3 {
		got, err := q.Dequeue()
		require.NoError(t, err, "Dequeue(%d) after Close", i)
		assert.Equal(t, i, got)
	}

	_, err = q.Dequeue()
	assert.ErrorIs(t, err, errRingClosed)
	_, err = q.Dequeue()
	assert.ErrorIs(t, err, errRingClosed, "closed state persists")
}

func TestRingConcurrent(t *testing.T) {
	if RaceEnabled {
		t.Skip("skip: atomix ordering is invisible to the race detector")
	}

	const workers, items = 4, 4000
	q := newRing[int](64)
	seen := make([]atomix.Int32, items)
	var total atomix.Int64
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for {
				v, err := q.Dequeue()
				if err == nil {
					seen[v].Add(1)
					total.Add(1)
					backoff.Reset()
					continue
				}
				if errors.Is(err, errRingClosed) {
					return
				}
				backoff.Wait()
			}
		}()
	}

	backoff := iox.Backoff{}
	for i := range items {
		for q.Enqueue(&i) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}
	q.Close()
	wg.Wait()

	require.Equal(t, int64(items), total.Load())
	for i := range seen {
		require.Equal(t, int32(1), seen[i].Load(), "item %d", i)
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slicentest

import (
	"errors"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// errRingClosed is returned by Dequeue once the ring is closed and every
// published input has been taken, and by Enqueue after Close.
var errRingClosed = errors.New("slicentest: ring closed")

// ring hands raw inputs from the single feeder to the checking workers.
//
// The feeder owns tail and publishes an input by storing tail+1 after
// writing the slot. Workers claim positions below tail by CAS on head. A
// slot's seq holds the next position allowed to write it: the feeder may
// fill position p only when seq == p, and the worker that took p releases
// the slot for the next lap by storing p+capacity.
//
// Close marks the end of input. Workers observe it through Dequeue, which
// reports errRingClosed instead of iox.ErrWouldBlock once nothing is left.
type ring[T any] struct {
	_        pad
	head     atomix.Uint64 // Workers CAS here
	_        pad
	tail     atomix.Uint64 // Feeder publishes here
	_        pad
	closed   atomix.Bool
	_        pad
	buffer   []ringSlot[T]
	mask     uint64
	capacity uint64
}

type ringSlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort
}

// newRing creates a ring. Capacity rounds up to the next power of 2.
func newRing[T any](capacity int) *ring[T] {
	if capacity < 2 {
		panic("slicentest: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	q := &ring[T]{
		buffer:   make([]ringSlot[T], n),
		mask:     n - 1,
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q
}

// Enqueue copies *elem into the ring (feeder only).
// Returns iox.ErrWouldBlock if the ring is full, errRingClosed after Close.
func (q *ring[T]) Enqueue(elem *T) error {
	if q.closed.LoadAcquire() {
		return errRingClosed
	}
	tail := q.tail.LoadRelaxed()
	slot := &q.buffer[tail&q.mask]
	if slot.seq.LoadAcquire() != tail {
		return iox.ErrWouldBlock
	}

	slot.data = *elem
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Close marks the end of input (feeder only). Inputs already enqueued stay
// available to Dequeue.
func (q *ring[T]) Close() {
	q.closed.StoreRelease(true)
}

// Dequeue removes and returns the oldest input (multiple workers safe).
//
// Returns iox.ErrWouldBlock if the ring is empty but still open, and
// errRingClosed if it is empty and closed.
func (q *ring[T]) Dequeue() (T, error) {
	var zero T
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		tail := q.tail.LoadAcquire()

		if head >= tail {
			if !q.closed.LoadAcquire() {
				return zero, iox.ErrWouldBlock
			}
			// The last tail store precedes Close; reload to see it.
			if head >= q.tail.LoadAcquire() {
				return zero, errRingClosed
			}
			continue
		}

		if q.head.CompareAndSwapAcqRel(head, head+1) {
			slot := &q.buffer[head&q.mask]
			elem := slot.data
			slot.data = zero
			slot.seq.StoreRelease(head + q.capacity)
			return elem, nil
		}
		sw.Once()
	}
}

// Cap returns the ring capacity.
func (q *ring[T]) Cap() int {
	return int(q.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort fills the cache line after an 8-byte sequence number.
type padShort [64 - unsafe.Sizeof(uint64(0))]byte

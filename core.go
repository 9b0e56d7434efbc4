// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"github.com/eapache/queue"
)

// core is the shared state of one logical channel. Every handle aliasing
// the channel points at a single core; the last handle to drop tears it
// down via release.
//
// One mutex guards q and closed; both fields are touched only while it is
// held. Two conditions signal the transitions callers wait on: notFull for
// freed capacity, notEmpty for arrived items. Items are boxed into the
// ring FIFO and unboxed on removal, so ownership of a value passes from
// sender to queue to receiver with no concurrent access.
type core[T any] struct {
	cap      int
	mu       sync.Mutex
	notFull  sync.Cond
	notEmpty sync.Cond
	q        *queue.Queue
	closed   bool
	refs     atomix.Int32
	serial   Serial
}

// newCore allocates channel state with a fixed capacity and one
// outstanding handle reference.
func newCore[T any](capacity int) *core[T] {
	c := &core[T]{
		cap:    capacity,
		q:      queue.New(),
		serial: nextSerial(),
	}
	c.notFull.L = &c.mu
	c.notEmpty.L = &c.mu
	c.refs.Add(1)
	return c
}

// send appends v to the tail of the queue, suspending the caller while
// the channel is open and at capacity. Closure is the only other wakeup:
// a send that wakes to a closed channel fails with ErrSendClosed, also
// when the channel was already closed at call time.
func (c *core[T]) send(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrSendClosed
	}
	for c.cap > 0 && c.q.Length() >= c.cap && !c.closed {
		c.notFull.Wait()
	}
	if c.closed {
		return ErrSendClosed
	}
	c.q.Add(v)
	c.notEmpty.Signal()
	return nil
}

// trySend is the non-blocking admission: ErrSendClosed when closed,
// iox.ErrWouldBlock when at capacity, otherwise an immediate append.
func (c *core[T]) trySend(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrSendClosed
	}
	if c.cap > 0 && c.q.Length() >= c.cap {
		return iox.ErrWouldBlock
	}
	c.q.Add(v)
	c.notEmpty.Signal()
	return nil
}

// recv pops the head item, suspending the caller while the channel is
// open and empty. A receive on a closed channel fails with ErrRecvClosed,
// both before waiting and after waking to a concurrent close.
func (c *core[T]) recv() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return zero, ErrRecvClosed
	}
	for c.q.Length() == 0 && !c.closed {
		c.notEmpty.Wait()
	}
	if c.closed {
		return zero, ErrRecvClosed
	}
	v := c.q.Remove().(T)
	c.notFull.Signal()
	return v, nil
}

// tryRecv is the non-blocking probe. An empty queue reports
// iox.ErrWouldBlock without consulting the closed flag: closing drains
// the queue, so an empty closed channel answers exactly like an empty
// open one. Never suspends, never fails.
func (c *core[T]) tryRecv() (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.q.Length() == 0 {
		return zero, iox.ErrWouldBlock
	}
	v := c.q.Remove().(T)
	c.notFull.Signal()
	return v, nil
}

// close transitions the channel to its terminal state: the queue is
// swapped for an empty one (close drains) and every waiter on both
// conditions is released. Closing an already-closed channel reports
// ErrCloseClosed and leaves the state unchanged.
func (c *core[T]) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrCloseClosed
	}
	c.closed = true
	c.q = queue.New()
	c.notFull.Broadcast()
	c.notEmpty.Broadcast()
	return nil
}

// flush discards queued items without touching the closed flag and wakes
// all capacity waiters. Never suspends.
func (c *core[T]) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.q.Length() > 0 {
		c.q = queue.New()
	}
	c.notFull.Broadcast()
}

func (c *core[T]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *core[T]) length() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.q.Length()
}

// retain adds one handle reference.
func (c *core[T]) retain() {
	c.refs.Add(1)
}

// release drops one handle reference. The final reference closes the
// channel if still open and flushes it, so no goroutine stays blocked on
// an abandoned channel and queued items are released promptly. A channel
// the caller closed earlier is only flushed.
func (c *core[T]) release() {
	if c.refs.Add(-1) != 0 {
		return
	}
	if err := c.close(); err != nil {
		c.flush()
	}
}

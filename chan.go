// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

// Chan is the duplex handle over a channel: send, blocking receive,
// non-blocking probe, closed-check, close.
//
// Handles are value types aliasing shared channel state. [Chan.Clone]
// and [Chan.SendOnly] add references to the same channel, never a copy
// of it; each reference obtained from [New], Clone or SendOnly must be
// paired with exactly one Drop. Concurrent calls through different
// aliases are linearized by the channel's internal lock.
type Chan[T any] struct {
	c *core[T]
}

// New creates a channel with the given capacity and returns its first
// duplex handle.
//
// capacity > 0 bounds the queue: Send suspends the caller while that
// many items are buffered. capacity == 0 disables capacity admission
// entirely: the channel is logically unbounded, not a synchronous
// rendezvous. Negative capacities are treated as zero.
func New[T any](capacity int) Chan[T] {
	if capacity < 0 {
		capacity = 0
	}
	return Chan[T]{c: newCore[T](capacity)}
}

// Send passes ownership of v to the channel, appending it to the tail of
// the queue. Blocks while the channel is open and at capacity. Fails
// with [ErrSendClosed] if the channel is closed at call time or becomes
// closed while waiting. May unblock one blocked receiver.
func (ch Chan[T]) Send(v T) error {
	return ch.c.send(v)
}

// TrySend is the non-blocking admission variant of Send: it reports
// [code.hybscloud.com/iox.ErrWouldBlock] instead of suspending when the
// channel is at capacity, and [ErrSendClosed] when closed.
func (ch Chan[T]) TrySend(v T) error {
	return ch.c.trySend(v)
}

// Recv pops and returns the head item, blocking while the channel is
// open and empty. Fails with [ErrRecvClosed] if the channel is closed at
// call time or becomes closed while waiting. May unblock one blocked
// sender.
func (ch Chan[T]) Recv() (T, error) {
	return ch.c.recv()
}

// TryRecv is the non-blocking probe: it never suspends. An empty queue
// reports [code.hybscloud.com/iox.ErrWouldBlock] whether the channel is
// open or closed — closing has already drained the queue, so both look
// the same. A queued item is popped and returned exactly like Recv.
func (ch Chan[T]) TryRecv() (T, error) {
	return ch.c.tryRecv()
}

// Closed reports whether the channel has been closed.
func (ch Chan[T]) Closed() bool {
	return ch.c.isClosed()
}

// Len returns the number of items currently queued.
func (ch Chan[T]) Len() int {
	return ch.c.length()
}

// Serial returns the serial number assigned to the underlying channel.
func (ch Chan[T]) Serial() Serial {
	return ch.c.serial
}

// Close transitions the channel to closed, discarding all queued items
// and waking every blocked sender and receiver with a failure outcome.
// A second close through any handle reports [ErrCloseClosed] and leaves
// the state unchanged.
func (ch Chan[T]) Close() error {
	return ch.c.close()
}

// Flush discards queued items without closing the channel and wakes all
// capacity waiters. Never blocks.
func (ch Chan[T]) Flush() {
	ch.c.flush()
}

// Clone returns a new duplex handle aliasing the same channel.
func (ch Chan[T]) Clone() Chan[T] {
	ch.c.retain()
	return Chan[T]{c: ch.c}
}

// SendOnly derives a send-only handle from this one — a narrowing
// conversion sharing the same channel state. There is no widening
// conversion back.
func (ch Chan[T]) SendOnly() SendChan[T] {
	ch.c.retain()
	return SendChan[T]{c: ch.c}
}

// Drop releases this handle's reference. The last reference to a channel
// closes it if still open and flushes it, releasing every blocked waiter.
// The handle must not be used after Drop.
func (ch Chan[T]) Drop() {
	ch.c.release()
}

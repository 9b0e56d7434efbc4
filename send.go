// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

// SendChan is the send-only handle over a channel: send, closed-check,
// close. The receive operations are not part of its method set, so code
// that tries to receive through a SendChan does not compile — the
// capability restriction is enforced by the type, not by a runtime check.
//
// A SendChan is obtained from [NewSend] or derived from a duplex handle
// via [Chan.SendOnly]; it aliases the same channel state and follows the
// same Clone/Drop reference discipline.
type SendChan[T any] struct {
	c *core[T]
}

// NewSend creates a channel with the given capacity and returns its
// first send-only handle. Capacity semantics are those of [New].
func NewSend[T any](capacity int) SendChan[T] {
	if capacity < 0 {
		capacity = 0
	}
	return SendChan[T]{c: newCore[T](capacity)}
}

// Send passes ownership of v to the channel. Semantics of [Chan.Send].
func (ch SendChan[T]) Send(v T) error {
	return ch.c.send(v)
}

// TrySend is the non-blocking admission. Semantics of [Chan.TrySend].
func (ch SendChan[T]) TrySend(v T) error {
	return ch.c.trySend(v)
}

// Closed reports whether the channel has been closed.
func (ch SendChan[T]) Closed() bool {
	return ch.c.isClosed()
}

// Serial returns the serial number assigned to the underlying channel.
func (ch SendChan[T]) Serial() Serial {
	return ch.c.serial
}

// Close closes the channel. Semantics of [Chan.Close].
func (ch SendChan[T]) Close() error {
	return ch.c.close()
}

// Clone returns a new send-only handle aliasing the same channel.
func (ch SendChan[T]) Clone() SendChan[T] {
	ch.c.retain()
	return SendChan[T]{c: ch.c}
}

// Drop releases this handle's reference. Semantics of [Chan.Drop].
func (ch SendChan[T]) Drop() {
	ch.c.release()
}

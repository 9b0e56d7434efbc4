// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"code.hybscloud.com/kont"
)

// chanDispatcher is the structural interface for channel effect
// operations. DispatchChan is non-blocking: it returns
// iox.ErrWouldBlock at the admission boundary when the channel cannot
// make progress, and a classified closed-channel error on misuse.
type chanDispatcher interface {
	DispatchChan(ch Chan[any]) (kont.Resumed, error)
}

// Send is the effect operation for sending a value of type T.
// Perform(Send[T]{Value: v}) appends v to the channel.
type Send[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchChan handles Send on the channel.
// Non-blocking: returns iox.ErrWouldBlock while the channel is at
// capacity, ErrSendClosed once it is closed.
func (s Send[T]) DispatchChan(ch Chan[any]) (kont.Resumed, error) {
	if err := ch.TrySend(s.Value); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Recv is the effect operation for receiving a value of type T.
// Perform(Recv[T]{}) pops the head item of the channel.
type Recv[T any] struct {
	kont.Phantom[T]
}

// DispatchChan handles Recv on the channel.
// Non-blocking: returns iox.ErrWouldBlock while the channel is empty
// and open, ErrRecvClosed once it is closed (a drained channel never
// refills, so waiting would never complete).
func (Recv[T]) DispatchChan(ch Chan[any]) (kont.Resumed, error) {
	v, err := ch.TryRecv()
	if err != nil {
		if ch.Closed() {
			return nil, ErrRecvClosed
		}
		return nil, err
	}
	return v.(T), nil
}

// Probe is the effect operation for the non-blocking receive.
// Perform(Probe[T]{}) resumes with Right(item) when the channel held a
// queued item and Left when it was empty. It never waits and never
// fails: an empty closed channel answers Left exactly like an empty
// open one.
type Probe[T any] struct {
	kont.Phantom[kont.Either[struct{}, T]]
}

// DispatchChan handles Probe on the channel. Always succeeds.
func (Probe[T]) DispatchChan(ch Chan[any]) (kont.Resumed, error) {
	v, err := ch.TryRecv()
	if err != nil {
		return kont.Left[struct{}, T](struct{}{}), nil
	}
	return kont.Right[struct{}](v.(T)), nil
}

// Close is the effect operation for closing the channel.
// Perform(Close{}) discards queued items and wakes all waiters.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchChan handles Close on the channel. Never blocks; a double
// close reports ErrCloseClosed.
func (Close) DispatchChan(ch Chan[any]) (kont.Resumed, error) {
	if err := ch.Close(); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

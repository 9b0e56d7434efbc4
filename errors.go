// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import "errors"

// Classified closed-channel conditions. All are recoverable failure
// results local to the call that triggered them: a failed send, receive
// or close leaves the channel usable for every other handle.
//
// The non-blocking operations ([Chan.TryRecv], [Chan.TrySend]) report
// [code.hybscloud.com/iox.ErrWouldBlock] when they cannot make progress.
// That is an admission boundary, not a failure.
var (
	// ErrSendClosed reports a send attempted after, or concurrently
	// with, closure of the channel.
	ErrSendClosed = errors.New("chq: send on closed channel")

	// ErrRecvClosed reports a blocking receive attempted after, or
	// concurrently with, closure of the channel.
	ErrRecvClosed = errors.New("chq: receive on closed channel")

	// ErrCloseClosed reports a close of an already-closed channel.
	// Unlike the other conditions it signals a logic bug in the caller
	// rather than a race outcome; it is reported, never swallowed.
	ErrCloseClosed = errors.New("chq: close of closed channel")
)

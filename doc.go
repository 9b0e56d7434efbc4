// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package chq provides a thread-safe blocking message channel with
// capability-restricted handles.
//
// A channel is a FIFO queue coordinating producer and consumer goroutines
// with blocking send/receive and explicit close semantics. Closing discards
// every queued item and releases every blocked caller with a classified
// failure.
//
// # Architecture
//
//   - State: one shared core per channel — a single mutex, two wait
//     conditions, a growable ring FIFO from [github.com/eapache/queue],
//     and a monotonic closed flag. All blocking logic lives here.
//   - Handles: [Chan] (duplex) and [SendChan] (send-only) are value types
//     aliasing one core via a reference count. The receive operations are
//     absent from SendChan's method set, so misuse is a compile error.
//   - Lifecycle: [Chan.Drop] releases a reference; the last drop closes the
//     channel if still open and flushes it, so abandoned channels never
//     leave a waiter blocked.
//   - Errors: closed-channel conditions are recoverable sentinel errors
//     ([ErrSendClosed], [ErrRecvClosed], [ErrCloseClosed]). Non-blocking
//     probes and admissions report [code.hybscloud.com/iox.ErrWouldBlock]
//     at the boundary instead of failing.
//
// # Capacity
//
// A capacity above zero bounds the queue: send suspends the caller while
// that many items are buffered. Capacity zero disables the admission check
// entirely — the channel is logically unbounded, not a synchronous
// rendezvous.
//
// # Protocol layer
//
// Channel operations are also exposed as typed effect operations on
// [code.hybscloud.com/kont]: [Send], [Recv], [Probe], [Close].
//
//   - Cont-world: [SendThen], [RecvBind], [ProbeBranch], [CloseDone].
//   - Expr-world: zero-allocation variants like [ExprSendThen]. Bridge via
//     [Reify] and [Reflect].
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError])
//     evaluate protocols one effect at a time for proactor integration.
//   - Blocking: [Exec] and [Run] (and Error/Expr variants) wait past
//     [code.hybscloud.com/iox.ErrWouldBlock] using adaptive backoff.
//
// # Example
//
//	ch := chq.New[int](2)
//	tx := ch.SendOnly()
//	go func() {
//		defer tx.Drop()
//		tx.Send(42)
//	}()
//	v, err := ch.Recv()
//	ch.Drop()
//	_, _ = v, err
package chq

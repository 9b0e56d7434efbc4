// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// chanErrorHandler handles both channel and error effects.
// Channel ops wait on ErrWouldBlock via iox.Backoff; closed-channel
// conditions short-circuit as Left. Error ops short-circuit on Throw.
// The error type is fixed to error so that thrown values and
// closed-channel conditions share one Left branch.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type chanErrorHandler[A any] struct {
	ch     Chan[any]
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler for the composed Channel+Error handler.
// Dispatch order: Channel → Error.
func (h chanErrorHandler[A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if cop, ok := op.(chanDispatcher); ok {
		var bo iox.Backoff
		for {
			v, err := cop.DispatchChan(h.ch)
			if err == nil {
				return v, true
			}
			if !iox.IsWouldBlock(err) {
				return kont.Left[error, A](err), false
			}
			bo.Wait()
		}
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("chq: unhandled effect in chanErrorHandler")
}

// ExecError runs a channel protocol with error handling on an existing
// handle. Returns Either[error, R] — Right on success, Left on Throw or
// on a closed-channel condition (ErrSendClosed, ErrRecvClosed,
// ErrCloseClosed). Blocks on iox.ErrWouldBlock via adaptive backoff.
func ExecError[R any](ch Chan[any], protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := chanErrorHandler[R]{ch: ch, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr runs an Expr channel protocol with error handling on an
// existing handle. Returns Either[error, R] — Right on success, Left on
// Throw or on a closed-channel condition. Blocks on iox.ErrWouldBlock
// via adaptive backoff.
func ExecErrorExpr[R any](ch Chan[any], protocol kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := chanErrorHandler[R]{ch: ch, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// RunError creates a channel with the given capacity, runs producer and
// consumer Cont-world protocols with error handling over two aliased
// duplex handles, and returns both results as Either values. Interleaves
// execution on the calling goroutine using adaptive backoff (iox.Backoff).
// Both handles are dropped on return.
func RunError[A, B any](capacity int, a kont.Eff[A], b kont.Eff[B]) (kont.Either[error, A], kont.Either[error, B]) {
	return RunErrorExpr[A, B](capacity, Reify(a), Reify(b))
}

// RunErrorExpr creates a channel with the given capacity, runs producer
// and consumer Expr-world protocols with error handling, and returns
// both results as Either values. Interleaves execution on the calling
// goroutine using adaptive backoff (iox.Backoff). Both handles are
// dropped on return.
func RunErrorExpr[A, B any](capacity int, a kont.Expr[A], b kont.Expr[B]) (kont.Either[error, A], kont.Either[error, B]) {
	chA := New[any](capacity)
	chB := chA.Clone()
	defer chA.Drop()
	defer chB.Drop()
	resultA, suspA := StepError[A](a)
	resultB, suspB := StepError[B](b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = AdvanceError[A](chA, suspA)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = AdvanceError[B](chB, suspB)
			if err == nil {
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}

// StepError evaluates a channel protocol with error support until the
// first effect suspension. Returns (Either[error, R], nil) on completion
// or error, or (zero, suspension) if pending.
func StepError[R any](protocol kont.Expr[R]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.StepExpr(wrapped)
}

// AdvanceError dispatches the suspended operation on the handle.
// Channel ops are non-blocking: iox.ErrWouldBlock leaves the suspension
// unconsumed and retryable, while a closed-channel condition discards it
// and returns Left. Error ops are eager: Throw discards the suspension
// and returns Left.
func AdvanceError[R any](ch Chan[any], susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]], error) {
	// Channel ops: non-blocking dispatch
	if cop, ok := susp.Op().(chanDispatcher); ok {
		v, err := cop.DispatchChan(ch)
		if err != nil {
			if iox.IsWouldBlock(err) {
				var zero kont.Either[error, R]
				return zero, susp, err
			}
			susp.Discard()
			return kont.Left[error, R](err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	// Error ops: eager dispatch
	if eop, ok := susp.Op().(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		var ctx kont.ErrorContext[error]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[error, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("chq: unhandled effect in AdvanceError")
}

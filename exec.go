// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// chanHandler implements kont.Handler for channel effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch into
// blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type chanHandler[R any] struct {
	ch Chan[any]
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (h chanHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(chanDispatcher)
	if !ok {
		panic("chq: unhandled effect in chanHandler")
	}
	return dispatchWait(h.ch, cop), true
}

// dispatchWait blocks until DispatchChan succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff. Closed-channel conditions are
// protocol misuse in this world and panic; evaluate with ExecError to
// recover them as values instead.
func dispatchWait(ch Chan[any], cop chanDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := cop.DispatchChan(ch)
		if err == nil {
			return v
		}
		if !iox.IsWouldBlock(err) {
			panic(err)
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world channel protocol on an existing handle.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines.
func Exec[R any](ch Chan[any], protocol kont.Eff[R]) R {
	h := chanHandler[R]{ch: ch}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world channel protocol on an existing handle.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines.
func ExecExpr[R any](ch Chan[any], protocol kont.Expr[R]) R {
	h := chanHandler[R]{ch: ch}
	return kont.HandleExpr(protocol, h)
}

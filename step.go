// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a channel protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended channel operation on the handle.
// DispatchChan is non-blocking: it returns iox.ErrWouldBlock when the
// channel cannot make progress (the admission boundary) and a
// closed-channel condition on misuse.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On error, the suspension is unconsumed: iox.ErrWouldBlock may be
// retried after another handle makes progress, while a closed-channel
// condition will fail the same way on every retry.
func Advance[R any](ch Chan[any], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	cop, ok := susp.Op().(chanDispatcher)
	if !ok {
		panic("chq: unhandled effect in Advance")
	}
	v, err := cop.DispatchChan(ch)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

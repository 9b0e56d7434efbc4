// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operations and frames to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world
// execution. Send and the generic receive operations carry type
// parameters and are boxed per construction.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprClose       kont.Erased = Close{}
)

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprSendThen sends a value and then continues with next.
// Fuses ExprPerform(Send[T]{Value: v}) + ExprThen.
func ExprSendThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Send[T]{Value: v}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func recvBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprRecvBind receives a value and passes it to f.
// Fuses ExprPerform(Recv[T]{}) + ExprBind.
func ExprRecvBind[T, B any](f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = recvBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recv[T]{}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprCloseDone closes the channel and returns a.
// Fuses ExprPerform(Close{}) + ExprThen + ExprReturn.
func ExprCloseDone[A any](a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprClose
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}

func probeBranchUnwind[T, A any](data, data2, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	onValue := data.(func(T) kont.Expr[A])
	onEmpty := data2.(func() kont.Expr[A])
	e := current.(kont.Either[struct{}, T])
	var result kont.Expr[A]
	if v, ok := e.GetRight(); ok {
		result = onValue(v)
	} else {
		result = onEmpty()
	}
	return kont.Erased(result.Value), result.Frame
}

// ExprProbeBranch probes the channel without waiting and calls onValue
// with the popped item, or onEmpty when nothing was queued.
// Fuses ExprPerform(Probe[T]{}) + ExprBind + Either branch.
func ExprProbeBranch[T, A any](onValue func(T) kont.Expr[A], onEmpty func() kont.Expr[A]) kont.Expr[A] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = onValue
	bf.Data2 = onEmpty
	bf.Unwind = probeBranchUnwind[T, A]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Probe[T]{}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[A](ef)
}

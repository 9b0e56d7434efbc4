// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"code.hybscloud.com/kont"
)

// SendThen sends a value and then continues with next.
// Fuses Perform(Send[T]{Value: v}) + Then.
func SendThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Send[T]{Value: v}), next)
}

// RecvBind receives a value and passes it to f.
// Fuses Perform(Recv[T]{}) + Bind.
func RecvBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Recv[T]{}), f)
}

// CloseDone closes the channel and returns a.
// Fuses Perform(Close{}) + Then + Pure.
func CloseDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Close{}), kont.Pure(a))
}

// ProbeBranch probes the channel without waiting and calls onValue with
// the popped item, or onEmpty when nothing was queued.
// Fuses Perform(Probe[T]{}) + Bind + Either branch.
func ProbeBranch[T, A any](onValue func(T) kont.Eff[A], onEmpty func() kont.Eff[A]) kont.Eff[A] {
	return kont.Bind(kont.Perform(Probe[T]{}), func(e kont.Either[struct{}, T]) kont.Eff[A] {
		if v, ok := e.GetRight(); ok {
			return onValue(v)
		}
		return onEmpty()
	})
}

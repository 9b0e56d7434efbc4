// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run creates a channel with the given capacity, runs producer and
// consumer Cont-world protocols over two aliased duplex handles, and
// returns both results. Interleaves execution of both sides on the
// calling goroutine using adaptive backoff (iox.Backoff) when neither
// side can make progress. Both handles are dropped on return. A
// closed-channel condition in either protocol panics; use RunError for
// recoverable evaluation.
func Run[A, B any](capacity int, a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr[A, B](capacity, Reify(a), Reify(b))
}

// RunExpr creates a channel with the given capacity, runs producer and
// consumer Expr-world protocols over two aliased duplex handles, and
// returns both results. Interleaves execution of both sides on the
// calling goroutine using adaptive backoff (iox.Backoff) when neither
// side can make progress. Both handles are dropped on return.
func RunExpr[A, B any](capacity int, a kont.Expr[A], b kont.Expr[B]) (A, B) {
	chA := New[any](capacity)
	chB := chA.Clone()
	defer chA.Drop()
	defer chB.Drop()
	resultA, suspA := Step[A](a)
	resultB, suspB := Step[B](b)
	var bo iox.Backoff

	var copA chanDispatcher
	if suspA != nil {
		copA = suspA.Op().(chanDispatcher)
	}
	var copB chanDispatcher
	if suspB != nil {
		copB = suspB.Op().(chanDispatcher)
	}

	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			v, err := copA.DispatchChan(chA)
			if err == nil {
				resultA, suspA = suspA.Resume(v)
				if suspA != nil {
					copA = suspA.Op().(chanDispatcher)
				}
				progress = true
			} else if !iox.IsWouldBlock(err) {
				panic(err)
			}
		}
		if suspB != nil {
			v, err := copB.DispatchChan(chB)
			if err == nil {
				resultB, suspB = suspB.Resume(v)
				if suspB != nil {
					copB = suspB.Op().(chanDispatcher)
				}
				progress = true
			} else if !iox.IsWouldBlock(err) {
				panic(err)
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

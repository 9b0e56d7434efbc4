// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq_test

import (
	"code.hybscloud.com/chq"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// execExpr drives a protocol to completion on ch via Step+Advance loop.
// Retries on iox.ErrWouldBlock (no peer progress yet); closed-channel
// conditions are unexpected in the tests that use this helper and panic.
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](ch chq.Chan[any], protocol kont.Expr[R]) R {
	result, susp := chq.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = chq.Advance(ch, susp)
		if err != nil && !iox.IsWouldBlock(err) {
			panic(err)
		}
	}
	return result
}

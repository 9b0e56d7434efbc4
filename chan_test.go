// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq_test

import (
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/chq"
	"code.hybscloud.com/iox"
)

func TestFIFOOrder(t *testing.T) {
	ch := chq.New[string](8)
	defer ch.Drop()

	for _, s := range []string{"a", "b", "c"} {
		if err := ch.Send(s); err != nil {
			t.Fatalf("Send(%q) error: %v", s, err)
		}
	}
	for _, want := range []string{"a", "b", "c"} {
		got, err := ch.Recv()
		if err != nil {
			t.Fatalf("Recv error: %v", err)
		}
		if got != want {
			t.Fatalf("Recv got %q, want %q", got, want)
		}
	}
}

func TestCapacityBlocksThirdSend(t *testing.T) {
	ch := chq.New[int](2)
	defer ch.Drop()

	if err := ch.Send(1); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if err := ch.Send(2); err != nil {
		t.Fatalf("Send error: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- ch.Send(3)
	}()

	select {
	case err := <-done:
		t.Fatalf("third send completed while at capacity: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	// One receive frees capacity; the blocked send must complete.
	if v, err := ch.Recv(); err != nil || v != 1 {
		t.Fatalf("Recv got (%d, %v), want (1, nil)", v, err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unblocked send error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send still blocked after capacity was freed")
	}
}

func TestBlockedSendFailsOnClose(t *testing.T) {
	ch := chq.New[int](2)
	defer ch.Drop()

	ch.Send(1)
	ch.Send(2)

	done := make(chan error, 1)
	go func() {
		done <- ch.Send(3)
	}()
	time.Sleep(20 * time.Millisecond) // let the sender reach the capacity wait

	if err := ch.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, chq.ErrSendClosed) {
			t.Fatalf("blocked send got %v, want ErrSendClosed", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("blocked send neither failed nor returned after close")
	}
}

func TestZeroCapacityNeverBlocksSend(t *testing.T) {
	ch := chq.New[int](0)
	defer ch.Drop()

	for i := 0; i < 1000; i++ {
		if err := ch.Send(i); err != nil {
			t.Fatalf("Send(%d) error: %v", i, err)
		}
	}
	if got := ch.Len(); got != 1000 {
		t.Fatalf("Len got %d, want 1000", got)
	}
	if v, err := ch.Recv(); err != nil || v != 0 {
		t.Fatalf("Recv got (%d, %v), want (0, nil)", v, err)
	}
}

func TestCloseDrainsQueue(t *testing.T) {
	ch := chq.New[string](0)
	defer ch.Drop()

	ch.Send("x")
	ch.Send("y")
	ch.Send("z")
	if err := ch.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if got := ch.Len(); got != 0 {
		t.Fatalf("Len after close got %d, want 0", got)
	}
	if _, err := ch.TryRecv(); !iox.IsWouldBlock(err) {
		t.Fatalf("TryRecv after close got %v, want ErrWouldBlock", err)
	}
	if _, err := ch.Recv(); !errors.Is(err, chq.ErrRecvClosed) {
		t.Fatalf("Recv after close got %v, want ErrRecvClosed", err)
	}
}

func TestDoubleCloseReported(t *testing.T) {
	ch := chq.New[int](1)
	defer ch.Drop()

	if err := ch.Close(); err != nil {
		t.Fatalf("first Close error: %v", err)
	}
	if err := ch.Close(); !errors.Is(err, chq.ErrCloseClosed) {
		t.Fatalf("second Close got %v, want ErrCloseClosed", err)
	}
	if !ch.Closed() {
		t.Fatal("channel not closed after double close")
	}
}

func TestSendOnClosed(t *testing.T) {
	ch := chq.New[int](1)
	defer ch.Drop()

	ch.Close()
	if err := ch.Send(1); !errors.Is(err, chq.ErrSendClosed) {
		t.Fatalf("Send got %v, want ErrSendClosed", err)
	}
	if err := ch.TrySend(1); !errors.Is(err, chq.ErrSendClosed) {
		t.Fatalf("TrySend got %v, want ErrSendClosed", err)
	}
}

func TestTrySendAtCapacity(t *testing.T) {
	ch := chq.New[int](1)
	defer ch.Drop()

	if err := ch.TrySend(1); err != nil {
		t.Fatalf("TrySend error: %v", err)
	}
	if err := ch.TrySend(2); !iox.IsWouldBlock(err) {
		t.Fatalf("TrySend at capacity got %v, want ErrWouldBlock", err)
	}
	// A failed admission leaves the channel usable.
	if v, err := ch.Recv(); err != nil || v != 1 {
		t.Fatalf("Recv got (%d, %v), want (1, nil)", v, err)
	}
	if err := ch.TrySend(2); err != nil {
		t.Fatalf("TrySend after free error: %v", err)
	}
}

func TestTryRecvEmptyOpen(t *testing.T) {
	ch := chq.New[int](1)
	defer ch.Drop()

	if _, err := ch.TryRecv(); !iox.IsWouldBlock(err) {
		t.Fatalf("TryRecv on empty got %v, want ErrWouldBlock", err)
	}
	ch.Send(7)
	if v, err := ch.TryRecv(); err != nil || v != 7 {
		t.Fatalf("TryRecv got (%d, %v), want (7, nil)", v, err)
	}
}

func TestFlushKeepsChannelOpen(t *testing.T) {
	ch := chq.New[int](0)
	defer ch.Drop()

	ch.Send(1)
	ch.Send(2)
	ch.Flush()
	if got := ch.Len(); got != 0 {
		t.Fatalf("Len after flush got %d, want 0", got)
	}
	if ch.Closed() {
		t.Fatal("Flush must not close the channel")
	}
	if err := ch.Send(3); err != nil {
		t.Fatalf("Send after flush error: %v", err)
	}
	if v, err := ch.Recv(); err != nil || v != 3 {
		t.Fatalf("Recv got (%d, %v), want (3, nil)", v, err)
	}
}

func TestFlushUnblocksCapacityWaiters(t *testing.T) {
	ch := chq.New[int](1)
	defer ch.Drop()

	ch.Send(1)
	done := make(chan error, 1)
	go func() {
		done <- ch.Send(2)
	}()
	time.Sleep(20 * time.Millisecond)

	ch.Flush()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("send after flush error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send still blocked after flush freed capacity")
	}
}

func TestRecvBlocksUntilSend(t *testing.T) {
	ch := chq.New[int](4)
	defer ch.Drop()

	type result struct {
		v   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := ch.Recv()
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		t.Fatalf("Recv completed on empty channel: (%d, %v)", r.v, r.err)
	case <-time.After(50 * time.Millisecond):
	}

	ch.Send(11)
	select {
	case r := <-done:
		if r.err != nil || r.v != 11 {
			t.Fatalf("Recv got (%d, %v), want (11, nil)", r.v, r.err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Recv still blocked after send")
	}
}

func TestCloneAliasesOneChannel(t *testing.T) {
	ch := chq.New[int](4)
	alias := ch.Clone()

	if ch.Serial() != alias.Serial() {
		t.Fatalf("aliases report different serials: %d vs %d", ch.Serial(), alias.Serial())
	}
	if err := alias.Send(5); err != nil {
		t.Fatalf("Send via alias error: %v", err)
	}
	if v, err := ch.Recv(); err != nil || v != 5 {
		t.Fatalf("Recv via original got (%d, %v), want (5, nil)", v, err)
	}

	// Closing through one alias is visible through the other.
	if err := ch.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if !alias.Closed() {
		t.Fatal("alias does not observe close")
	}
	alias.Drop()
	ch.Drop()
}

func TestNegativeCapacityIsUnbounded(t *testing.T) {
	ch := chq.New[int](-3)
	defer ch.Drop()

	for i := 0; i < 16; i++ {
		if err := ch.Send(i); err != nil {
			t.Fatalf("Send(%d) error: %v", i, err)
		}
	}
}

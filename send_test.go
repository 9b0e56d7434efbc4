// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chq_test

import (
	"errors"
	"reflect"
	"testing"

	"code.hybscloud.com/chq"
)

func TestSendOnlyDerivation(t *testing.T) {
	ch := chq.New[int](4)
	tx := ch.SendOnly()

	if ch.Serial() != tx.Serial() {
		t.Fatalf("narrowed handle reports serial %d, duplex %d", tx.Serial(), ch.Serial())
	}
	if err := tx.Send(21); err != nil {
		t.Fatalf("Send via send-only handle error: %v", err)
	}
	if v, err := ch.Recv(); err != nil || v != 21 {
		t.Fatalf("Recv got (%d, %v), want (21, nil)", v, err)
	}
	tx.Drop()
	ch.Drop()
}

func TestSendOnlyClose(t *testing.T) {
	ch := chq.New[int](4)
	tx := ch.SendOnly()

	if err := tx.Close(); err != nil {
		t.Fatalf("Close via send-only handle error: %v", err)
	}
	if !ch.Closed() {
		t.Fatal("duplex alias does not observe close")
	}
	if err := tx.Close(); !errors.Is(err, chq.ErrCloseClosed) {
		t.Fatalf("second Close got %v, want ErrCloseClosed", err)
	}
	tx.Drop()
	ch.Drop()
}

func TestNewSendStandalone(t *testing.T) {
	tx := chq.NewSend[string](2)
	defer tx.Drop()

	if err := tx.Send("solo"); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if tx.Closed() {
		t.Fatal("fresh channel reports closed")
	}

	alias := tx.Clone()
	if alias.Serial() != tx.Serial() {
		t.Fatal("clone reports a different serial")
	}
	alias.Drop()
}

// TestSendOnlyMethodSet pins the capability restriction: the receive
// operations must be absent from SendChan's method set, so receiving
// through a send-only handle is rejected at compile time. The following
// does not compile, which is the property under test:
//
//	tx := chq.NewSend[int](1)
//	tx.Recv()    // tx.Recv undefined
//	tx.TryRecv() // tx.TryRecv undefined
func TestSendOnlyMethodSet(t *testing.T) {
	typ := reflect.TypeOf(chq.NewSend[int](1))
	for _, name := range []string{"Recv", "TryRecv", "Flush", "Len"} {
		if _, ok := typ.MethodByName(name); ok {
			t.Fatalf("SendChan exposes %s; receive capability leaked", name)
		}
	}
	for _, name := range []string{"Send", "TrySend", "Close", "Closed", "Clone", "Drop", "Serial"} {
		if _, ok := typ.MethodByName(name); !ok {
			t.Fatalf("SendChan is missing %s", name)
		}
	}
}

// TestDuplexMethodSet pins the duplex contract for contrast.
func TestDuplexMethodSet(t *testing.T) {
	typ := reflect.TypeOf(chq.New[int](1))
	for _, name := range []string{"Send", "TrySend", "Recv", "TryRecv", "Close", "Closed", "Flush", "Len", "Clone", "Drop", "SendOnly", "Serial"} {
		if _, ok := typ.MethodByName(name); !ok {
			t.Fatalf("Chan is missing %s", name)
		}
	}
}

// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

import "testing"

func TestReadActionNoPayload(t *testing.T) {
	// ActionPlay = 0x06, below 0x80: no length field, no payload.
	s := NewBitStream([]byte{0x06, 0xAA})
	a, err := readAction(s)
	if err != nil {
		t.Fatalf("readAction failed: %v", err)
	}
	if a.Code != 0x06 || a.Length != 0 {
		t.Fatalf("readAction = %+v, want code=0x06 length=0", a)
	}
	if s.BytePosition() != 1 {
		t.Errorf("BytePosition = %d, want 1 (payload-less action)", s.BytePosition())
	}
}

func TestReadActionPush(t *testing.T) {
	// ActionPush, length=3: PushNull (kind=2, no value bytes), then
	// PushBool true (kind=5, 1 value byte).
	s := NewBitStream([]byte{
		ActionPush, 0x03, 0x00,
		byte(PushNull),
		byte(PushBool), 0x01,
	})
	a, err := readAction(s)
	if err != nil {
		t.Fatalf("readAction failed: %v", err)
	}
	if len(a.Push) != 2 {
		t.Fatalf("Push = %+v, want 2 entries", a.Push)
	}
	if a.Push[0].Kind != PushNull {
		t.Errorf("Push[0].Kind = %v, want PushNull", a.Push[0].Kind)
	}
	if a.Push[1].Kind != PushBool || !a.Push[1].BoolVal {
		t.Errorf("Push[1] = %+v, want PushBool(true)", a.Push[1])
	}
}

func TestReadActionJump(t *testing.T) {
	s := NewBitStream([]byte{ActionJump, 0x02, 0x00, 0xFE, 0xFF}) // -2 little-endian
	a, err := readAction(s)
	if err != nil {
		t.Fatalf("readAction failed: %v", err)
	}
	if a.Jump != -2 {
		t.Errorf("Jump = %d, want -2", a.Jump)
	}
}

func TestReadActionConstantPool(t *testing.T) {
	s := NewBitStream([]byte{
		ActionConstantPool, 0x05, 0x00,
		0x01, 0x00, // count = 1
		'h', 'i', 0x00,
	})
	a, err := readAction(s)
	if err != nil {
		t.Fatalf("readAction failed: %v", err)
	}
	if len(a.ConstantPool) != 1 || a.ConstantPool[0] != "hi" {
		t.Fatalf("ConstantPool = %+v, want [\"hi\"]", a.ConstantPool)
	}
}

func TestReadActionUnknownWithPayloadSkipped(t *testing.T) {
	// Some action code >= 0x80 with no dedicated decoder: captured raw
	// and the stream realigned to the declared length.
	s := NewBitStream([]byte{0xC0, 0x02, 0x00, 0xAA, 0xBB, 0xFF})
	a, err := readAction(s)
	if err != nil {
		t.Fatalf("readAction failed: %v", err)
	}
	if len(a.RawPayload) != 2 || a.RawPayload[0] != 0xAA || a.RawPayload[1] != 0xBB {
		t.Fatalf("RawPayload = %v, want [0xAA 0xBB]", a.RawPayload)
	}
	marker, err := s.ReadUint8()
	if err != nil || marker != 0xFF {
		t.Errorf("trailing marker = %#x, err=%v; want 0xFF", marker, err)
	}
}

func TestReadActionListStopsAtTerminator(t *testing.T) {
	s := NewBitStream([]byte{
		0x06,       // ActionPlay
		0x00,       // ActionEnd terminator
		0xAA,       // not consumed
	})
	actions, err := readActionList(s, s.BytePosition()+2)
	if err != nil {
		t.Fatalf("readActionList failed: %v", err)
	}
	if len(actions) != 1 || actions[0].Code != 0x06 {
		t.Fatalf("actions = %+v, want single ActionPlay", actions)
	}
}

func TestReadTryActionNoCatchNoFinally(t *testing.T) {
	// flags byte bits (MSB first): 5 reserved, catchInRegister=0,
	// hasFinally=0, hasCatch=0 -> 0x00.
	s := NewBitStream([]byte{
		0x00,
		0x03, 0x00, // try_size = 3
		0x00, 0x00, // catch_size = 0
		0x00, 0x00, // finally_size = 0
		0x00,             // catch name (empty cstring, since catchInRegister=0)
		0xAA, 0xBB, 0xCC, // try body
	})
	tr, err := readTryAction(s)
	if err != nil {
		t.Fatalf("readTryAction failed: %v", err)
	}
	if tr.HasCatchBlock || tr.HasFinallyBlock {
		t.Fatalf("TryAction = %+v, want no catch/finally", tr)
	}
	if len(tr.TryBody) != 3 {
		t.Errorf("TryBody = %v, want 3 bytes", tr.TryBody)
	}
}

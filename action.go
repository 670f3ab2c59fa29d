// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package swf

// AVM1 action codes referenced explicitly by name in §4.4. Every other
// code below 0x80 is a payload-less opcode (ActionNextFrame, ActionPlay,
// ActionStop, and so on); codes at or above 0x80 without a dedicated
// decoder below still carry a declared-length payload, captured raw.
const (
	ActionGotoFrame      uint8 = 0x81
	ActionGetURL         uint8 = 0x83
	ActionConstantPool   uint8 = 0x88
	ActionWaitForFrame   uint8 = 0x8A
	ActionSetTarget      uint8 = 0x8B
	ActionGotoLabel      uint8 = 0x8C
	ActionDefineFunction2 uint8 = 0x8E
	ActionTry            uint8 = 0x8F
	ActionWaitForFrame2  uint8 = 0x8D
	ActionWith           uint8 = 0x94
	ActionPush           uint8 = 0x96
	ActionJump           uint8 = 0x99
	ActionGetURL2        uint8 = 0x9A
	ActionDefineFunction uint8 = 0x9B
	ActionIf             uint8 = 0x9D
	ActionGotoFrame2     uint8 = 0x9F
)

// PushValueKind discriminates one entry in a Push action's operand list.
type PushValueKind uint8

const (
	PushString PushValueKind = iota
	PushFloat
	PushNull
	PushUndefined
	PushRegister
	PushBool
	PushDouble
	PushInteger
	PushConstant8
	PushConstant16
)

// PushValue is one typed operand pushed onto the AVM1 stack.
type PushValue struct {
	Kind        PushValueKind `json:"kind"`
	StringVal   string        `json:"string_val,omitempty"`
	FloatVal    float32       `json:"float_val,omitempty"`
	RegisterVal uint8         `json:"register_val,omitempty"`
	BoolVal     bool          `json:"bool_val,omitempty"`
	DoubleVal   float64       `json:"double_val,omitempty"`
	IntegerVal  uint32        `json:"integer_val,omitempty"`
	ConstantIdx uint16        `json:"constant_idx,omitempty"`
}

// readPushAction repeatedly reads a 1-byte type selector and a typed
// value until the declared payload window (end, a byte position) is
// exhausted.
func readPushAction(s *BitStream, end int) ([]PushValue, error) {
	var values []PushValue
	for s.BytePosition() < end {
		kindByte, err := s.ReadUint8()
		if err != nil {
			return nil, err
		}
		v := PushValue{Kind: PushValueKind(kindByte)}
		switch v.Kind {
		case PushString:
			v.StringVal, err = s.ReadCString()
		case PushFloat:
			v.FloatVal, err = s.ReadFloat()
		case PushNull, PushUndefined:
			// No payload.
		case PushRegister:
			v.RegisterVal, err = s.ReadUint8()
		case PushBool:
			var b uint8
			b, err = s.ReadUint8()
			v.BoolVal = b != 0
		case PushDouble:
			v.DoubleVal, err = s.ReadDouble()
		case PushInteger:
			v.IntegerVal, err = s.ReadUint32()
		case PushConstant8:
			var b uint8
			b, err = s.ReadUint8()
			v.ConstantIdx = uint16(b)
		case PushConstant16:
			v.ConstantIdx, err = s.ReadUint16()
		default:
			return nil, ErrUnknownDiscriminator
		}
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// FunctionParam is a (register, name) pair used by DefineFunction2.
type FunctionParam struct {
	Register uint8  `json:"register"`
	Name     string `json:"name"`
}

// DefineFunctionAction is the ActionDefineFunction (0x9B) payload. Per
// the Open Question recorded in DESIGN.md, CodeSize is always read and
// the following CodeSize bytes are consumed as the function body.
type DefineFunctionAction struct {
	Name       string   `json:"name"`
	Params     []string `json:"params"`
	CodeSize   uint16   `json:"code_size"`
	Body       []byte   `json:"body"`
}

func readDefineFunctionAction(s *BitStream) (*DefineFunctionAction, error) {
	f := &DefineFunctionAction{}
	var err error
	if f.Name, err = s.ReadCString(); err != nil {
		return nil, err
	}
	numParams, err := s.ReadUint16()
	if err != nil {
		return nil, err
	}
	f.Params = make([]string, numParams)
	for i := range f.Params {
		if f.Params[i], err = s.ReadCString(); err != nil {
			return nil, err
		}
	}
	if f.CodeSize, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	f.Body, err = s.ReadBytes(int(f.CodeSize))
	return f, err
}

// DefineFunction2Action is the ActionDefineFunction2 (0x8E) payload.
type DefineFunction2Action struct {
	Name              string          `json:"name"`
	NumParams         uint16          `json:"num_params"`
	RegisterCount     uint8           `json:"register_count"`
	PreloadParent     bool            `json:"preload_parent"`
	PreloadRoot       bool            `json:"preload_root"`
	SuppressSuper     bool            `json:"suppress_super"`
	PreloadSuper      bool            `json:"preload_super"`
	SuppressArguments bool            `json:"suppress_arguments"`
	PreloadArguments  bool            `json:"preload_arguments"`
	SuppressThis      bool            `json:"suppress_this"`
	PreloadThis       bool            `json:"preload_this"`
	PreloadGlobal     bool            `json:"preload_global"`
	Params            []FunctionParam `json:"params"`
	CodeSize          uint16          `json:"code_size"`
	Body              []byte          `json:"body"`
}

func readDefineFunction2Action(s *BitStream) (*DefineFunction2Action, error) {
	f := &DefineFunction2Action{}
	var err error
	if f.Name, err = s.ReadCString(); err != nil {
		return nil, err
	}
	if f.NumParams, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	if f.RegisterCount, err = s.ReadUint8(); err != nil {
		return nil, err
	}
	if f.PreloadParent, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.PreloadRoot, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.SuppressSuper, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.PreloadSuper, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.SuppressArguments, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.PreloadArguments, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.SuppressThis, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if f.PreloadThis, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if _, err = s.ReadUBits(7); err != nil { // reserved
		return nil, err
	}
	if f.PreloadGlobal, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	f.Params = make([]FunctionParam, f.NumParams)
	for i := range f.Params {
		if f.Params[i].Register, err = s.ReadUint8(); err != nil {
			return nil, err
		}
		if f.Params[i].Name, err = s.ReadCString(); err != nil {
			return nil, err
		}
	}
	if f.CodeSize, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	f.Body, err = s.ReadBytes(int(f.CodeSize))
	return f, err
}

// TryAction is the ActionTry (0x8F) payload: three declared byte-region
// sizes and the raw bytes of each, plus the optional catch binding.
type TryAction struct {
	HasCatchBlock   bool   `json:"has_catch_block"`
	HasFinallyBlock bool   `json:"has_finally_block"`
	CatchInRegister bool   `json:"catch_in_register"`
	TrySize         uint16 `json:"try_size"`
	CatchSize       uint16 `json:"catch_size"`
	FinallySize     uint16 `json:"finally_size"`
	CatchName       string `json:"catch_name,omitempty"`
	CatchRegister   uint8  `json:"catch_register,omitempty"`
	TryBody         []byte `json:"try_body"`
	CatchBody       []byte `json:"catch_body"`
	FinallyBody     []byte `json:"finally_body"`
}

func readTryAction(s *BitStream) (*TryAction, error) {
	t := &TryAction{}
	if _, err := s.ReadUBits(5); err != nil { // reserved
		return nil, err
	}
	var err error
	if t.CatchInRegister, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if t.HasFinallyBlock, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if t.HasCatchBlock, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if t.TrySize, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	if t.CatchSize, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	if t.FinallySize, err = s.ReadUint16(); err != nil {
		return nil, err
	}
	if t.CatchInRegister {
		t.CatchRegister, err = s.ReadUint8()
	} else {
		t.CatchName, err = s.ReadCString()
	}
	if err != nil {
		return nil, err
	}
	if t.TryBody, err = s.ReadBytes(int(t.TrySize)); err != nil {
		return nil, err
	}
	if t.HasCatchBlock {
		if t.CatchBody, err = s.ReadBytes(int(t.CatchSize)); err != nil {
			return nil, err
		}
	}
	if t.HasFinallyBlock {
		t.FinallyBody, err = s.ReadBytes(int(t.FinallySize))
	}
	return t, err
}

// GetURL2Action is the ActionGetURL2 (0x9A) payload.
type GetURL2Action struct {
	SendVarsMethod uint8 `json:"send_vars_method"`
	LoadTarget     bool  `json:"load_target"`
	LoadVariables  bool  `json:"load_variables"`
}

func readGetURL2Action(s *BitStream) (*GetURL2Action, error) {
	a := &GetURL2Action{}
	method, err := s.ReadUBits(2)
	if err != nil {
		return nil, err
	}
	a.SendVarsMethod = uint8(method)
	if _, err = s.ReadUBits(4); err != nil { // reserved
		return nil, err
	}
	if a.LoadTarget, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	a.LoadVariables, err = s.ReadBitBool()
	return a, err
}

// GotoFrame2Action is the ActionGotoFrame2 (0x9F) payload.
type GotoFrame2Action struct {
	Play       bool   `json:"play"`
	SceneBias  uint16 `json:"scene_bias,omitempty"`
	HasBias    bool   `json:"has_bias"`
}

func readGotoFrame2Action(s *BitStream) (*GotoFrame2Action, error) {
	a := &GotoFrame2Action{}
	if _, err := s.ReadUBits(6); err != nil { // reserved
		return nil, err
	}
	var err error
	if a.HasBias, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if a.Play, err = s.ReadBitBool(); err != nil {
		return nil, err
	}
	if a.HasBias {
		a.SceneBias, err = s.ReadUint16()
	}
	return a, err
}

// readConstantPoolAction reads a length-prefixed list of NUL-terminated
// strings (the ActionConstantPool, 0x88, payload).
func readConstantPoolAction(s *BitStream) ([]string, error) {
	count, err := s.ReadUint16()
	if err != nil {
		return nil, err
	}
	pool := make([]string, count)
	for i := range pool {
		if pool[i], err = s.ReadCString(); err != nil {
			return nil, err
		}
	}
	return pool, nil
}

// Action is the AVM1 tagged action record. Code is the one-byte opcode;
// Length is the declared payload length (0 for codes below 0x80, which
// never carry a payload).
type Action struct {
	Code   uint8  `json:"code"`
	Length uint16 `json:"length"`

	Push            []PushValue            `json:"push,omitempty"`
	Jump            int16                  `json:"jump,omitempty"`
	If              int16                  `json:"if,omitempty"`
	DefineFunction  *DefineFunctionAction  `json:"define_function,omitempty"`
	DefineFunction2 *DefineFunction2Action `json:"define_function2,omitempty"`
	Try             *TryAction             `json:"try,omitempty"`
	GetURL2         *GetURL2Action         `json:"get_url2,omitempty"`
	GotoFrame2      *GotoFrame2Action      `json:"goto_frame2,omitempty"`
	ConstantPool    []string               `json:"constant_pool,omitempty"`
	RawPayload      []byte                 `json:"raw_payload,omitempty"`
}

// readAction reads one ActionHeader plus its dispatched payload.
func readAction(s *BitStream) (Action, error) {
	code, err := s.ReadUint8()
	if err != nil {
		return Action{}, err
	}
	a := Action{Code: code}
	if code < 0x80 {
		return a, nil
	}
	length, err := s.ReadUint16()
	if err != nil {
		return a, err
	}
	a.Length = length
	payloadStart := s.BytePosition()
	end := payloadStart + int(length)

	switch code {
	case ActionPush:
		a.Push, err = readPushAction(s, end)
	case ActionJump:
		a.Jump, err = s.ReadSint16()
	case ActionIf:
		a.If, err = s.ReadSint16()
	case ActionDefineFunction:
		a.DefineFunction, err = readDefineFunctionAction(s)
	case ActionDefineFunction2:
		a.DefineFunction2, err = readDefineFunction2Action(s)
	case ActionTry:
		a.Try, err = readTryAction(s)
	case ActionGetURL2:
		a.GetURL2, err = readGetURL2Action(s)
	case ActionGotoFrame2:
		a.GotoFrame2, err = readGotoFrame2Action(s)
	case ActionConstantPool:
		a.ConstantPool, err = readConstantPoolAction(s)
	default:
		a.RawPayload, err = s.ReadBytes(int(length))
	}
	if err != nil {
		return a, err
	}

	// Decoders for variable-shaped payloads (DefineFunction bodies, Try
	// blocks) consume bytes beyond the declared action length by design
	// (the body/blob bytes live after the window). Every other decoder
	// must land exactly on `end`; skip forward if it undershot to keep
	// the action stream aligned for the caller's next read, mirroring
	// the teacher's per-tag snapshot/assert-on-exit discipline (§4.6).
	switch code {
	case ActionDefineFunction, ActionDefineFunction2, ActionTry:
	default:
		if s.BytePosition() < end {
			if err := skipUnknown(s, end-s.BytePosition()); err != nil {
				return a, err
			}
		}
	}
	return a, nil
}

// readActionList decodes a sequence of actions starting at the stream's
// current position, stopping at the ActionEnd (code 0) terminator or
// when the byte position reaches end, whichever comes first.
func readActionList(s *BitStream, end int) ([]Action, error) {
	var actions []Action
	for s.BytePosition() < end {
		a, err := readAction(s)
		if err != nil {
			return actions, err
		}
		if a.Code == 0 {
			return actions, nil
		}
		actions = append(actions, a)
	}
	return actions, nil
}

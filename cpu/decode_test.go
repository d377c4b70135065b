package cpu

import "testing"

func TestDecode(t *testing.T) {
	type testCase struct {
		word uint16
		op   Op
	}

	tests := []testCase{
		{0x0000, OpNOP},
		{0x0123, OpSYS},
		{0x00E0, OpCLS},
		{0x00EE, OpRET},
		{0x1234, OpJP},
		{0x2345, OpCALL},
		{0x3456, OpSEByte},
		{0x4567, OpSNEByte},
		{0x5670, OpSEReg},
		{0x6789, OpLDByte},
		{0x789A, OpADDByte},
		{0x8AB0, OpLDReg},
		{0x8AB1, OpOR},
		{0x8AB2, OpAND},
		{0x8AB3, OpXOR},
		{0x8AB4, OpADDReg},
		{0x8AB5, OpSUB},
		{0x8AB6, OpSHR},
		{0x8AB7, OpSUBN},
		{0x8ABE, OpSHL},
		{0x9AB0, OpSNEReg},
		{0xABCD, OpLDI},
		{0xBCDE, OpJPV0},
		{0xCDEF, OpRND},
		{0xDEF1, OpDRW},
		{0xE19E, OpSKP},
		{0xE1A1, OpSKNP},
		{0xF107, OpLDVxDT},
		{0xF10A, OpLDVxK},
		{0xF115, OpLDDTVx},
		{0xF118, OpLDSTVx},
		{0xF11E, OpADDI},
		{0xF129, OpLDF},
		{0xF133, OpLDB},
		{0xF155, OpLDIVx},
		{0xF165, OpLDVxI},

		{0x5671, OpInvalid},
		{0x8AB8, OpInvalid},
		{0x8ABF, OpInvalid},
		{0x9AB2, OpInvalid},
		{0xE19F, OpInvalid},
		{0xF100, OpInvalid},
		{0xFFFF, OpInvalid},
	}

	for _, tc := range tests {
		ins, ok := Decode(tc.word)
		if ins.Op != tc.op {
			t.Fatalf("%04X decoded as %d, expected %d", tc.word, ins.Op, tc.op)
		}
		if ok != (tc.op != OpInvalid) {
			t.Fatalf("%04X validity was %t", tc.word, ok)
		}
	}
}

func TestDecodeFields(t *testing.T) {
	ins, _ := Decode(0xD123)
	if ins.X != 1 || ins.Y != 2 || ins.N != 3 || ins.KK != 0x23 || ins.NNN != 0x123 {
		t.Fatalf("bad fields %+v", ins)
	}
	if ins.Word != 0xD123 {
		t.Fatalf("word not kept")
	}
}

// TestHandlersComplete ensures every valid operation has a handler.
func TestHandlersComplete(t *testing.T) {
	h := handlers()
	for op := OpNOP; op <= OpLDVxI; op++ {
		entry, ok := h[op]
		if !ok {
			t.Fatalf("no handler for op %d", op)
		}
		if entry.Desc == "" || entry.Handler == nil {
			t.Fatalf("incomplete handler for op %d", op)
		}
	}
}

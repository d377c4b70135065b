package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestMnemonic(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1200, "JP $200"},
		{0x2345, "CALL $345"},
		{0x3A10, "SE VA, $10"},
		{0x612A, "LD V1, $2A"},
		{0x7F01, "ADD VF, $01"},
		{0x8124, "ADD V1, V2"},
		{0x8126, "SHR V1"},
		{0x812E, "SHL V1"},
		{0xA123, "LD I, $123"},
		{0xD015, "DRW V0, V1, $5"},
		{0xE39E, "SKP V3"},
		{0xF229, "LD F, V2"},
		{0xF433, "LD B, V4"},
		{0xF555, "LD [I], V5"},
		{0xF665, "LD V6, [I]"},
		{0xFFFF, "DW $FFFF"},
		{0x5121, "DW $5121"},
		{0x8AB9, "DW $8AB9"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mnemonic(tt.word))
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x1234, chip8.JpName},
		{0x2345, chip8.CallName},
		{0x00EE, chip8.RetName},
	}

	for _, tt := range tests {
		ins := Lookup(tt.word)
		assert.NotNil(t, ins)
		assert.Equal(t, tt.expected, ins.Name)
	}

	assert.Equal(t, "CLS", strings.ToUpper(Lookup(0x00E0).Name))
	assert.Equal(t, "DRW", strings.ToUpper(Lookup(0xD123).Name))
	assert.True(t, Lookup(0x5121) == nil)
}

func TestLines(t *testing.T) {
	// 0x200: CALL 0x206
	// 0x202: SE V0, 0x01
	// 0x204: JP 0x200
	// 0x206: RET
	// 0x208: trailing byte
	program := []byte{0x22, 0x06, 0x30, 0x01, 0x12, 0x00, 0x00, 0xEE, 0xAB}

	lines := Lines(program, 0x200)
	assert.Equal(t, 5, len(lines))

	assert.Equal(t, "L200", lines[0].Label)
	assert.Equal(t, "call", lines[0].Comment)
	assert.Equal(t, "skip", lines[1].Comment)
	assert.Equal(t, "jump", lines[2].Comment)
	assert.Equal(t, "L206", lines[3].Label)
	assert.Equal(t, "return", lines[3].Comment)
	assert.Equal(t, "DB $AB", lines[4].Text)
	assert.Empty(t, lines[4].Comment)

	var labelled []uint16
	for _, l := range lines {
		if l.Label != "" {
			labelled = append(labelled, l.Addr)
		}
	}
	assert.Equal(t, []uint16{0x200, 0x206}, labelled)
}

func TestDisassemble(t *testing.T) {
	var buf bytes.Buffer
	err := Disassemble(&buf, []byte{0x61, 0x2A, 0x12, 0x00}, 0x200)
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "L200:\n"))
	assert.True(t, strings.Contains(out, "200  612A  LD V1, $2A\n"))
	assert.True(t, strings.Contains(out, "202  1200  JP $200"))
	assert.True(t, strings.HasSuffix(out, "; jump\n"))
}

func TestDisassembleEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Disassemble(&buf, nil, 0x200))
	assert.Empty(t, buf.String())
}

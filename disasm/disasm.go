// Package disasm turns CHIP-8 opcodes into assembler text.
//
// Instruction names come from the retrogolib CHIP-8 opcode tables, the
// operands are formatted from our own decoder so that the listing shows
// exactly what the interpreter will execute.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/skx/chip8ulator/cpu"
)

// names holds the mnemonic for each operation, used when the opcode
// tables have no entry for a word we can execute.
var names = map[cpu.Op]string{
	cpu.OpNOP:     "NOP",
	cpu.OpSYS:     "SYS",
	cpu.OpCLS:     "CLS",
	cpu.OpRET:     "RET",
	cpu.OpJP:      "JP",
	cpu.OpCALL:    "CALL",
	cpu.OpSEByte:  "SE",
	cpu.OpSNEByte: "SNE",
	cpu.OpSEReg:   "SE",
	cpu.OpLDByte:  "LD",
	cpu.OpADDByte: "ADD",
	cpu.OpLDReg:   "LD",
	cpu.OpOR:      "OR",
	cpu.OpAND:     "AND",
	cpu.OpXOR:     "XOR",
	cpu.OpADDReg:  "ADD",
	cpu.OpSUB:     "SUB",
	cpu.OpSHR:     "SHR",
	cpu.OpSUBN:    "SUBN",
	cpu.OpSHL:     "SHL",
	cpu.OpSNEReg:  "SNE",
	cpu.OpLDI:     "LD",
	cpu.OpJPV0:    "JP",
	cpu.OpRND:     "RND",
	cpu.OpDRW:     "DRW",
	cpu.OpSKP:     "SKP",
	cpu.OpSKNP:    "SKNP",
	cpu.OpLDVxDT:  "LD",
	cpu.OpLDVxK:   "LD",
	cpu.OpLDDTVx:  "LD",
	cpu.OpLDSTVx:  "LD",
	cpu.OpADDI:    "ADD",
	cpu.OpLDF:     "LD",
	cpu.OpLDB:     "LD",
	cpu.OpLDIVx:   "LD",
	cpu.OpLDVxI:   "LD",
}

// Lookup finds the opcode table entry matching the given word, it
// returns nil if there is none.
func Lookup(word uint16) *chip8.Instruction {
	nibble := int((word & 0xF000) >> 12)
	for _, op := range chip8.Opcodes[nibble] {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// Mnemonic returns the assembler form of a single opcode, for example
// "LD V1, $2A".  Words which are not valid instructions are shown as
// data, "DW $FFFF".
func Mnemonic(word uint16) string {
	ins, ok := cpu.Decode(word)
	if !ok {
		return fmt.Sprintf("DW $%04X", word)
	}

	name := names[ins.Op]
	if found := Lookup(word); found != nil && found.Name != "" {
		name = strings.ToUpper(found.Name)
	}

	args := operands(ins)
	if args == "" {
		return name
	}
	return name + " " + args
}

// operands formats the arguments of an instruction.
func operands(ins cpu.Instruction) string {
	vx := fmt.Sprintf("V%X", ins.X)
	vy := fmt.Sprintf("V%X", ins.Y)

	switch ins.Op {
	case cpu.OpNOP, cpu.OpCLS, cpu.OpRET:
		return ""
	case cpu.OpSYS, cpu.OpJP, cpu.OpCALL:
		return fmt.Sprintf("$%03X", ins.NNN)
	case cpu.OpJPV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case cpu.OpLDI:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case cpu.OpSEByte, cpu.OpSNEByte, cpu.OpLDByte, cpu.OpADDByte, cpu.OpRND:
		return fmt.Sprintf("%s, $%02X", vx, ins.KK)
	case cpu.OpSEReg, cpu.OpSNEReg, cpu.OpLDReg, cpu.OpOR, cpu.OpAND,
		cpu.OpXOR, cpu.OpADDReg, cpu.OpSUB, cpu.OpSUBN:
		return vx + ", " + vy
	case cpu.OpSHR, cpu.OpSHL, cpu.OpSKP, cpu.OpSKNP:
		return vx
	case cpu.OpDRW:
		return fmt.Sprintf("%s, %s, $%X", vx, vy, ins.N)
	case cpu.OpLDVxDT:
		return vx + ", DT"
	case cpu.OpLDVxK:
		return vx + ", K"
	case cpu.OpLDDTVx:
		return "DT, " + vx
	case cpu.OpLDSTVx:
		return "ST, " + vx
	case cpu.OpADDI:
		return "I, " + vx
	case cpu.OpLDF:
		return "F, " + vx
	case cpu.OpLDB:
		return "B, " + vx
	case cpu.OpLDIVx:
		return "[I], " + vx
	case cpu.OpLDVxI:
		return vx + ", [I]"
	}
	return ""
}

// Line is a single disassembled word.
type Line struct {
	// Addr is the address the word is loaded at.
	Addr uint16

	// Word is the raw opcode.
	Word uint16

	// Text is the mnemonic.
	Text string

	// Label is set if a jump or call in the program targets Addr.
	Label string

	// Comment describes the control flow, if any.
	Comment string
}

// Lines disassembles a program which will be loaded at origin.
//
// A trailing odd byte is shown as a data word with a zero low byte.
func Lines(program []byte, origin uint16) []Line {
	var out []Line

	for i := 0; i < len(program); i += 2 {
		word := uint16(program[i]) << 8
		if i+1 < len(program) {
			word |= uint16(program[i+1])
		}

		l := Line{
			Addr: origin + uint16(i),
			Word: word,
			Text: Mnemonic(word),
		}
		if i+1 >= len(program) {
			l.Text = fmt.Sprintf("DB $%02X", program[i])
		} else {
			l.Comment = flow(word)
		}
		out = append(out, l)
	}

	// label the destinations of jumps and calls
	targets := make(map[uint16]bool)
	for _, l := range out {
		ins, ok := cpu.Decode(l.Word)
		if ok && (ins.Op == cpu.OpJP || ins.Op == cpu.OpCALL) {
			targets[ins.NNN] = true
		}
	}
	for i := range out {
		if targets[out[i].Addr] {
			out[i].Label = fmt.Sprintf("L%03X", out[i].Addr)
		}
	}
	return out
}

// flow describes how an instruction affects the program counter.
func flow(word uint16) string {
	ins := Lookup(word)
	if ins == nil {
		return ""
	}

	switch {
	case ins.Name == chip8.CallName:
		return "call"
	case ins.Name == chip8.RetName:
		return "return"
	case ins.Name == chip8.JpName:
		return "jump"
	case chip8.SkipInstructions.Contains(ins.Name):
		return "skip"
	}
	return ""
}

// Disassemble writes a listing of the program to the given writer: one
// line per word, showing the address, the raw bytes and the mnemonic.
func Disassemble(w io.Writer, program []byte, origin uint16) error {
	lines := Lines(program, origin)

	for _, l := range lines {
		if l.Label != "" {
			if _, err := fmt.Fprintf(w, "%s:\n", l.Label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		text := fmt.Sprintf("%03X  %04X  %s", l.Addr, l.Word, l.Text)
		if l.Comment != "" {
			text = fmt.Sprintf("%-32s; %s", text, l.Comment)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("writing line at %03X: %w", l.Addr, err)
		}
	}
	return nil
}

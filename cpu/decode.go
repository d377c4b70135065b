package cpu

// Op identifies a decoded operation.
type Op int

// The operations the interpreter understands, named after the usual
// assembler mnemonics.
const (
	OpInvalid Op = iota
	OpNOP        // 0000
	OpSYS        // 0nnn
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1nnn
	OpCALL       // 2nnn
	OpSEByte     // 3xkk
	OpSNEByte    // 4xkk
	OpSEReg      // 5xy0
	OpLDByte     // 6xkk
	OpADDByte    // 7xkk
	OpLDReg      // 8xy0
	OpOR         // 8xy1
	OpAND        // 8xy2
	OpXOR        // 8xy3
	OpADDReg     // 8xy4
	OpSUB        // 8xy5
	OpSHR        // 8xy6
	OpSUBN       // 8xy7
	OpSHL        // 8xyE
	OpSNEReg     // 9xy0
	OpLDI        // Annn
	OpJPV0       // Bnnn
	OpRND        // Cxkk
	OpDRW        // Dxyn
	OpSKP        // Ex9E
	OpSKNP       // ExA1
	OpLDVxDT     // Fx07
	OpLDVxK      // Fx0A
	OpLDDTVx     // Fx15
	OpLDSTVx     // Fx18
	OpADDI       // Fx1E
	OpLDF        // Fx29
	OpLDB        // Fx33
	OpLDIVx      // Fx55
	OpLDVxI      // Fx65
)

// Instruction is a decoded opcode, with every operand field extracted.
//
// Which fields are meaningful depends upon Op.
type Instruction struct {
	Op   Op
	Word uint16

	X   uint8
	Y   uint8
	N   uint8
	KK  uint8
	NNN uint16
}

// Decode splits an opcode into its fields, and identifies the operation.
//
// The class of instruction comes from the top nibble, and where a class
// holds more than one operation the low nibble or low byte selects it.
// The second return value is false for words which are not valid
// instructions.
func Decode(word uint16) (Instruction, bool) {
	ins := Instruction{
		Word: word,
		X:    uint8((word & 0x0F00) >> 8),
		Y:    uint8((word & 0x00F0) >> 4),
		N:    uint8(word & 0x000F),
		KK:   uint8(word & 0x00FF),
		NNN:  word & 0x0FFF,
	}
	ins.Op = classify(ins)
	return ins, ins.Op != OpInvalid
}

// classify picks the operation for an instruction.
func classify(ins Instruction) Op {
	switch ins.Word >> 12 {
	case 0x0:
		switch ins.NNN {
		case 0x000:
			return OpNOP
		case 0x0E0:
			return OpCLS
		case 0x0EE:
			return OpRET
		}
		return OpSYS
	case 0x1:
		return OpJP
	case 0x2:
		return OpCALL
	case 0x3:
		return OpSEByte
	case 0x4:
		return OpSNEByte
	case 0x5:
		if ins.N == 0 {
			return OpSEReg
		}
	case 0x6:
		return OpLDByte
	case 0x7:
		return OpADDByte
	case 0x8:
		return aluOps[ins.N]
	case 0x9:
		if ins.N == 0 {
			return OpSNEReg
		}
	case 0xA:
		return OpLDI
	case 0xB:
		return OpJPV0
	case 0xC:
		return OpRND
	case 0xD:
		return OpDRW
	case 0xE:
		switch ins.KK {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF:
		return miscOps[ins.KK]
	}
	return OpInvalid
}

// aluOps maps the low nibble of an 8xyN instruction to its operation.
var aluOps = [16]Op{
	0x0: OpLDReg,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADDReg,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

// miscOps maps the low byte of an FxKK instruction to its operation,
// missing entries are OpInvalid.
var miscOps = map[uint8]Op{
	0x07: OpLDVxDT,
	0x0A: OpLDVxK,
	0x15: OpLDDTVx,
	0x18: OpLDSTVx,
	0x1E: OpADDI,
	0x29: OpLDF,
	0x33: OpLDB,
	0x55: OpLDIVx,
	0x65: OpLDVxI,
}

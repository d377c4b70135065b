package cpu

// handlers returns the table of operations, with the function that
// implements each of them.
func handlers() map[Op]Handler {
	ops := make(map[Op]Handler)

	ops[OpNOP] = Handler{Desc: "NOP", Handler: func(c *CPU, ins Instruction) {}}
	ops[OpSYS] = Handler{Desc: "SYS", Handler: func(c *CPU, ins Instruction) {}}
	ops[OpCLS] = Handler{Desc: "CLS", Handler: opClear}
	ops[OpRET] = Handler{Desc: "RET", Handler: opReturn}
	ops[OpJP] = Handler{Desc: "JP", Handler: opJump}
	ops[OpCALL] = Handler{Desc: "CALL", Handler: opCall}
	ops[OpSEByte] = Handler{Desc: "SE Vx, byte", Handler: opSkipEqualByte}
	ops[OpSNEByte] = Handler{Desc: "SNE Vx, byte", Handler: opSkipNotEqualByte}
	ops[OpSEReg] = Handler{Desc: "SE Vx, Vy", Handler: opSkipEqualReg}
	ops[OpLDByte] = Handler{Desc: "LD Vx, byte", Handler: opLoadByte}
	ops[OpADDByte] = Handler{Desc: "ADD Vx, byte", Handler: opAddByte}
	ops[OpLDReg] = Handler{Desc: "LD Vx, Vy", Handler: opLoadReg}
	ops[OpOR] = Handler{Desc: "OR Vx, Vy", Handler: opOr}
	ops[OpAND] = Handler{Desc: "AND Vx, Vy", Handler: opAnd}
	ops[OpXOR] = Handler{Desc: "XOR Vx, Vy", Handler: opXor}
	ops[OpADDReg] = Handler{Desc: "ADD Vx, Vy", Handler: opAddReg}
	ops[OpSUB] = Handler{Desc: "SUB Vx, Vy", Handler: opSub}
	ops[OpSHR] = Handler{Desc: "SHR Vx", Handler: opShiftRight}
	ops[OpSUBN] = Handler{Desc: "SUBN Vx, Vy", Handler: opSubN}
	ops[OpSHL] = Handler{Desc: "SHL Vx", Handler: opShiftLeft}
	ops[OpSNEReg] = Handler{Desc: "SNE Vx, Vy", Handler: opSkipNotEqualReg}
	ops[OpLDI] = Handler{Desc: "LD I, addr", Handler: opLoadIndex}
	ops[OpJPV0] = Handler{Desc: "JP V0, addr", Handler: opJumpV0}
	ops[OpRND] = Handler{Desc: "RND Vx, byte", Handler: opRandom}
	ops[OpDRW] = Handler{Desc: "DRW Vx, Vy, nibble", Handler: opDraw}
	ops[OpSKP] = Handler{Desc: "SKP Vx", Handler: opSkipPressed}
	ops[OpSKNP] = Handler{Desc: "SKNP Vx", Handler: opSkipNotPressed}
	ops[OpLDVxDT] = Handler{Desc: "LD Vx, DT", Handler: opLoadDelay}
	ops[OpLDVxK] = Handler{Desc: "LD Vx, K", Handler: opWaitKey}
	ops[OpLDDTVx] = Handler{Desc: "LD DT, Vx", Handler: opSetDelay}
	ops[OpLDSTVx] = Handler{Desc: "LD ST, Vx", Handler: opSetSound}
	ops[OpADDI] = Handler{Desc: "ADD I, Vx", Handler: opAddIndex}
	ops[OpLDF] = Handler{Desc: "LD F, Vx", Handler: opFont}
	ops[OpLDB] = Handler{Desc: "LD B, Vx", Handler: opBCD}
	ops[OpLDIVx] = Handler{Desc: "LD [I], Vx", Handler: opStoreRegisters}
	ops[OpLDVxI] = Handler{Desc: "LD Vx, [I]", Handler: opLoadRegisters}

	return ops
}

// skip moves the program counter past the next instruction.
func (c *CPU) skip(cond bool) {
	if cond {
		c.state.PC += 2
	}
}

// 00E0
func opClear(c *CPU, ins Instruction) {
	c.disp.Clear()
}

// 00EE pops the return address, then decrements the stack pointer.
func opReturn(c *CPU, ins Instruction) {
	s := &c.state
	if c.policy == StackFault && s.Depth == 0 {
		c.fault("return with an empty stack")
		return
	}
	s.PC = s.Stack[s.SP]
	if s.SP == 0 {
		s.SP = StackSize - 1
	} else {
		s.SP--
	}
	if s.Depth > 0 {
		s.Depth--
	}
}

// 1nnn
func opJump(c *CPU, ins Instruction) {
	c.state.PC = ins.NNN
}

// 2nnn increments the stack pointer, then pushes the return address.
//
// Slot 0 is only reached by wrapping, so the sixteenth nested call
// overwrites it.
func opCall(c *CPU, ins Instruction) {
	s := &c.state
	if c.policy == StackFault && s.Depth >= StackSize-1 {
		c.fault("stack overflow")
		return
	}
	s.SP++
	if s.SP == StackSize {
		s.SP = 0
	}
	s.Stack[s.SP] = s.PC
	s.Depth++
	s.PC = ins.NNN
}

// 3xkk
func opSkipEqualByte(c *CPU, ins Instruction) {
	c.skip(c.state.V[ins.X] == ins.KK)
}

// 4xkk
func opSkipNotEqualByte(c *CPU, ins Instruction) {
	c.skip(c.state.V[ins.X] != ins.KK)
}

// 5xy0
func opSkipEqualReg(c *CPU, ins Instruction) {
	c.skip(c.state.V[ins.X] == c.state.V[ins.Y])
}

// 9xy0
func opSkipNotEqualReg(c *CPU, ins Instruction) {
	c.skip(c.state.V[ins.X] != c.state.V[ins.Y])
}

// 6xkk
func opLoadByte(c *CPU, ins Instruction) {
	c.state.V[ins.X] = ins.KK
}

// 7xkk wraps, and leaves VF alone.
func opAddByte(c *CPU, ins Instruction) {
	c.state.V[ins.X] += ins.KK
}

// 8xy0
func opLoadReg(c *CPU, ins Instruction) {
	c.state.V[ins.X] = c.state.V[ins.Y]
}

// 8xy1
func opOr(c *CPU, ins Instruction) {
	c.state.V[ins.X] |= c.state.V[ins.Y]
}

// 8xy2
func opAnd(c *CPU, ins Instruction) {
	c.state.V[ins.X] &= c.state.V[ins.Y]
}

// 8xy3
func opXor(c *CPU, ins Instruction) {
	c.state.V[ins.X] ^= c.state.V[ins.Y]
}

// flag converts a condition to the value stored in VF.
func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// The arithmetic operations below write VF after the result, so when x
// is F the flag is what remains.

// 8xy4, VF is written before the result so that when x is F the sum
// is kept.
func opAddReg(c *CPU, ins Instruction) {
	v := &c.state.V
	sum := uint16(v[ins.X]) + uint16(v[ins.Y])
	v[0xF] = flag(sum > 0xFF)
	v[ins.X] = uint8(sum)
}

// 8xy5
func opSub(c *CPU, ins Instruction) {
	v := &c.state.V
	vx, vy := v[ins.X], v[ins.Y]
	v[0xF] = flag(vx > vy)
	v[ins.X] = vx - vy
}

// 8xy6
func opShiftRight(c *CPU, ins Instruction) {
	v := &c.state.V
	vx := v[ins.X]
	v[0xF] = vx & 0x01
	v[ins.X] = vx >> 1
}

// 8xy7
func opSubN(c *CPU, ins Instruction) {
	v := &c.state.V
	vx, vy := v[ins.X], v[ins.Y]
	v[0xF] = flag(vy > vx)
	v[ins.X] = vy - vx
}

// 8xyE
func opShiftLeft(c *CPU, ins Instruction) {
	v := &c.state.V
	vx := v[ins.X]
	v[0xF] = vx >> 7
	v[ins.X] = vx << 1
}

// Annn
func opLoadIndex(c *CPU, ins Instruction) {
	c.state.I = ins.NNN
}

// Bnnn, the target may be beyond the end of RAM, in which case
// execution stalls.
func opJumpV0(c *CPU, ins Instruction) {
	c.state.PC = ins.NNN + uint16(c.state.V[0])
}

// Cxkk
func opRandom(c *CPU, ins Instruction) {
	c.state.V[ins.X] = uint8(c.rng.UintN(256)) & ins.KK
}

// Dxyn draws n rows of the sprite at I, most significant bit leftmost.
func opDraw(c *CPU, ins Instruction) {
	s := &c.state
	x := int(s.V[ins.X])
	y := int(s.V[ins.Y])

	collision := false
	for i := 0; i < int(ins.N); i++ {
		row := c.mem.Get(s.I + uint16(i))
		for j := 0; j < 8; j++ {
			bit := row&(0x80>>j) != 0
			if c.disp.SetPixel(x+j, y+i, bit) {
				collision = true
			}
		}
	}
	s.V[0xF] = flag(collision)
}

// Ex9E
func opSkipPressed(c *CPU, ins Instruction) {
	c.skip(c.keys.Get(c.state.V[ins.X]))
}

// ExA1
func opSkipNotPressed(c *CPU, ins Instruction) {
	c.skip(!c.keys.Get(c.state.V[ins.X]))
}

// Fx07
func opLoadDelay(c *CPU, ins Instruction) {
	c.state.V[ins.X] = c.state.Delay
}

// Fx0A stores a pressed key in Vx.  When no key is down the program
// counter is held on this instruction and the CPU waits, scanning the
// keypad on each later Step.
func opWaitKey(c *CPU, ins Instruction) {
	c.state.WaitReg = ins.X
	if c.scanForKey() {
		return
	}
	c.state.Mode = AwaitingKey
	c.state.PC = c.fetched
}

// Fx15
func opSetDelay(c *CPU, ins Instruction) {
	c.state.Delay = c.state.V[ins.X]
}

// Fx18
func opSetSound(c *CPU, ins Instruction) {
	c.state.Sound = c.state.V[ins.X]
}

// Fx1E sets VF when I overflows 12 bits.
func opAddIndex(c *CPU, ins Instruction) {
	sum := c.state.I + uint16(c.state.V[ins.X])
	c.state.V[0xF] = flag(sum > 0xFFF)
	c.state.I = sum & 0xFFF
}

// Fx29
func opFont(c *CPU, ins Instruction) {
	c.state.I = uint16(c.state.V[ins.X]&0xF) * glyphSize
}

// Fx33
func opBCD(c *CPU, ins Instruction) {
	vx := c.state.V[ins.X]
	c.mem.Set(c.state.I, vx/100)
	c.mem.Set(c.state.I+1, (vx/10)%10)
	c.mem.Set(c.state.I+2, vx%10)
}

// Fx55 leaves I unchanged.
func opStoreRegisters(c *CPU, ins Instruction) {
	for i := uint16(0); i <= uint16(ins.X); i++ {
		c.mem.Set(c.state.I+i, c.state.V[i])
	}
}

// Fx65 leaves I unchanged.
func opLoadRegisters(c *CPU, ins Instruction) {
	for i := uint16(0); i <= uint16(ins.X); i++ {
		c.state.V[i] = c.mem.Get(c.state.I + i)
	}
}

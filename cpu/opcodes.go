package cpu

import "github.com/Brad-S1/intel-8080-cpu-emulator/memory"

// Register field indices, as encoded in the low 3 bits (source) or bits
// 5-3 (destination) of most single-byte opcodes. 6 denotes the memory
// operand addressed through HL, not a physical register.
const (
	regB = 0
	regC = 1
	regD = 2
	regE = 3
	regH = 4
	regL = 5
	regM = 6
	regA = 7
)

// readReg returns the value of the 3-bit-encoded register/memory
// operand r.
func (c *CPU) readReg(mem *memory.Memory, r byte) byte {
	switch r {
	case regB:
		return c.B
	case regC:
		return c.C
	case regD:
		return c.D
	case regE:
		return c.E
	case regH:
		return c.H
	case regL:
		return c.L
	case regM:
		return mem.Read8(c.hl())
	default: // regA
		return c.A
	}
}

// writeReg stores v into the 3-bit-encoded register/memory operand r.
func (c *CPU) writeReg(mem *memory.Memory, r byte, v byte) {
	switch r {
	case regB:
		c.B = v
	case regC:
		c.C = v
	case regD:
		c.D = v
	case regE:
		c.E = v
	case regH:
		c.H = v
	case regL:
		c.L = v
	case regM:
		mem.Write8(c.hl(), v)
	default: // regA
		c.A = v
	}
}

// Register-pair field indices for the BC/DE/HL/SP group used by LXI,
// INX, DCX, DAD, STAX and LDAX.
const (
	rpBC = 0
	rpDE = 1
	rpHL = 2
	rpSP = 3
)

func (c *CPU) getRP(rp byte) uint16 {
	switch rp {
	case rpBC:
		return c.bc()
	case rpDE:
		return c.de()
	case rpHL:
		return c.hl()
	default: // rpSP
		return c.SP
	}
}

func (c *CPU) setRP(rp byte, v uint16) {
	switch rp {
	case rpBC:
		c.setBC(v)
	case rpDE:
		c.setDE(v)
	case rpHL:
		c.setHL(v)
	default: // rpSP
		c.SP = v
	}
}

// condition evaluates the 3-bit condition-code field used by Jcc, Ccc
// and Rcc: 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func (c *CPU) condition(cc byte) bool {
	switch cc {
	case 0:
		return !c.Flags.Z
	case 1:
		return c.Flags.Z
	case 2:
		return !c.Flags.CY
	case 3:
		return c.Flags.CY
	case 4:
		return !c.Flags.P
	case 5:
		return c.Flags.P
	case 6:
		return !c.Flags.S
	default: // 7
		return c.Flags.S
	}
}

// aluOp applies one of the eight register/immediate ALU operations
// (ADD, ADC, SUB, SBB, ANA, XRA, ORA, CMP, selected by the 3-bit field
// shared by the 0x80-0xBF register block and the 0xC6/CE/D6/.../FE
// immediate block) to the accumulator and the supplied operand.
func (c *CPU) aluOp(op byte, value byte) {
	switch op {
	case 0: // ADD
		c.A = c.add8(value, false)
	case 1: // ADC
		c.A = c.add8(value, c.Flags.CY)
	case 2: // SUB
		c.A = c.sub8(value, false)
	case 3: // SBB
		c.A = c.sub8(value, c.Flags.CY)
	case 4: // ANA
		c.A = c.logicalAnd(value)
	case 5: // XRA
		c.A = c.logicalXor(value)
	case 6: // ORA
		c.A = c.logicalOr(value)
	case 7: // CMP
		c.sub8(value, false) // flags only, A is not written
	}
}

// execute decodes and runs a single opcode, advancing PC as required.
// The 0x40-0x7F (MOV) and 0x80-0xBF (register-form ALU) ranges are
// perfectly regular bitfields, so they are decoded arithmetically
// instead of being enumerated one literal case per opcode; every other
// implemented opcode is an explicit case below. SPHL (0xF9) and the
// undefined slots have no case and return *UnimplementedOpcodeError.
func (c *CPU) execute(mem *memory.Memory, io IOBridge, opcode byte) error {
	switch {
	case opcode == 0x76: // HLT
		c.Halted = true
		return ErrHalted

	case opcode >= 0x40 && opcode <= 0x7F: // MOV r,r'
		dst := (opcode >> 3) & 0x07
		src := opcode & 0x07
		c.writeReg(mem, dst, c.readReg(mem, src))
		c.PC++
		return nil

	case opcode >= 0x80 && opcode <= 0xBF: // ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r
		op := (opcode >> 3) & 0x07
		src := opcode & 0x07
		c.aluOp(op, c.readReg(mem, src))
		c.PC++
		return nil
	}

	switch opcode {

	// Undocumented single-byte NOP aliases.
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		c.PC++

	case 0x01, 0x11, 0x21, 0x31: // LXI rp,d16
		rp := (opcode >> 4) & 0x03
		c.setRP(rp, mem.Read16(c.PC+1))
		c.PC += 3

	case 0x02, 0x12: // STAX rp (BC or DE only)
		rp := (opcode >> 4) & 0x03
		mem.Write8(c.getRP(rp), c.A)
		c.PC++

	case 0x0A, 0x1A: // LDAX rp (BC or DE only)
		rp := (opcode >> 4) & 0x03
		c.A = mem.Read8(c.getRP(rp))
		c.PC++

	case 0x03, 0x13, 0x23, 0x33: // INX rp
		rp := (opcode >> 4) & 0x03
		c.setRP(rp, c.getRP(rp)+1)
		c.PC++

	case 0x0B, 0x1B, 0x2B, 0x3B: // DCX rp
		rp := (opcode >> 4) & 0x03
		c.setRP(rp, c.getRP(rp)-1)
		c.PC++

	case 0x09, 0x19, 0x29, 0x39: // DAD rp
		rp := (opcode >> 4) & 0x03
		c.dad(c.getRP(rp))
		c.PC++

	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C: // INR r
		r := (opcode >> 3) & 0x07
		c.writeReg(mem, r, c.inr(c.readReg(mem, r)))
		c.PC++

	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D: // DCR r
		r := (opcode >> 3) & 0x07
		c.writeReg(mem, r, c.dcr(c.readReg(mem, r)))
		c.PC++

	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E: // MVI r,d8
		r := (opcode >> 3) & 0x07
		c.writeReg(mem, r, mem.Read8(c.PC+1))
		c.PC += 2

	case 0x07: // RLC
		c.rlc()
		c.PC++
	case 0x0F: // RRC
		c.rrc()
		c.PC++
	case 0x17: // RAL
		c.ral()
		c.PC++
	case 0x1F: // RAR
		c.rar()
		c.PC++

	case 0x22: // SHLD a16
		addr := mem.Read16(c.PC + 1)
		mem.Write8(addr, c.L)
		mem.Write8(addr+1, c.H)
		c.PC += 3

	case 0x2A: // LHLD a16
		addr := mem.Read16(c.PC + 1)
		c.L = mem.Read8(addr)
		c.H = mem.Read8(addr + 1)
		c.PC += 3

	case 0x27: // DAA
		c.daa()
		c.PC++

	case 0x2F: // CMA - complement accumulator, no flags affected
		c.A = ^c.A
		c.PC++

	case 0x32: // STA a16
		mem.Write8(mem.Read16(c.PC+1), c.A)
		c.PC += 3

	case 0x3A: // LDA a16
		c.A = mem.Read8(mem.Read16(c.PC + 1))
		c.PC += 3

	case 0x37: // STC
		c.Flags.CY = true
		c.PC++

	case 0x3F: // CMC
		c.Flags.CY = !c.Flags.CY
		c.PC++

	case 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE: // ALU A,d8
		op := (opcode >> 3) & 0x07
		c.aluOp(op, mem.Read8(c.PC+1))
		c.PC += 2

	case 0xC9: // RET
		c.PC = c.pop(mem)

	case 0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8: // Rcc
		cc := (opcode >> 3) & 0x07
		if c.condition(cc) {
			c.PC = c.pop(mem)
		} else {
			c.PC++
		}

	case 0xC3: // JMP a16
		c.PC = mem.Read16(c.PC + 1)

	case 0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA: // Jcc
		cc := (opcode >> 3) & 0x07
		addr := mem.Read16(c.PC + 1)
		if c.condition(cc) {
			c.PC = addr
		} else {
			c.PC += 3
		}

	case 0xCD: // CALL a16
		addr := mem.Read16(c.PC + 1)
		c.push(mem, c.PC+3)
		c.PC = addr

	case 0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC: // Ccc
		cc := (opcode >> 3) & 0x07
		addr := mem.Read16(c.PC + 1)
		if c.condition(cc) {
			c.push(mem, c.PC+3)
			c.PC = addr
		} else {
			c.PC += 3
		}

	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF: // RST n
		n := (opcode >> 3) & 0x07
		c.push(mem, c.PC+1)
		c.PC = uint16(8) * uint16(n)

	case 0xC1, 0xD1, 0xE1: // POP rp (BC, DE, HL)
		rp := (opcode >> 4) & 0x03
		c.setRP(rp, c.pop(mem))
		c.PC++

	case 0xF1: // POP PSW
		v := c.pop(mem)
		c.A = byte(v >> 8)
		c.unpackFlags(byte(v))
		c.PC++

	case 0xC5, 0xD5, 0xE5: // PUSH rp (BC, DE, HL)
		rp := (opcode >> 4) & 0x03
		c.push(mem, c.getRP(rp))
		c.PC++

	case 0xF5: // PUSH PSW
		c.push(mem, uint16(c.A)<<8|uint16(c.packFlags()))
		c.PC++

	case 0xE9: // PCHL
		c.PC = c.hl()

	case 0xE3: // XTHL
		spLo := mem.Read8(c.SP)
		spHi := mem.Read8(c.SP + 1)
		mem.Write8(c.SP, c.L)
		mem.Write8(c.SP+1, c.H)
		c.L = spLo
		c.H = spHi
		c.PC++

	case 0xEB: // XCHG
		c.H, c.D = c.D, c.H
		c.L, c.E = c.E, c.L
		c.PC++

	case 0xD3: // OUT d8
		port := mem.Read8(c.PC + 1)
		io.Out(port, c.A)
		c.PC += 2

	case 0xDB: // IN d8
		port := mem.Read8(c.PC + 1)
		c.A = io.In(port)
		c.PC += 2

	case 0xF3: // DI
		c.InterruptsEnabled = false
		c.PC++

	case 0xFB: // EI
		c.InterruptsEnabled = true
		c.PC++

	default:
		err := &UnimplementedOpcodeError{Opcode: opcode, PC: c.PC}
		c.logger().Printf("%s", err)
		return err
	}

	return nil
}

// Code generated from the documented 6502 opcode matrix plus the
// commonly emulated undocumented opcodes this emulator supports
// (LAX, SAX, DCP, ISB, SLO, SRE, ALR, ANC, multi-byte NOPs); every
// other undocumented opcode number is left as an unknown opcode.
package cpu

var opcodeTable [256]opcodeEntry

func init() {
	entries := map[uint8]opcodeEntry{
		0x00: {name: "BRK", mode: modeImmediate, handler: opBRK},
		0x01: {name: "ORA", mode: modeIndirectX, handler: opLogic(logicORA, modeIndirectX)},
		0x03: {name: "SLO", mode: modeIndirectX, handler: opSLO(modeIndirectX)},
		0x04: {name: "NOP", mode: modeZeroPage, handler: opNOP(modeZeroPage)},
		0x05: {name: "ORA", mode: modeZeroPage, handler: opLogic(logicORA, modeZeroPage)},
		0x06: {name: "ASL", mode: modeZeroPage, handler: opShiftMem((*Chip).shiftASL, modeZeroPage)},
		0x07: {name: "SLO", mode: modeZeroPage, handler: opSLO(modeZeroPage)},
		0x08: {name: "PHP", mode: modeImplied, handler: opPHP},
		0x09: {name: "ORA", mode: modeImmediate, handler: opLogic(logicORA, modeImmediate)},
		0x0A: {name: "ASL", mode: modeAccumulator, handler: opShiftAcc((*Chip).shiftASL)},
		0x0B: {name: "ANC", mode: modeImmediate, handler: opANC(modeImmediate)},
		0x0C: {name: "NOP", mode: modeAbsolute, handler: opNOP(modeAbsolute)},
		0x0D: {name: "ORA", mode: modeAbsolute, handler: opLogic(logicORA, modeAbsolute)},
		0x0E: {name: "ASL", mode: modeAbsolute, handler: opShiftMem((*Chip).shiftASL, modeAbsolute)},
		0x0F: {name: "SLO", mode: modeAbsolute, handler: opSLO(modeAbsolute)},
		0x10: {name: "BPL", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return !c.flagSet(FlagNegative) })},
		0x11: {name: "ORA", mode: modeIndirectY, handler: opLogic(logicORA, modeIndirectY)},
		0x13: {name: "SLO", mode: modeIndirectY, handler: opSLO(modeIndirectY)},
		0x14: {name: "NOP", mode: modeZeroPageX, handler: opNOP(modeZeroPageX)},
		0x15: {name: "ORA", mode: modeZeroPageX, handler: opLogic(logicORA, modeZeroPageX)},
		0x16: {name: "ASL", mode: modeZeroPageX, handler: opShiftMem((*Chip).shiftASL, modeZeroPageX)},
		0x17: {name: "SLO", mode: modeZeroPageX, handler: opSLO(modeZeroPageX)},
		0x18: {name: "CLC", mode: modeImplied, handler: opFlag(FlagCarry, false)},
		0x19: {name: "ORA", mode: modeAbsoluteY, handler: opLogic(logicORA, modeAbsoluteY)},
		0x1A: {name: "NOP", mode: modeImplied, handler: opNOP(modeImplied)},
		0x1B: {name: "SLO", mode: modeAbsoluteY, handler: opSLO(modeAbsoluteY)},
		0x1C: {name: "NOP", mode: modeAbsoluteX, handler: opNOP(modeAbsoluteX)},
		0x1D: {name: "ORA", mode: modeAbsoluteX, handler: opLogic(logicORA, modeAbsoluteX)},
		0x1E: {name: "ASL", mode: modeAbsoluteX, handler: opShiftMem((*Chip).shiftASL, modeAbsoluteX)},
		0x1F: {name: "SLO", mode: modeAbsoluteX, handler: opSLO(modeAbsoluteX)},
		0x20: {name: "JSR", mode: modeAbsolute, handler: opJSR},
		0x21: {name: "AND", mode: modeIndirectX, handler: opLogic(logicAND, modeIndirectX)},
		0x24: {name: "BIT", mode: modeZeroPage, handler: opBIT(modeZeroPage)},
		0x25: {name: "AND", mode: modeZeroPage, handler: opLogic(logicAND, modeZeroPage)},
		0x26: {name: "ROL", mode: modeZeroPage, handler: opShiftMem((*Chip).shiftROL, modeZeroPage)},
		0x28: {name: "PLP", mode: modeImplied, handler: opPLP},
		0x29: {name: "AND", mode: modeImmediate, handler: opLogic(logicAND, modeImmediate)},
		0x2A: {name: "ROL", mode: modeAccumulator, handler: opShiftAcc((*Chip).shiftROL)},
		0x2B: {name: "ANC", mode: modeImmediate, handler: opANC(modeImmediate)},
		0x2C: {name: "BIT", mode: modeAbsolute, handler: opBIT(modeAbsolute)},
		0x2D: {name: "AND", mode: modeAbsolute, handler: opLogic(logicAND, modeAbsolute)},
		0x2E: {name: "ROL", mode: modeAbsolute, handler: opShiftMem((*Chip).shiftROL, modeAbsolute)},
		0x30: {name: "BMI", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return c.flagSet(FlagNegative) })},
		0x31: {name: "AND", mode: modeIndirectY, handler: opLogic(logicAND, modeIndirectY)},
		0x34: {name: "NOP", mode: modeZeroPageX, handler: opNOP(modeZeroPageX)},
		0x35: {name: "AND", mode: modeZeroPageX, handler: opLogic(logicAND, modeZeroPageX)},
		0x36: {name: "ROL", mode: modeZeroPageX, handler: opShiftMem((*Chip).shiftROL, modeZeroPageX)},
		0x38: {name: "SEC", mode: modeImplied, handler: opFlag(FlagCarry, true)},
		0x39: {name: "AND", mode: modeAbsoluteY, handler: opLogic(logicAND, modeAbsoluteY)},
		0x3A: {name: "NOP", mode: modeImplied, handler: opNOP(modeImplied)},
		0x3C: {name: "NOP", mode: modeAbsoluteX, handler: opNOP(modeAbsoluteX)},
		0x3D: {name: "AND", mode: modeAbsoluteX, handler: opLogic(logicAND, modeAbsoluteX)},
		0x3E: {name: "ROL", mode: modeAbsoluteX, handler: opShiftMem((*Chip).shiftROL, modeAbsoluteX)},
		0x40: {name: "RTI", mode: modeImplied, handler: opRTI},
		0x41: {name: "EOR", mode: modeIndirectX, handler: opLogic(logicEOR, modeIndirectX)},
		0x43: {name: "SRE", mode: modeIndirectX, handler: opSRE(modeIndirectX)},
		0x44: {name: "NOP", mode: modeZeroPage, handler: opNOP(modeZeroPage)},
		0x45: {name: "EOR", mode: modeZeroPage, handler: opLogic(logicEOR, modeZeroPage)},
		0x46: {name: "LSR", mode: modeZeroPage, handler: opShiftMem((*Chip).shiftLSR, modeZeroPage)},
		0x47: {name: "SRE", mode: modeZeroPage, handler: opSRE(modeZeroPage)},
		0x48: {name: "PHA", mode: modeImplied, handler: opPHA},
		0x49: {name: "EOR", mode: modeImmediate, handler: opLogic(logicEOR, modeImmediate)},
		0x4A: {name: "LSR", mode: modeAccumulator, handler: opShiftAcc((*Chip).shiftLSR)},
		0x4B: {name: "ALR", mode: modeImmediate, handler: opALR(modeImmediate)},
		0x4C: {name: "JMP", mode: modeAbsolute, handler: opJMP(modeAbsolute)},
		0x4D: {name: "EOR", mode: modeAbsolute, handler: opLogic(logicEOR, modeAbsolute)},
		0x4E: {name: "LSR", mode: modeAbsolute, handler: opShiftMem((*Chip).shiftLSR, modeAbsolute)},
		0x4F: {name: "SRE", mode: modeAbsolute, handler: opSRE(modeAbsolute)},
		0x50: {name: "BVC", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return !c.flagSet(FlagOverflow) })},
		0x51: {name: "EOR", mode: modeIndirectY, handler: opLogic(logicEOR, modeIndirectY)},
		0x53: {name: "SRE", mode: modeIndirectY, handler: opSRE(modeIndirectY)},
		0x54: {name: "NOP", mode: modeZeroPageX, handler: opNOP(modeZeroPageX)},
		0x55: {name: "EOR", mode: modeZeroPageX, handler: opLogic(logicEOR, modeZeroPageX)},
		0x56: {name: "LSR", mode: modeZeroPageX, handler: opShiftMem((*Chip).shiftLSR, modeZeroPageX)},
		0x57: {name: "SRE", mode: modeZeroPageX, handler: opSRE(modeZeroPageX)},
		0x58: {name: "CLI", mode: modeImplied, handler: opFlag(FlagInterrupt, false)},
		0x59: {name: "EOR", mode: modeAbsoluteY, handler: opLogic(logicEOR, modeAbsoluteY)},
		0x5A: {name: "NOP", mode: modeImplied, handler: opNOP(modeImplied)},
		0x5B: {name: "SRE", mode: modeAbsoluteY, handler: opSRE(modeAbsoluteY)},
		0x5C: {name: "NOP", mode: modeAbsoluteX, handler: opNOP(modeAbsoluteX)},
		0x5D: {name: "EOR", mode: modeAbsoluteX, handler: opLogic(logicEOR, modeAbsoluteX)},
		0x5E: {name: "LSR", mode: modeAbsoluteX, handler: opShiftMem((*Chip).shiftLSR, modeAbsoluteX)},
		0x5F: {name: "SRE", mode: modeAbsoluteX, handler: opSRE(modeAbsoluteX)},
		0x60: {name: "RTS", mode: modeImplied, handler: opRTS},
		0x61: {name: "ADC", mode: modeIndirectX, handler: opADC(modeIndirectX)},
		0x64: {name: "NOP", mode: modeZeroPage, handler: opNOP(modeZeroPage)},
		0x65: {name: "ADC", mode: modeZeroPage, handler: opADC(modeZeroPage)},
		0x66: {name: "ROR", mode: modeZeroPage, handler: opShiftMem((*Chip).shiftROR, modeZeroPage)},
		0x68: {name: "PLA", mode: modeImplied, handler: opPLA},
		0x69: {name: "ADC", mode: modeImmediate, handler: opADC(modeImmediate)},
		0x6A: {name: "ROR", mode: modeAccumulator, handler: opShiftAcc((*Chip).shiftROR)},
		0x6C: {name: "JMP", mode: modeIndirect, handler: opJMP(modeIndirect)},
		0x6D: {name: "ADC", mode: modeAbsolute, handler: opADC(modeAbsolute)},
		0x6E: {name: "ROR", mode: modeAbsolute, handler: opShiftMem((*Chip).shiftROR, modeAbsolute)},
		0x70: {name: "BVS", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return c.flagSet(FlagOverflow) })},
		0x71: {name: "ADC", mode: modeIndirectY, handler: opADC(modeIndirectY)},
		0x74: {name: "NOP", mode: modeZeroPageX, handler: opNOP(modeZeroPageX)},
		0x75: {name: "ADC", mode: modeZeroPageX, handler: opADC(modeZeroPageX)},
		0x76: {name: "ROR", mode: modeZeroPageX, handler: opShiftMem((*Chip).shiftROR, modeZeroPageX)},
		0x78: {name: "SEI", mode: modeImplied, handler: opFlag(FlagInterrupt, true)},
		0x79: {name: "ADC", mode: modeAbsoluteY, handler: opADC(modeAbsoluteY)},
		0x7A: {name: "NOP", mode: modeImplied, handler: opNOP(modeImplied)},
		0x7C: {name: "NOP", mode: modeAbsoluteX, handler: opNOP(modeAbsoluteX)},
		0x7D: {name: "ADC", mode: modeAbsoluteX, handler: opADC(modeAbsoluteX)},
		0x7E: {name: "ROR", mode: modeAbsoluteX, handler: opShiftMem((*Chip).shiftROR, modeAbsoluteX)},
		0x80: {name: "NOP", mode: modeImmediate, handler: opNOP(modeImmediate)},
		0x81: {name: "STA", mode: modeIndirectX, handler: opStore(getA, modeIndirectX)},
		0x82: {name: "NOP", mode: modeImmediate, handler: opNOP(modeImmediate)},
		0x83: {name: "SAX", mode: modeIndirectX, handler: opSAX(modeIndirectX)},
		0x84: {name: "STY", mode: modeZeroPage, handler: opStore(getY, modeZeroPage)},
		0x85: {name: "STA", mode: modeZeroPage, handler: opStore(getA, modeZeroPage)},
		0x86: {name: "STX", mode: modeZeroPage, handler: opStore(getX, modeZeroPage)},
		0x87: {name: "SAX", mode: modeZeroPage, handler: opSAX(modeZeroPage)},
		0x88: {name: "DEY", mode: modeImplied, handler: opAdjustReg(getY, setY, 0xFF)},
		0x89: {name: "NOP", mode: modeImmediate, handler: opNOP(modeImmediate)},
		0x8A: {name: "TXA", mode: modeImplied, handler: opTransfer(getX, setA)},
		0x8C: {name: "STY", mode: modeAbsolute, handler: opStore(getY, modeAbsolute)},
		0x8D: {name: "STA", mode: modeAbsolute, handler: opStore(getA, modeAbsolute)},
		0x8E: {name: "STX", mode: modeAbsolute, handler: opStore(getX, modeAbsolute)},
		0x8F: {name: "SAX", mode: modeAbsolute, handler: opSAX(modeAbsolute)},
		0x90: {name: "BCC", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return !c.flagSet(FlagCarry) })},
		0x91: {name: "STA", mode: modeIndirectY, handler: opStore(getA, modeIndirectY)},
		0x94: {name: "STY", mode: modeZeroPageX, handler: opStore(getY, modeZeroPageX)},
		0x95: {name: "STA", mode: modeZeroPageX, handler: opStore(getA, modeZeroPageX)},
		0x96: {name: "STX", mode: modeZeroPageY, handler: opStore(getX, modeZeroPageY)},
		0x97: {name: "SAX", mode: modeZeroPageY, handler: opSAX(modeZeroPageY)},
		0x98: {name: "TYA", mode: modeImplied, handler: opTransfer(getY, setA)},
		0x99: {name: "STA", mode: modeAbsoluteY, handler: opStore(getA, modeAbsoluteY)},
		0x9A: {name: "TXS", mode: modeImplied, handler: opTXS},
		0x9D: {name: "STA", mode: modeAbsoluteX, handler: opStore(getA, modeAbsoluteX)},
		0xA0: {name: "LDY", mode: modeImmediate, handler: opLoad(setY, modeImmediate)},
		0xA1: {name: "LDA", mode: modeIndirectX, handler: opLoad(setA, modeIndirectX)},
		0xA2: {name: "LDX", mode: modeImmediate, handler: opLoad(setX, modeImmediate)},
		0xA3: {name: "LAX", mode: modeIndirectX, handler: opLAX(modeIndirectX)},
		0xA4: {name: "LDY", mode: modeZeroPage, handler: opLoad(setY, modeZeroPage)},
		0xA5: {name: "LDA", mode: modeZeroPage, handler: opLoad(setA, modeZeroPage)},
		0xA6: {name: "LDX", mode: modeZeroPage, handler: opLoad(setX, modeZeroPage)},
		0xA7: {name: "LAX", mode: modeZeroPage, handler: opLAX(modeZeroPage)},
		0xA8: {name: "TAY", mode: modeImplied, handler: opTransfer(getA, setY)},
		0xA9: {name: "LDA", mode: modeImmediate, handler: opLoad(setA, modeImmediate)},
		0xAA: {name: "TAX", mode: modeImplied, handler: opTransfer(getA, setX)},
		0xAC: {name: "LDY", mode: modeAbsolute, handler: opLoad(setY, modeAbsolute)},
		0xAD: {name: "LDA", mode: modeAbsolute, handler: opLoad(setA, modeAbsolute)},
		0xAE: {name: "LDX", mode: modeAbsolute, handler: opLoad(setX, modeAbsolute)},
		0xAF: {name: "LAX", mode: modeAbsolute, handler: opLAX(modeAbsolute)},
		0xB0: {name: "BCS", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return c.flagSet(FlagCarry) })},
		0xB1: {name: "LDA", mode: modeIndirectY, handler: opLoad(setA, modeIndirectY)},
		0xB3: {name: "LAX", mode: modeIndirectY, handler: opLAX(modeIndirectY)},
		0xB4: {name: "LDY", mode: modeZeroPageX, handler: opLoad(setY, modeZeroPageX)},
		0xB5: {name: "LDA", mode: modeZeroPageX, handler: opLoad(setA, modeZeroPageX)},
		0xB6: {name: "LDX", mode: modeZeroPageY, handler: opLoad(setX, modeZeroPageY)},
		0xB7: {name: "LAX", mode: modeZeroPageY, handler: opLAX(modeZeroPageY)},
		0xB8: {name: "CLV", mode: modeImplied, handler: opFlag(FlagOverflow, false)},
		0xB9: {name: "LDA", mode: modeAbsoluteY, handler: opLoad(setA, modeAbsoluteY)},
		0xBA: {name: "TSX", mode: modeImplied, handler: opTransfer(getSP, setX)},
		0xBC: {name: "LDY", mode: modeAbsoluteX, handler: opLoad(setY, modeAbsoluteX)},
		0xBD: {name: "LDA", mode: modeAbsoluteX, handler: opLoad(setA, modeAbsoluteX)},
		0xBE: {name: "LDX", mode: modeAbsoluteY, handler: opLoad(setX, modeAbsoluteY)},
		0xBF: {name: "LAX", mode: modeAbsoluteY, handler: opLAX(modeAbsoluteY)},
		0xC0: {name: "CPY", mode: modeImmediate, handler: opCompare(getY, modeImmediate)},
		0xC1: {name: "CMP", mode: modeIndirectX, handler: opCompare(getA, modeIndirectX)},
		0xC2: {name: "NOP", mode: modeImmediate, handler: opNOP(modeImmediate)},
		0xC3: {name: "DCP", mode: modeIndirectX, handler: opDCP(modeIndirectX)},
		0xC4: {name: "CPY", mode: modeZeroPage, handler: opCompare(getY, modeZeroPage)},
		0xC5: {name: "CMP", mode: modeZeroPage, handler: opCompare(getA, modeZeroPage)},
		0xC6: {name: "DEC", mode: modeZeroPage, handler: opAdjustMem(0xFF, modeZeroPage)},
		0xC7: {name: "DCP", mode: modeZeroPage, handler: opDCP(modeZeroPage)},
		0xC8: {name: "INY", mode: modeImplied, handler: opAdjustReg(getY, setY, 1)},
		0xC9: {name: "CMP", mode: modeImmediate, handler: opCompare(getA, modeImmediate)},
		0xCA: {name: "DEX", mode: modeImplied, handler: opAdjustReg(getX, setX, 0xFF)},
		0xCC: {name: "CPY", mode: modeAbsolute, handler: opCompare(getY, modeAbsolute)},
		0xCD: {name: "CMP", mode: modeAbsolute, handler: opCompare(getA, modeAbsolute)},
		0xCE: {name: "DEC", mode: modeAbsolute, handler: opAdjustMem(0xFF, modeAbsolute)},
		0xCF: {name: "DCP", mode: modeAbsolute, handler: opDCP(modeAbsolute)},
		0xD0: {name: "BNE", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return !c.flagSet(FlagZero) })},
		0xD1: {name: "CMP", mode: modeIndirectY, handler: opCompare(getA, modeIndirectY)},
		0xD3: {name: "DCP", mode: modeIndirectY, handler: opDCP(modeIndirectY)},
		0xD4: {name: "NOP", mode: modeZeroPageX, handler: opNOP(modeZeroPageX)},
		0xD5: {name: "CMP", mode: modeZeroPageX, handler: opCompare(getA, modeZeroPageX)},
		0xD6: {name: "DEC", mode: modeZeroPageX, handler: opAdjustMem(0xFF, modeZeroPageX)},
		0xD7: {name: "DCP", mode: modeZeroPageX, handler: opDCP(modeZeroPageX)},
		0xD8: {name: "CLD", mode: modeImplied, handler: opFlag(FlagDecimal, false)},
		0xD9: {name: "CMP", mode: modeAbsoluteY, handler: opCompare(getA, modeAbsoluteY)},
		0xDA: {name: "NOP", mode: modeImplied, handler: opNOP(modeImplied)},
		0xDB: {name: "DCP", mode: modeAbsoluteY, handler: opDCP(modeAbsoluteY)},
		0xDC: {name: "NOP", mode: modeAbsoluteX, handler: opNOP(modeAbsoluteX)},
		0xDD: {name: "CMP", mode: modeAbsoluteX, handler: opCompare(getA, modeAbsoluteX)},
		0xDE: {name: "DEC", mode: modeAbsoluteX, handler: opAdjustMem(0xFF, modeAbsoluteX)},
		0xDF: {name: "DCP", mode: modeAbsoluteX, handler: opDCP(modeAbsoluteX)},
		0xE0: {name: "CPX", mode: modeImmediate, handler: opCompare(getX, modeImmediate)},
		0xE1: {name: "SBC", mode: modeIndirectX, handler: opSBC(modeIndirectX)},
		0xE2: {name: "NOP", mode: modeImmediate, handler: opNOP(modeImmediate)},
		0xE3: {name: "ISB", mode: modeIndirectX, handler: opISB(modeIndirectX)},
		0xE4: {name: "CPX", mode: modeZeroPage, handler: opCompare(getX, modeZeroPage)},
		0xE5: {name: "SBC", mode: modeZeroPage, handler: opSBC(modeZeroPage)},
		0xE6: {name: "INC", mode: modeZeroPage, handler: opAdjustMem(1, modeZeroPage)},
		0xE7: {name: "ISB", mode: modeZeroPage, handler: opISB(modeZeroPage)},
		0xE8: {name: "INX", mode: modeImplied, handler: opAdjustReg(getX, setX, 1)},
		0xE9: {name: "SBC", mode: modeImmediate, handler: opSBC(modeImmediate)},
		0xEA: {name: "NOP", mode: modeImplied, handler: opNOP(modeImplied)},
		0xEB: {name: "SBC", mode: modeImmediate, handler: opSBC(modeImmediate)},
		0xEC: {name: "CPX", mode: modeAbsolute, handler: opCompare(getX, modeAbsolute)},
		0xED: {name: "SBC", mode: modeAbsolute, handler: opSBC(modeAbsolute)},
		0xEE: {name: "INC", mode: modeAbsolute, handler: opAdjustMem(1, modeAbsolute)},
		0xEF: {name: "ISB", mode: modeAbsolute, handler: opISB(modeAbsolute)},
		0xF0: {name: "BEQ", mode: modeRelative, handler: opBranch(func(c *Chip) bool { return c.flagSet(FlagZero) })},
		0xF1: {name: "SBC", mode: modeIndirectY, handler: opSBC(modeIndirectY)},
		0xF3: {name: "ISB", mode: modeIndirectY, handler: opISB(modeIndirectY)},
		0xF4: {name: "NOP", mode: modeZeroPageX, handler: opNOP(modeZeroPageX)},
		0xF5: {name: "SBC", mode: modeZeroPageX, handler: opSBC(modeZeroPageX)},
		0xF6: {name: "INC", mode: modeZeroPageX, handler: opAdjustMem(1, modeZeroPageX)},
		0xF7: {name: "ISB", mode: modeZeroPageX, handler: opISB(modeZeroPageX)},
		0xF8: {name: "SED", mode: modeImplied, handler: opFlag(FlagDecimal, true)},
		0xF9: {name: "SBC", mode: modeAbsoluteY, handler: opSBC(modeAbsoluteY)},
		0xFA: {name: "NOP", mode: modeImplied, handler: opNOP(modeImplied)},
		0xFB: {name: "ISB", mode: modeAbsoluteY, handler: opISB(modeAbsoluteY)},
		0xFC: {name: "NOP", mode: modeAbsoluteX, handler: opNOP(modeAbsoluteX)},
		0xFD: {name: "SBC", mode: modeAbsoluteX, handler: opSBC(modeAbsoluteX)},
		0xFE: {name: "INC", mode: modeAbsoluteX, handler: opAdjustMem(1, modeAbsoluteX)},
		0xFF: {name: "ISB", mode: modeAbsoluteX, handler: opISB(modeAbsoluteX)},
	}
	for op, e := range entries {
		opcodeTable[op] = e
	}
}

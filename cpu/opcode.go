package cpu

import (
	"fmt"
)

// CodeOp is a basic opcode, held in bits 0-4 of the instruction word.
type CodeOp int

const (
	OP_EXT = CodeOp(0x00) // extended, real opcode in the b field
	OP_SET = CodeOp(0x01)
	OP_ADD = CodeOp(0x02)
	OP_SUB = CodeOp(0x03)
	OP_MUL = CodeOp(0x04)
	OP_MLI = CodeOp(0x05)
	OP_DIV = CodeOp(0x06)
	OP_DVI = CodeOp(0x07)
	OP_MOD = CodeOp(0x08)
	OP_MDI = CodeOp(0x09)
	OP_AND = CodeOp(0x0a)
	OP_BOR = CodeOp(0x0b)
	OP_XOR = CodeOp(0x0c)
	OP_SHR = CodeOp(0x0d)
	OP_ASR = CodeOp(0x0e)
	OP_SHL = CodeOp(0x0f)
	OP_IFB = CodeOp(0x10)
	OP_IFC = CodeOp(0x11)
	OP_IFE = CodeOp(0x12)
	OP_IFN = CodeOp(0x13)
	OP_IFG = CodeOp(0x14)
	OP_IFA = CodeOp(0x15)
	OP_IFL = CodeOp(0x16)
	OP_IFU = CodeOp(0x17)
	OP_ADX = CodeOp(0x1a)
	OP_SBX = CodeOp(0x1b)
	OP_STI = CodeOp(0x1e)
	OP_STD = CodeOp(0x1f)
)

func (op CodeOp) String() string {
	if op >= 0 && int(op) < len(basicTable) && basicTable[op].name != "" {
		return basicTable[op].name
	}
	return fmt.Sprintf("CodeOp(0x%02x)", int(op))
}

// CodeExt is an extended opcode, held in the b field when the basic opcode
// is OP_EXT.
type CodeExt int

const (
	EXT_JSR = CodeExt(0x01)
	EXT_HCF = CodeExt(0x07)
	EXT_INT = CodeExt(0x08)
	EXT_IAG = CodeExt(0x09)
	EXT_IAS = CodeExt(0x0a)
	EXT_IAP = CodeExt(0x0b)
	EXT_IAQ = CodeExt(0x0c)
	EXT_HWN = CodeExt(0x10)
	EXT_HWQ = CodeExt(0x11)
	EXT_HWI = CodeExt(0x12)
)

func (ext CodeExt) String() string {
	if ext >= 0 && int(ext) < len(extendedTable) && extendedTable[ext].name != "" {
		return extendedTable[ext].name
	}
	return fmt.Sprintf("CodeExt(0x%02x)", int(ext))
}

// Operand is an operand addressing mode code.
type Operand int

const (
	OPERAND_REG          = Operand(0x00) // register, + Register
	OPERAND_REG_PTR      = Operand(0x08) // [register], + Register
	OPERAND_REG_NEXT_PTR = Operand(0x10) // [next word + register], + Register
	OPERAND_PUSH_POP     = Operand(0x18) // PUSH as b, POP as a
	OPERAND_PEEK         = Operand(0x19) // [SP]
	OPERAND_PICK         = Operand(0x1a) // [SP + next word]
	OPERAND_SP           = Operand(0x1b)
	OPERAND_PC           = Operand(0x1c)
	OPERAND_EX           = Operand(0x1d)
	OPERAND_NEXT_PTR     = Operand(0x1e) // [next word]
	OPERAND_NEXT         = Operand(0x1f) // next word, literal
	OPERAND_LITERAL      = Operand(0x20) // -1 .. 30, a only
	OPERAND_LIMIT        = Operand(0x40)

	LITERAL_MIN = -1
	LITERAL_MAX = 30
)

// OperandReg selects a register.
func OperandReg(reg Register) Operand {
	return OPERAND_REG + Operand(reg&7)
}

// OperandRegPtr selects the memory addressed by a register.
func OperandRegPtr(reg Register) Operand {
	return OPERAND_REG_PTR + Operand(reg&7)
}

// OperandRegNextPtr selects the memory addressed by the next word plus a register.
func OperandRegNextPtr(reg Register) Operand {
	return OPERAND_REG_NEXT_PTR + Operand(reg&7)
}

// OperandLiteral returns the inline literal code for value, if it fits.
func OperandLiteral(value int) (code Operand, ok bool) {
	if value < LITERAL_MIN || value > LITERAL_MAX {
		return
	}
	return OPERAND_LITERAL + Operand(value-LITERAL_MIN), true
}

// Immediate returns true if the operand consumes the next word of the
// instruction stream.
func (op Operand) Immediate() bool {
	switch {
	case op >= OPERAND_REG_NEXT_PTR && op < OPERAND_PUSH_POP:
		return true
	case op == OPERAND_PICK, op == OPERAND_NEXT_PTR, op == OPERAND_NEXT:
		return true
	}
	return false
}

// Position selects which operand of an instruction is being resolved.
type Position int

const (
	POS_B = Position(0) // first operand, the destination
	POS_A = Position(1) // second operand, the source
)

func (pos Position) String() string {
	if pos == POS_A {
		return "a"
	}
	return "b"
}

// Code is a single instruction word with the immediate words that follow it.
//
// Immediates are in stream order, which is resolution order: the a operand's
// word precedes the b operand's word.
type Code struct {
	Word       uint16
	Immediates []uint16
}

// MakeCode creates a basic instruction.
func MakeCode(op CodeOp, b, a Operand, imms ...uint16) Code {
	return Code{
		Word:       (uint16(a&0x3f) << 10) | (uint16(b&0x1f) << 5) | uint16(op&0x1f),
		Immediates: imms,
	}
}

// MakeCodeExt creates an extended instruction.
func MakeCodeExt(ext CodeExt, a Operand, imms ...uint16) Code {
	return MakeCode(OP_EXT, Operand(ext), a, imms...)
}

// Op returns the basic opcode field.
func (code Code) Op() CodeOp {
	return CodeOp(code.Word & 0x1f)
}

// B returns the b operand field.
func (code Code) B() Operand {
	return Operand((code.Word >> 5) & 0x1f)
}

// A returns the a operand field.
func (code Code) A() Operand {
	return Operand((code.Word >> 10) & 0x3f)
}

// Ext returns the extended opcode, carried in the b field.
func (code Code) Ext() CodeExt {
	return CodeExt(code.B())
}

// Extended returns true if the instruction is an extended (one operand) form.
func (code Code) Extended() bool {
	return code.Op() == OP_EXT
}

// lookup returns the handler for the instruction, or nil when invalid.
func (code Code) lookup() *instruction {
	var in *instruction
	if code.Extended() {
		in = &extendedTable[code.Ext()]
	} else {
		in = &basicTable[code.Op()]
	}
	if in.exec == nil {
		return nil
	}
	return in
}

// Valid returns true if the instruction has a registered handler.
func (code Code) Valid() bool {
	return code.lookup() != nil
}

// Implemented returns true if the instruction is valid and has defined
// behavior. Declared but unimplemented instructions execute as no-ops.
func (code Code) Implemented() bool {
	in := code.lookup()
	return in != nil && in.implemented
}

// ImmediateNeed returns the number of words following the instruction word
// that execution will consume.
func (code Code) ImmediateNeed() (need int) {
	if code.A().Immediate() {
		need++
	}
	if !code.Extended() && code.B().Immediate() {
		need++
	}
	return
}

// formatOperand renders an operand in assembler syntax.
func formatOperand(op Operand, pos Position, imms []uint16) (str string, rest []uint16) {
	rest = imms
	next := "next"
	if op.Immediate() && len(rest) > 0 {
		next = fmt.Sprintf("0x%04x", rest[0])
		rest = rest[1:]
	}

	switch {
	case op < OPERAND_REG_PTR:
		str = Register(op - OPERAND_REG).String()
	case op < OPERAND_REG_NEXT_PTR:
		str = fmt.Sprintf("[%v]", Register(op-OPERAND_REG_PTR))
	case op < OPERAND_PUSH_POP:
		str = fmt.Sprintf("[%v+%v]", next, Register(op-OPERAND_REG_NEXT_PTR))
	case op == OPERAND_PUSH_POP:
		str = "PUSH"
		if pos == POS_A {
			str = "POP"
		}
	case op == OPERAND_PEEK:
		str = "PEEK"
	case op == OPERAND_PICK:
		str = "PICK " + next
	case op == OPERAND_SP:
		str = "SP"
	case op == OPERAND_PC:
		str = "PC"
	case op == OPERAND_EX:
		str = "EX"
	case op == OPERAND_NEXT_PTR:
		str = "[" + next + "]"
	case op == OPERAND_NEXT:
		str = next
	default:
		str = fmt.Sprintf("%d", int(op-OPERAND_LITERAL)+LITERAL_MIN)
	}

	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	in := code.lookup()
	if in == nil {
		return fmt.Sprintf("DAT 0x%04x", code.Word)
	}

	a, imms := formatOperand(code.A(), POS_A, code.Immediates)
	if code.Extended() {
		return fmt.Sprintf("%v %v", in.name, a)
	}

	b, _ := formatOperand(code.B(), POS_B, imms)
	return fmt.Sprintf("%v %v, %v", in.name, b, a)
}

package cpu

import (
	"fmt"
)

// LocationKind tags what a Location refers to.
type LocationKind int

const (
	LOC_LITERAL  = LocationKind(0) // constant; writes are discarded
	LOC_REGISTER = LocationKind(1) // general purpose register
	LOC_MEMORY   = LocationKind(2) // memory cell
	LOC_PUSH     = LocationKind(3) // memory cell at the pushed SP
	LOC_POP      = LocationKind(4) // memory cell at the popped SP
	LOC_PEEK     = LocationKind(5) // memory cell at SP
	LOC_PC       = LocationKind(6)
	LOC_SP       = LocationKind(7)
	LOC_EX       = LocationKind(8)
)

var locationKindName = [...]string{
	"literal", "register", "memory", "push", "pop", "peek", "pc", "sp", "ex",
}

func (kind LocationKind) String() string {
	if kind < 0 || int(kind) >= len(locationKindName) {
		return fmt.Sprintf("LocationKind(%d)", int(kind))
	}
	return locationKindName[kind]
}

// Location is a resolved operand: a read/write site bound to the machine
// state at the moment of resolution.
//
// Index is the register for LOC_REGISTER, the address for the memory kinds,
// and the value for LOC_LITERAL. A Location is only valid for the
// instruction it was resolved for.
type Location struct {
	Kind  LocationKind
	Index uint16
}

// Literal returns a constant Location.
func Literal(value uint16) Location {
	return Location{Kind: LOC_LITERAL, Index: value}
}

func (loc Location) String() string {
	switch loc.Kind {
	case LOC_REGISTER:
		return Register(loc.Index).String()
	case LOC_PC:
		return "PC"
	case LOC_SP:
		return "SP"
	case LOC_EX:
		return "EX"
	case LOC_LITERAL:
		return fmt.Sprintf("0x%04x", loc.Index)
	}
	return fmt.Sprintf("%v[0x%04x]", loc.Kind, loc.Index)
}

// Get reads the value at a Location.
func (cpu *Cpu) Get(loc Location) uint16 {
	switch loc.Kind {
	case LOC_REGISTER:
		return cpu.Registers.Get(Register(loc.Index))
	case LOC_MEMORY, LOC_PUSH, LOC_POP, LOC_PEEK:
		return cpu.Memory.Read(loc.Index)
	case LOC_PC:
		return cpu.Pc
	case LOC_SP:
		return cpu.Sp
	case LOC_EX:
		return cpu.Ex
	}
	return loc.Index
}

// Set writes the low 16 bits of value to a Location. Writes to a literal
// are silently discarded.
func (cpu *Cpu) Set(loc Location, value uint32) {
	switch loc.Kind {
	case LOC_REGISTER:
		cpu.Registers.Set(Register(loc.Index), value)
	case LOC_MEMORY, LOC_PUSH, LOC_POP, LOC_PEEK:
		cpu.Memory.Write(loc.Index, uint16(value))
	case LOC_PC:
		cpu.SetPc(value)
	case LOC_SP:
		cpu.SetSp(value)
	case LOC_EX:
		cpu.SetEx(value)
	}
}

// nextWord consumes the word at PC.
func (cpu *Cpu) nextWord() uint16 {
	word := cpu.Memory.Read(cpu.Pc)
	cpu.Pc++
	return word
}

// Resolve maps an operand code to a Location, applying the side effects of
// the addressing mode: immediate words are consumed from PC, and PUSH/POP
// move SP.
func (cpu *Cpu) Resolve(op Operand, pos Position) (loc Location, err error) {
	switch {
	case op < 0:
		err = ErrOperand{Operand: op, Position: pos}
	case op < OPERAND_REG_PTR:
		loc = Location{Kind: LOC_REGISTER, Index: uint16(op - OPERAND_REG)}
	case op < OPERAND_REG_NEXT_PTR:
		reg := Register(op - OPERAND_REG_PTR)
		loc = Location{Kind: LOC_MEMORY, Index: cpu.Registers.Get(reg)}
	case op < OPERAND_PUSH_POP:
		reg := Register(op - OPERAND_REG_NEXT_PTR)
		base := cpu.nextWord()
		loc = Location{Kind: LOC_MEMORY, Index: base + cpu.Registers.Get(reg)}
	case op == OPERAND_PUSH_POP:
		if pos == POS_A {
			loc = Location{Kind: LOC_POP, Index: cpu.Sp}
			cpu.Sp++
		} else {
			cpu.Sp--
			loc = Location{Kind: LOC_PUSH, Index: cpu.Sp}
		}
	case op == OPERAND_PEEK:
		loc = Location{Kind: LOC_PEEK, Index: cpu.Sp}
	case op == OPERAND_PICK:
		offset := cpu.nextWord()
		loc = Location{Kind: LOC_MEMORY, Index: cpu.Sp + offset}
	case op == OPERAND_SP:
		loc = Location{Kind: LOC_SP}
	case op == OPERAND_PC:
		loc = Location{Kind: LOC_PC}
	case op == OPERAND_EX:
		loc = Location{Kind: LOC_EX}
	case op == OPERAND_NEXT_PTR:
		loc = Location{Kind: LOC_MEMORY, Index: cpu.nextWord()}
	case op == OPERAND_NEXT:
		loc = Literal(cpu.nextWord())
	case op < OPERAND_LIMIT && pos == POS_A:
		loc = Literal(uint16(int(op-OPERAND_LITERAL) + LITERAL_MIN))
	default:
		err = ErrOperand{Operand: op, Position: pos}
	}

	return
}

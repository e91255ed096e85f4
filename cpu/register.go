package cpu

import (
	"fmt"
	"strings"
)

// Register is a general purpose register index.
type Register int

const (
	REG_A = Register(0)
	REG_B = Register(1)
	REG_C = Register(2)
	REG_X = Register(3)
	REG_Y = Register(4)
	REG_Z = Register(5)
	REG_I = Register(6)
	REG_J = Register(7)
)

var registerName = [...]string{"A", "B", "C", "X", "Y", "Z", "I", "J"}

func (reg Register) String() string {
	if reg < 0 || int(reg) >= len(registerName) {
		return fmt.Sprintf("Register(%d)", int(reg))
	}
	return registerName[reg]
}

// Registers is the CPU register file.
type Registers struct {
	General [8]uint16 // A, B, C, X, Y, Z, I, J
	Pc      uint16    // Program counter.
	Sp      uint16    // Stack pointer.
	Ex      uint16    // Overflow/extra.
	Skip    bool      // Suppress the next instruction.
}

// Get returns a general purpose register. reg must be in REG_A..REG_J.
func (rf *Registers) Get(reg Register) uint16 {
	return rf.General[reg]
}

// Set stores the low 16 bits of value into a general purpose register.
func (rf *Registers) Set(reg Register, value uint32) {
	rf.General[reg] = uint16(value)
}

// SetPc stores the low 16 bits of value into PC.
func (rf *Registers) SetPc(value uint32) {
	rf.Pc = uint16(value)
}

// SetSp stores the low 16 bits of value into SP.
func (rf *Registers) SetSp(value uint32) {
	rf.Sp = uint16(value)
}

// SetEx stores the low 16 bits of value into EX.
func (rf *Registers) SetEx(value uint32) {
	rf.Ex = uint16(value)
}

// Reset zeroes every register and clears the skip latch.
func (rf *Registers) Reset() {
	*rf = Registers{}
}

// String dumps the registers as A,B,C,X,Y,Z,I,J,PC,SP,EX in hex.
func (rf *Registers) String() string {
	var sb strings.Builder
	for n, val := range rf.General {
		fmt.Fprintf(&sb, "%v=%04X ", Register(n), val)
	}
	fmt.Fprintf(&sb, "PC=%04X SP=%04X EX=%04X", rf.Pc, rf.Sp, rf.Ex)
	return sb.String()
}

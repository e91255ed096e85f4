package cpu

import (
	"errors"
	"log"
)

// Cpu is the simulation context for a single DCPU-16.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers         // Register file.
	Memory    *Memory // Memory, possibly shared with other CPUs.

	Ticks int // Executed (or skipped) instruction counter.
}

// NewCpu creates a CPU attached to memory. If memory is nil, the CPU gets
// a private memory.
func NewCpu(memory *Memory) (cpu *Cpu) {
	if memory == nil {
		memory = NewMemory()
	}

	cpu = &Cpu{
		Memory: memory,
	}

	return
}

// String returns the register dump of the CPU.
func (cpu *Cpu) String() string {
	return cpu.Registers.String()
}

// Reset the CPU registers. Memory is untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Print(f("cpu: reset"))
	}

	cpu.Registers.Reset()
	cpu.Ticks = 0
}

// Clear the CPU memory. Registers are untouched.
func (cpu *Cpu) Clear() {
	if cpu.Verbose {
		log.Print(f("cpu: clear"))
	}

	cpu.Memory.Clear()
}

// Load writes a program image into memory, starting at address 0.
func (cpu *Cpu) Load(words ...uint16) {
	cpu.Memory.Load(0, words...)
}

// Fetch decodes the instruction at addr, along with the immediate words
// it would consume. It has no side effects.
func (cpu *Cpu) Fetch(addr uint16) (code Code) {
	code.Word = cpu.Memory.Read(addr)
	for n := range code.ImmediateNeed() {
		code.Immediates = append(code.Immediates, cpu.Memory.Read(addr+1+uint16(n)))
	}

	return
}

// Step executes the instruction at PC.
//
// Operands are always resolved, so a skipped instruction still consumes
// its immediate words and still moves SP for PUSH/POP.
func (cpu *Cpu) Step() (err error) {
	pc := cpu.Pc
	code := Code{Word: cpu.nextWord()}

	in := code.lookup()
	if in == nil {
		err = ErrOpcode{Pc: pc, Code: code}
		return
	}

	var a, b Location
	a, err = cpu.Resolve(code.A(), POS_A)
	if err != nil {
		err = errors.Join(ErrOperandA, err)
		return
	}

	if !code.Extended() {
		b, err = cpu.Resolve(code.B(), POS_B)
		if err != nil {
			err = errors.Join(ErrOperandB, err)
			return
		}
	}

	cpu.Ticks++

	if cpu.Skip {
		cpu.Skip = false
		if cpu.Verbose {
			log.Print(f("cpu: %04x: skipped %v", pc, in.name))
		}
		return
	}

	in.exec(cpu, b, a)

	if cpu.Verbose {
		log.Print(f("cpu: %04x: %v: %v", pc, in.name, cpu.String()))
	}

	return
}

// Stalled returns true if a step from (pc, sp) left the CPU at the same
// PC and SP, which is how Run detects a program spinning in place.
func (cpu *Cpu) Stalled(pc, sp uint16) bool {
	return cpu.Pc == pc && cpu.Sp == sp
}

// Run steps the CPU until one step leaves both PC and SP unchanged.
//
// This only detects tight self-jump loops. A loop that changes PC or SP
// on every step runs forever; see emulator.Emulator for a bounded run.
func (cpu *Cpu) Run() (err error) {
	for {
		pc, sp := cpu.Pc, cpu.Sp
		err = cpu.Step()
		if err != nil {
			return
		}
		if cpu.Stalled(pc, sp) {
			break
		}
	}

	if cpu.Verbose {
		log.Print(f("cpu: %04x: stalled after %v ticks", cpu.Pc, cpu.Ticks))
	}

	return
}

// Package emulator runs one or more DCPU-16 CPUs attached to a shared
// memory bus.
package emulator

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"

	"github.com/ezrec/dcpu16/cpu"
)

var (
	traceOp   = color.New(color.FgCyan).SprintFunc()
	traceSkip = color.New(color.Faint).SprintFunc()
)

// Emulator state. CPUs + shared memory.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Memory   *cpu.Memory  // Memory shared by all CPUs.
	Cpus     []*cpu.Cpu   // CPUs on the bus, stepped in index order.
	Program  *cpu.Program // Program image loaded by Reset.
	Trace    io.Writer    // If set, each step is disassembled here.
	MaxTicks int          // If non-zero, Run stops after this many ticks.

	running []bool
	ticks   int
}

// NewEmulator creates a new emulator with count CPUs (at least one).
func NewEmulator(count int) (emu *Emulator) {
	count = max(count, 1)

	emu = &Emulator{
		Memory:  cpu.NewMemory(),
		Program: &cpu.Program{},
		running: make([]bool, count),
	}

	for range count {
		emu.Cpus = append(emu.Cpus, cpu.NewCpu(emu.Memory))
	}

	return
}

// Reset clears memory, loads the program at address 0, and resets every CPU.
func (emu *Emulator) Reset() (err error) {
	if !emu.Program.Fits() {
		err = ErrProgramSize
		return
	}

	bins := emu.Program.Binary()
	emu.Memory.Clear()
	emu.Memory.Load(0, bins...)

	emu.running = make([]bool, len(emu.Cpus))
	for n, cp := range emu.Cpus {
		cp.Verbose = emu.Verbose
		cp.Reset()
		emu.running[n] = true
	}
	emu.ticks = 0

	if emu.Verbose {
		log.Print(f("emulator: reset, %v words loaded", len(bins)))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// Running returns true if CPU n has not stalled yet. CPUs added to Cpus
// since the last Reset are not running.
func (emu *Emulator) Running(n int) bool {
	return n >= 0 && n < len(emu.running) && emu.running[n]
}

// Tick steps every running CPU once, in index order. A CPU stops running
// when its step leaves PC and SP unchanged. Done is set when no CPU is
// running.
func (emu *Emulator) Tick() (done bool, err error) {
	done = true

	for n, cp := range emu.Cpus {
		if !emu.Running(n) {
			continue
		}

		cp.Verbose = emu.Verbose

		pc, sp := cp.Pc, cp.Sp
		skipped := cp.Skip

		var code cpu.Code
		if emu.Trace != nil {
			code = cp.Fetch(pc)
		}

		err = cp.Step()
		if err != nil {
			err = &ErrRuntime{Cpu: n, Pc: pc, Err: err}
			return
		}

		if emu.Trace != nil {
			emu.trace(n, pc, code, skipped, cp)
		}

		if cp.Stalled(pc, sp) {
			emu.running[n] = false
			if emu.Verbose {
				log.Print(f("emulator: cpu%d stalled at 0x%04x", n, pc))
			}
			continue
		}

		done = false
	}

	emu.ticks++

	return
}

// Run ticks until every CPU has stalled, or MaxTicks is reached.
func (emu *Emulator) Run() (err error) {
	for {
		if emu.MaxTicks > 0 && emu.ticks >= emu.MaxTicks {
			err = ErrTickLimit
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}

// trace writes one disassembled step.
func (emu *Emulator) trace(n int, pc uint16, code cpu.Code, skipped bool, cp *cpu.Cpu) {
	op, args, _ := strings.Cut(code.String(), " ")
	if skipped {
		fmt.Fprintf(emu.Trace, "cpu%d %04x: %v\n", n, pc, traceSkip(op+" "+args))
		return
	}

	fmt.Fprintf(emu.Trace, "cpu%d %04x: %v %-24v %v\n", n, pc, traceOp(op), args, cp.String())
}

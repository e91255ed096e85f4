package cpu

import (
	"log"
)

// instruction is an opcode table entry. Extended instructions ignore b.
type instruction struct {
	name        string
	exec        func(cpu *Cpu, b, a Location)
	implemented bool
}

var (
	basicTable    [32]instruction
	extendedTable [32]instruction
)

func init() {
	basicTable = [32]instruction{
		OP_SET: {"SET", opSet, true},
		OP_ADD: {"ADD", opAdd, true},
		OP_SUB: {"SUB", opSub, true},
		OP_MUL: {"MUL", opMul, true},
		OP_MLI: stub("MLI"),
		OP_DIV: {"DIV", opDiv, true},
		OP_DVI: stub("DVI"),
		OP_MOD: {"MOD", opMod, true},
		OP_MDI: stub("MDI"),
		OP_AND: {"AND", opAnd, true},
		OP_BOR: {"BOR", opBor, true},
		OP_XOR: {"XOR", opXor, true},
		OP_SHR: {"SHR", opShr, true},
		OP_ASR: stub("ASR"),
		OP_SHL: {"SHL", opShl, true},
		OP_IFB: cond("IFB", func(b, a uint16) bool { return (b & a) != 0 }),
		OP_IFC: cond("IFC", func(b, a uint16) bool { return (b & a) == 0 }),
		OP_IFE: cond("IFE", func(b, a uint16) bool { return b == a }),
		OP_IFN: cond("IFN", func(b, a uint16) bool { return b != a }),
		OP_IFG: cond("IFG", func(b, a uint16) bool { return b > a }),
		OP_IFA: stub("IFA"),
		OP_IFL: cond("IFL", func(b, a uint16) bool { return b < a }),
		OP_IFU: stub("IFU"),
		OP_ADX: stub("ADX"),
		OP_SBX: stub("SBX"),
		OP_STI: stub("STI"),
		OP_STD: stub("STD"),
	}

	// Only JSR has behavior. HCF is kept inert as well: halting is
	// detected by Run, not requested by the program.
	extendedTable = [32]instruction{
		EXT_JSR: {"JSR", opJsr, true},
		EXT_HCF: stub("HCF"),
		EXT_INT: stub("INT"),
		EXT_IAG: stub("IAG"),
		EXT_IAS: stub("IAS"),
		EXT_IAP: stub("IAP"),
		EXT_IAQ: stub("IAQ"),
		EXT_HWN: stub("HWN"),
		EXT_HWQ: stub("HWQ"),
		EXT_HWI: stub("HWI"),
	}
}

// stub creates a declared instruction with no behavior.
func stub(name string) instruction {
	return instruction{
		name: name,
		exec: func(cpu *Cpu, b, a Location) {
			if cpu.Verbose {
				log.Print(f("cpu: %v not implemented, ignored", name))
			}
		},
	}
}

// cond creates a conditional instruction: the next instruction is skipped
// unless the predicate holds.
func cond(name string, predicate func(b, a uint16) bool) instruction {
	return instruction{
		name: name,
		exec: func(cpu *Cpu, b, a Location) {
			cpu.Skip = !predicate(cpu.Get(b), cpu.Get(a))
		},
		implemented: true,
	}
}

func opSet(cpu *Cpu, b, a Location) {
	cpu.Set(b, uint32(cpu.Get(a)))
}

func opAdd(cpu *Cpu, b, a Location) {
	res := uint32(cpu.Get(b)) + uint32(cpu.Get(a))
	if res > 0xffff {
		cpu.SetEx(0x0001)
	} else {
		cpu.SetEx(0)
	}
	cpu.Set(b, res)
}

func opSub(cpu *Cpu, b, a Location) {
	bv, av := cpu.Get(b), cpu.Get(a)
	if bv < av {
		cpu.SetEx(0xffff)
	} else {
		cpu.SetEx(0)
	}
	cpu.Set(b, uint32(bv)-uint32(av))
}

func opMul(cpu *Cpu, b, a Location) {
	res := uint32(cpu.Get(b)) * uint32(cpu.Get(a))
	cpu.SetEx(res >> 16)
	cpu.Set(b, res)
}

func opDiv(cpu *Cpu, b, a Location) {
	bv, av := uint32(cpu.Get(b)), uint32(cpu.Get(a))
	if av == 0 {
		cpu.SetEx(0)
		cpu.Set(b, 0)
		return
	}
	cpu.SetEx((bv << 16) / av)
	cpu.Set(b, bv/av)
}

func opMod(cpu *Cpu, b, a Location) {
	bv, av := cpu.Get(b), cpu.Get(a)
	if av == 0 {
		cpu.Set(b, 0)
		return
	}
	cpu.Set(b, uint32(bv%av))
}

func opAnd(cpu *Cpu, b, a Location) {
	cpu.Set(b, uint32(cpu.Get(b)&cpu.Get(a)))
}

func opBor(cpu *Cpu, b, a Location) {
	cpu.Set(b, uint32(cpu.Get(b)|cpu.Get(a)))
}

func opXor(cpu *Cpu, b, a Location) {
	cpu.Set(b, uint32(cpu.Get(b)^cpu.Get(a)))
}

// Shift counts may be as large as 0xffff; Go shifts past the width yield 0.
func opShr(cpu *Cpu, b, a Location) {
	bv, av := uint64(cpu.Get(b)), cpu.Get(a)
	cpu.SetEx(uint32(((bv << 16) >> av) & 0xffff))
	cpu.Set(b, uint32(bv>>av))
}

func opShl(cpu *Cpu, b, a Location) {
	bv, av := uint64(cpu.Get(b)), cpu.Get(a)
	res := bv << av
	cpu.SetEx(uint32((res >> 16) & 0xffff))
	cpu.Set(b, uint32(res&0xffff))
}

// opJsr pushes the address of the next instruction, then jumps to a.
func opJsr(cpu *Cpu, _, a Location) {
	cpu.Sp--
	cpu.Memory.Write(cpu.Sp, cpu.Pc)
	cpu.SetPc(uint32(cpu.Get(a)))
}

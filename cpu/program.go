package cpu

import (
	"iter"
)

// Program is a sequence of encoded instructions laid out from address 0.
type Program struct {
	Codes []Code
}

// Debug locates the instruction containing an address.
type Debug struct {
	*Code
	Index  int    // Index of the code in the program.
	Offset uint16 // Word offset of addr into the code (0 is the instruction word).
}

// Append adds codes to the end of the program, and returns the address of
// the first added code. Once the program no longer Fits, the returned
// address wraps like a PC would.
func (prog *Program) Append(codes ...Code) (addr uint16) {
	addr = uint16(prog.Len())
	prog.Codes = append(prog.Codes, codes...)
	return
}

// Len returns the size of the program image in words.
func (prog *Program) Len() (size int) {
	for _, code := range prog.Codes {
		size += 1 + len(code.Immediates)
	}
	return
}

// Fits returns true if the program image fits in memory.
func (prog *Program) Fits() bool {
	return prog.Len() <= MEMORY_SIZE
}

// Debug finds the code holding addr. If no code holds it, dbg.Code is nil.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, start := range prog.All() {
		end := start + 1 + len(prog.Codes[n].Immediates)
		if int(addr) >= start && int(addr) < end {
			dbg = Debug{
				Code:   &prog.Codes[n],
				Index:  n,
				Offset: uint16(int(addr) - start),
			}
			break
		}
	}

	return
}

// All iterates the code indexes along with their load addresses.
func (prog *Program) All() iter.Seq2[int, int] {
	return func(yield func(n int, addr int) bool) {
		var addr int
		for n, code := range prog.Codes {
			if !yield(n, addr) {
				return
			}
			addr += 1 + len(code.Immediates)
		}
	}
}

// Binary flattens the program into a memory image.
func (prog *Program) Binary() (bins []uint16) {
	for _, code := range prog.Codes {
		bins = append(bins, code.Word)
		bins = append(bins, code.Immediates...)
	}

	return
}

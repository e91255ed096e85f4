package cpu

const (
	MEMORY_SIZE = 0x10000 // Words of addressable memory.
)

// Memory is the flat word store shared by one or more CPUs.
//
// Addresses are 16 bits, so every address is always in range. Nothing
// serializes access; CPUs sharing a Memory must be stepped from a single
// goroutine.
type Memory struct {
	Word [MEMORY_SIZE]uint16
}

// NewMemory returns a zero filled memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the word at addr.
func (mem *Memory) Read(addr uint16) uint16 {
	return mem.Word[addr]
}

// Write stores value at addr.
func (mem *Memory) Write(addr uint16, value uint16) {
	mem.Word[addr] = value
}

// Load writes words sequentially from start, wrapping at the end of memory.
func (mem *Memory) Load(start uint16, words ...uint16) {
	addr := start
	for _, word := range words {
		mem.Word[addr] = word
		addr++
	}
}

// Clear zero fills the memory.
func (mem *Memory) Clear() {
	clear(mem.Word[:])
}

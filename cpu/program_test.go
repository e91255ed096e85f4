package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.Nil(prog.Binary())
	assert.Equal(0, prog.Len())
	assert.True(prog.Fits())

	addr := prog.Append(MakeCode(OP_SET, OperandReg(REG_A), OPERAND_NEXT, 0x30))
	assert.Equal(uint16(0), addr)

	addr = prog.Append(
		MakeCode(OP_SET, OPERAND_NEXT_PTR, OPERAND_NEXT, 0x20, 0x1000),
		MakeCode(OP_IFN, OperandReg(REG_A), lit(0x10)),
	)
	assert.Equal(uint16(2), addr)
	assert.Equal(6, prog.Len())

	assert.Equal([]uint16{0x7c01, 0x0030, 0x7fc1, 0x0020, 0x1000, 0xc413}, prog.Binary())
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Codes: demoCodes()}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Code)
	assert.Equal(0, dbg.Index)
	assert.Equal(uint16(0), dbg.Offset)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Code)
	assert.Equal(1, dbg.Index)
	assert.Equal(uint16(2), dbg.Offset)
	assert.Equal("SET [0x1000], 0x0020", dbg.String())

	dbg = prog.Debug(0x18)
	assert.NotNil(dbg.Code)
	assert.Equal("SHL X, 4", dbg.String())

	dbg = prog.Debug(uint16(len(demoProgram)))
	assert.Nil(dbg.Code)
	assert.Equal(0, dbg.Index)
}

func TestProgram_All(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Codes: demoCodes()}

	var addrs []int
	for _, addr := range prog.All() {
		addrs = append(addrs, addr)
		if addr >= 0x0d {
			break
		}
	}

	assert.Equal([]int{0x00, 0x02, 0x05, 0x07, 0x08, 0x0a, 0x0b, 0x0d}, addrs)
}

func TestProgram_Oversize(t *testing.T) {
	assert := assert.New(t)

	code := MakeCode(OP_SET, OperandReg(REG_A), OPERAND_NEXT, 0x1234)

	prog := &Program{}
	for range 0x7fff {
		prog.Append(code)
	}
	assert.Equal(0xfffe, prog.Len())
	assert.True(prog.Fits())

	addr := prog.Append(code)
	assert.Equal(uint16(0xfffe), addr)
	assert.Equal(MEMORY_SIZE, prog.Len())
	assert.True(prog.Fits())

	addr = prog.Append(code)
	assert.Equal(uint16(0), addr)
	assert.Equal(0x10002, prog.Len())
	assert.Equal(prog.Len(), len(prog.Binary()))
	assert.False(prog.Fits())

	dbg := prog.Debug(2)
	assert.Equal(1, dbg.Index)
	assert.Equal(uint16(0), dbg.Offset)

	dbg = prog.Debug(0xffff)
	assert.Equal(0x7fff, dbg.Index)
	assert.Equal(uint16(1), dbg.Offset)
}

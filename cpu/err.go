package cpu

import (
	"errors"

	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOperandInvalid = errors.New(f("operand invalid"))

	// Step context
	ErrOperandA = errors.New(f("operand a"))
	ErrOperandB = errors.New(f("operand b"))
)

// ErrOpcode reports an instruction word with no registered handler.
type ErrOpcode struct {
	Pc   uint16 // Address the word was fetched from.
	Code Code   // Offending instruction.
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%04x at pc 0x%04x", eo.Code.Word, eo.Pc)
}

func (eo ErrOpcode) Is(err error) bool {
	return err == ErrOpcodeInvalid
}

// ErrOperand reports an operand code that can not be resolved in its position.
type ErrOperand struct {
	Operand  Operand
	Position Position
}

func (eo ErrOperand) Error() string {
	return f("bad operand 0x%02x as %v", int(eo.Operand), eo.Position.String())
}

func (eo ErrOperand) Is(err error) bool {
	return err == ErrOperandInvalid
}

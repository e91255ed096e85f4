package emulator

import (
	"errors"

	"github.com/ezrec/dcpu16/translate"
)

var f = translate.From

var (
	ErrTickLimit   = errors.New(f("tick limit reached"))
	ErrProgramSize = errors.New(f("program larger than memory"))
)

// ErrRuntime indicates the CPU and address of a runtime error.
type ErrRuntime struct {
	Cpu int
	Pc  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("cpu%d pc 0x%04x %v", err.Cpu, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

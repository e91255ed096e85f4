// Package cpu implements the instruction execution core of the DCPU-16.
//
// The CPU consists of eight 16-bit general-purpose registers (A, B, C, X, Y,
// Z, I, J), a program counter (PC), a stack pointer (SP), an overflow/extra
// register (EX), and a one-shot skip latch set by the conditional opcodes.
// It executes from a flat memory of 65536 16-bit words, which may be shared
// between several CPUs.
//
// Each instruction word holds a 5-bit opcode, a 5-bit b operand and a 6-bit
// a operand. Operands are resolved into a Location before the opcode
// executes; resolution of a happens before b, and may consume the next word
// of the instruction stream or move SP.
//
// Several opcodes are declared but not implemented: the signed arithmetic
// forms (MLI, DVI, MDI, ASR, IFA, IFU), the carry chained forms (ADX, SBX),
// the auto-increment stores (STI, STD), and all interrupt and hardware
// extended opcodes. They execute as no-ops; see Code.Implemented.
package cpu

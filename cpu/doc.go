// Package cpu implements the execution engine of the x8 machine.
//
// The CPU consists of an instruction pointer (Ip), eight signed 32-bit
// registers (X0-X7) and a run state. Each Tick fetches the instruction at Ip
// from a linked isa.Executable, resolves its operands, and applies it.
//
// Arithmetic wraps at 32 bits. Running past the last instruction halts the
// machine, as does a HALT instruction or an execution error. A halted
// machine does not change state on further ticks.
package cpu

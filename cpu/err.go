package cpu

import (
	"errors"

	"github.com/ezrec/x8/isa"
	"github.com/ezrec/x8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrIpEnd   = errors.New(f("ip at end of program"))
	ErrIpRange = errors.New(f("ip out of range"))

	// Instruction errors
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOperandInvalid     = errors.New(f("operand invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrDestinationInvalid = errors.New(f("invalid destination operand"))
	ErrTargetRange        = errors.New(f("jump target out of range"))
)

type ErrLabelUnresolved string

func (el ErrLabelUnresolved) Error() string {
	return f("unresolved label %v", string(el))
}

// ErrArg locates an operand error within an instruction.
type ErrArg struct {
	Arg     int // 0-based operand index.
	Operand isa.Operand
	Err     error
}

func (err *ErrArg) Error() string {
	return f("arg%d '%v' %v", err.Arg+1, err.Operand, err.Err)
}

func (err *ErrArg) Unwrap() error {
	return err.Err
}

// ErrExecute is an execution error, with the machine state at the point
// of failure.
type ErrExecute struct {
	Ip          int
	Instruction isa.Instruction
	Register    [isa.REGISTERS]int32
	Err         error
}

func (err *ErrExecute) Error() string {
	return f("address %d '%v' %v", err.Ip, err.Instruction, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}

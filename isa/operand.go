package isa

import (
	"strconv"
)

// OperandKind selects which field of an Operand is meaningful.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE      = OperandKind(0) // none
	OPERAND_REGISTER  = OperandKind(1) // register
	OPERAND_IMMEDIATE = OperandKind(2) // immediate
	OPERAND_LABEL     = OperandKind(3) // label
)

// Operand is a register, a signed 32-bit immediate, or a label reference.
//
// Any kind of operand may appear in any position of an instruction; which
// kinds are legal for a position is decided when the instruction executes.
type Operand struct {
	Kind      OperandKind
	Register  Register
	Immediate int32
	Label     string
}

// RegisterRef returns an operand naming a register.
func RegisterRef(r Register) Operand {
	return Operand{Kind: OPERAND_REGISTER, Register: r}
}

// Immediate returns a literal integer operand.
func Immediate(n int32) Operand {
	return Operand{Kind: OPERAND_IMMEDIATE, Immediate: n}
}

// LabelRef returns an operand referencing a label by name.
func LabelRef(name string) Operand {
	return Operand{Kind: OPERAND_LABEL, Label: name}
}

// String returns the assembly language form of the operand.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REGISTER:
		return op.Register.String()
	case OPERAND_IMMEDIATE:
		return strconv.FormatInt(int64(op.Immediate), 10)
	case OPERAND_LABEL:
		return op.Label
	}

	return "-"
}

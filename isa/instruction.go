package isa

import (
	"strings"
)

// MAX_ARITY is the largest operand count of any opcode.
const MAX_ARITY = 3

// Instruction is an opcode and its operands.
//
// Operand roles by opcode:
//
//	ADD  dst, a, b    dst = a + b
//	ADDI dst, a, imm  dst = a + imm
//	MOV  dst, src     dst = src
//	JMP  target
//	JZ   cond, target jump if cond == 0
//	HALT
type Instruction struct {
	Opcode Opcode
	Args   [MAX_ARITY]Operand // Only Args[:Opcode.Arity()] are used.
}

// NewInstruction builds an instruction from an opcode and its operands.
// Operands beyond MAX_ARITY are dropped.
func NewInstruction(op Opcode, args ...Operand) (instr Instruction) {
	instr.Opcode = op
	copy(instr.Args[:], args)
	return
}

// Operands returns the operands used by the opcode.
func (instr Instruction) Operands() []Operand {
	return instr.Args[:instr.Opcode.Arity()]
}

// String returns the assembly language form of the instruction.
func (instr Instruction) String() string {
	args := instr.Operands()
	if len(args) == 0 {
		return instr.Opcode.String()
	}

	words := make([]string, len(args))
	for n, arg := range args {
		words[n] = arg.String()
	}

	return instr.Opcode.String() + " " + strings.Join(words, ", ")
}

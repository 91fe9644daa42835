// Package asm implements the assembler and linker for the x8 machine.
//
// The assembler reads line oriented source text into an isa.Program. Each
// line holds any number of label declarations, optionally followed by one
// instruction, and an optional ';' comment:
//
//	start:  MOV  X0, 0x10      ; hex literal
//	        ADDI X0, X0, $(REGISTERS * 2)
//	        JZ   X1, start
//	        HALT
//
// Operands are registers (X0-X7), signed 32-bit literals (decimal or 0x hex),
// compile-time Starlark expressions in $(...), or label names.
//
// Syntax errors are collected for the whole source and returned together as
// an ErrSyntaxList. The linker then assigns addresses and resolves the labels
// that are used as jump targets.
package asm

// Package isa defines the vocabulary of the x8 machine: the eight registers,
// operands, opcodes, instructions, and the programs built from them.
//
// The package carries no behaviour beyond naming and formatting. Values are
// comparable, so equality between registers, operands, instructions and
// statements is structural.
//
// Assembly source for the machine is line oriented:
//
//	; count down from three
//	        MOV  X0, 3
//	loop:   JZ   X0, done
//	        ADDI X0, X0, -1
//	        JMP  loop
//	done:   HALT
package isa

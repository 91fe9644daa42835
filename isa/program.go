package isa

import (
	"iter"
	"strings"
)

// StatementKind selects between label declarations and instructions.
type StatementKind int

//go:generate go tool stringer -linecomment -type=StatementKind
const (
	STMT_LABEL = StatementKind(0) // label
	STMT_INSTR = StatementKind(1) // instr
)

// Statement is a label declaration or an instruction, with the source line
// it was read from.
type Statement struct {
	Kind        StatementKind
	Label       string      // Label name, for STMT_LABEL.
	Instruction Instruction // Instruction, for STMT_INSTR.
	LineNo      int         // 1-based source line.
}

// LabelDecl returns a label declaration statement.
func LabelDecl(name string, lineno int) Statement {
	return Statement{Kind: STMT_LABEL, Label: name, LineNo: lineno}
}

// Instr returns an instruction statement.
func Instr(instr Instruction, lineno int) Statement {
	return Statement{Kind: STMT_INSTR, Instruction: instr, LineNo: lineno}
}

// String returns the assembly language form of the statement.
func (stmt Statement) String() string {
	if stmt.Kind == STMT_LABEL {
		return stmt.Label + ":"
	}
	return stmt.Instruction.String()
}

// Program is the ordered list of statements of a source text.
type Program struct {
	Statements []Statement
}

// Instructions iterates over the instruction statements, yielding the
// address of each. The address of an instruction is the count of
// instructions before it.
func (prog *Program) Instructions() iter.Seq2[int, Statement] {
	return func(yield func(ip int, stmt Statement) bool) {
		ip := 0
		for _, stmt := range prog.Statements {
			if stmt.Kind != STMT_INSTR {
				continue
			}
			if !yield(ip, stmt) {
				return
			}
			ip++
		}
	}
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() (count int) {
	for _, stmt := range prog.Statements {
		if stmt.Kind == STMT_INSTR {
			count++
		}
	}
	return
}

// String returns the program as assembly source, one statement per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, stmt := range prog.Statements {
		if stmt.Kind == STMT_INSTR {
			sb.WriteString("\t")
		}
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

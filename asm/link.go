package asm

import (
	"github.com/ezrec/x8/isa"
)

// Link assigns addresses to the instructions of a program and resolves its
// labels.
//
// The address of an instruction is its rank among the instructions of the
// program; label declarations take no space. A label maps to the address of
// the instruction after it. A label at the end of the program maps to
// exe.Len(), which halts the machine when jumped to.
//
// Duplicate declarations are reported before unresolved jump targets. The
// first error stops linking. Labels used as source operands are not checked
// here; they are resolved when executed.
func Link(prog *isa.Program) (exe *isa.Executable, err error) {
	ops := make([]isa.Op, 0, len(prog.Statements))
	label := make(map[string]int)

	ip := 0
	for _, stmt := range prog.Statements {
		switch stmt.Kind {
		case isa.STMT_LABEL:
			_, ok := label[stmt.Label]
			if ok {
				err = &ErrLink{Label: stmt.Label, LineNo: stmt.LineNo, Err: ErrLabelDuplicate}
				return
			}
			label[stmt.Label] = ip
		case isa.STMT_INSTR:
			ops = append(ops, isa.Op{LineNo: stmt.LineNo, Ip: ip, Instruction: stmt.Instruction})
			ip++
		}
	}

	// Final linking of jump labels.
	for _, op := range ops {
		n := op.Instruction.Opcode.Target()
		if n < 0 {
			continue
		}
		target := op.Instruction.Args[n]
		if target.Kind != isa.OPERAND_LABEL {
			continue
		}
		_, ok := label[target.Label]
		if !ok {
			err = &ErrLink{Label: target.Label, LineNo: op.LineNo, Err: ErrLabelUnresolved}
			return
		}
	}

	exe = &isa.Executable{
		Ops:   ops,
		Label: label,
	}

	return
}

package isa

// Opcode is the operation of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(0) // ADD
	OP_ADDI = Opcode(1) // ADDI
	OP_MOV  = Opcode(2) // MOV
	OP_JMP  = Opcode(3) // JMP
	OP_JZ   = Opcode(4) // JZ
	OP_HALT = Opcode(5) // HALT
)

// opcodeArity is the written operand count of each opcode.
var opcodeArity = [...]int{
	OP_ADD:  3,
	OP_ADDI: 3,
	OP_MOV:  2,
	OP_JMP:  1,
	OP_JZ:   2,
	OP_HALT: 0,
}

// opcodeMap maps mnemonics to opcodes.
var opcodeMap = map[string]Opcode{
	"ADD":  OP_ADD,
	"ADDI": OP_ADDI,
	"MOV":  OP_MOV,
	"JMP":  OP_JMP,
	"JZ":   OP_JZ,
	"HALT": OP_HALT,
}

// ParseOpcode matches a whole word against the opcode mnemonics.
func ParseOpcode(word string) (op Opcode, ok bool) {
	op, ok = opcodeMap[word]
	return
}

// Valid returns true if the opcode is one of the defined opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_ADD && op <= OP_HALT
}

// Arity returns the number of operands the opcode takes.
func (op Opcode) Arity() int {
	if !op.Valid() {
		return 0
	}
	return opcodeArity[op]
}

// Target returns the operand index of the jump target, or -1 if the opcode
// does not jump.
func (op Opcode) Target() int {
	switch op {
	case OP_JMP:
		return 0
	case OP_JZ:
		return 1
	}

	return -1
}

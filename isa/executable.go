package isa

// Op is an instruction of a linked program at its address, with the
// source line it came from.
type Op struct {
	LineNo      int
	Ip          int
	Instruction Instruction
}

// Executable is a linked program. Ops[n].Ip is n; Label maps each label to
// the address of the instruction that follows its declaration.
//
// An Executable is not modified after linking.
type Executable struct {
	Ops   []Op
	Label map[string]int
}

// Len returns the number of instructions. Len() is also the address of the
// end of the program.
func (exe *Executable) Len() int {
	return len(exe.Ops)
}

// Fetch returns the instruction at ip.
func (exe *Executable) Fetch(ip int) (instr Instruction, ok bool) {
	if ip < 0 || ip >= len(exe.Ops) {
		return
	}

	return exe.Ops[ip].Instruction, true
}

// Address returns the address of a label.
func (exe *Executable) Address(label string) (ip int, ok bool) {
	ip, ok = exe.Label[label]
	return
}

// Debug returns the op at ip, or nil if ip is outside the program.
func (exe *Executable) Debug(ip int) *Op {
	if ip < 0 || ip >= len(exe.Ops) {
		return nil
	}

	return &exe.Ops[ip]
}

// LineNo returns the source line of the instruction at ip, or 0.
func (exe *Executable) LineNo(ip int) int {
	op := exe.Debug(ip)
	if op == nil {
		return 0
	}
	return op.LineNo
}

package cpu

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/x8/asm"
	"github.com/ezrec/x8/isa"
)

func doAssemble(t *testing.T, program []string) (cpu *Cpu) {
	a := &asm.Assembler{}
	exe, err := a.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	return NewCpu(exe)
}

func TestCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	assert.False(cpu.Verbose)
	assert.Equal(STATE_RUNNING, cpu.State)
	assert.Equal(0, cpu.Ip)
	assert.Equal([isa.REGISTERS]int32{}, cpu.Register)

	defines := map[string]string{}
	for key, value := range cpu.Defines() {
		defines[key] = value
	}
	assert.Equal("8", defines["REGISTERS"])
}

func TestCpuSimple(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"MOV X0, 5",
		"ADD X1, X0, X0",
		"HALT",
	})

	err := cpu.Run()
	assert.NoError(err)
	assert.True(cpu.Halted())
	assert.Equal(int32(5), cpu.Register[isa.X0])
	assert.Equal(int32(10), cpu.Register[isa.X1])
	assert.Equal(2, cpu.Ip)
	assert.Equal(3, cpu.Ticks)
	assert.NoError(cpu.Fault)

	regs := cpu.Snapshot()
	regs[isa.X0] = 99
	assert.Equal(int32(5), cpu.Register[isa.X0])
}

func TestCpuEmpty(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{"", "; nothing here", ""})
	assert.Equal(0, cpu.Program.Len())

	err := cpu.Tick()
	assert.NoError(err)
	assert.True(cpu.Halted())
	assert.Equal([isa.REGISTERS]int32{}, cpu.Register)
	assert.Equal(0, cpu.Ticks)
}

func TestCpuImplicitHalt(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"MOV X2, -3",
		"ADDI X2, X2, 1",
	})

	assert.NoError(cpu.Tick())
	assert.NoError(cpu.Tick())
	assert.False(cpu.Halted())
	assert.Equal(2, cpu.Ip)

	assert.NoError(cpu.Tick())
	assert.True(cpu.Halted())
	assert.Equal(int32(-2), cpu.Register[isa.X2])
	assert.Equal(2, cpu.Ticks)
}

func TestCpuHaltIdempotent(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"MOV X3, 7",
		"HALT",
		"MOV X3, 8",
	})

	assert.NoError(cpu.Run())
	assert.True(cpu.Halted())

	before := *cpu
	for range 5 {
		assert.NoError(cpu.Tick())
	}
	assert.Equal(before, *cpu)
	assert.Equal(int32(7), cpu.Register[isa.X3])
	assert.Equal(1, cpu.Ip)
}

func TestCpuWraparound(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"MOV X0, 0x7fffffff",
		"ADD X1, X0, X0",
		"MOV X2, -2147483648",
		"ADD X3, X2, X2",
		"ADDI X4, X0, 1",
		"ADDI X5, X2, -1",
	})

	assert.NoError(cpu.Run())
	assert.Equal(int32(-2), cpu.Register[isa.X1])
	assert.Equal(int32(0), cpu.Register[isa.X3])
	assert.Equal(int32(math.MinInt32), cpu.Register[isa.X4])
	assert.Equal(int32(math.MaxInt32), cpu.Register[isa.X5])
}

func TestCpuCountdown(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"        MOV X0, 10",
		"        MOV X1, 0",
		"loop:   JZ X0, done",
		"        ADD X1, X1, X0",
		"        ADDI X0, X0, -1",
		"        JMP loop",
		"done:   HALT",
	})

	assert.NoError(cpu.Run())
	assert.Equal(int32(0), cpu.Register[isa.X0])
	assert.Equal(int32(55), cpu.Register[isa.X1])
	assert.Equal(6, cpu.Ip)
}

func TestCpuJumpKinds(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"        JMP 2",          // 0: immediate address
		"        HALT",           // 1: skipped
		"        MOV X0, target", // 2: address of label
		"        JMP X0",         // 3: computed address
		"        HALT",           // 4: skipped
		"target: MOV X1, 1",      // 5
		"        JZ X2, end",     // 6: taken
		"        HALT",           // 7: skipped
		"end:",
	})

	assert.NoError(cpu.Run())
	assert.True(cpu.Halted())
	assert.Equal(int32(5), cpu.Register[isa.X0])
	assert.Equal(int32(1), cpu.Register[isa.X1])
	assert.Equal(8, cpu.Ip)
	assert.NoError(cpu.Fault)
}

func TestCpuJzNotTaken(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"MOV X0, 1",
		"JZ X0, 99",
		"MOV X1, 2",
	})

	// The target is out of range, but is never resolved.
	assert.NoError(cpu.Run())
	assert.Equal(int32(2), cpu.Register[isa.X1])
}

func TestCpuDestinationInvalid(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"ADD 5, X0, X0",
		"HALT",
	})

	err := cpu.Run()
	assert.ErrorIs(err, ErrDestinationInvalid)
	assert.ErrorContains(err, "invalid destination operand")
	assert.True(cpu.Halted())
	assert.Equal(err, cpu.Fault)
	assert.Equal(0, cpu.Ip)

	var exec_err *ErrExecute
	if assert.True(errors.As(err, &exec_err)) {
		assert.Equal(0, exec_err.Ip)
		assert.Equal(isa.OP_ADD, exec_err.Instruction.Opcode)
	}

	var arg_err *ErrArg
	if assert.True(errors.As(err, &arg_err)) {
		assert.Equal(0, arg_err.Arg)
		assert.Equal(isa.Immediate(5), arg_err.Operand)
	}

	// Further ticks report the same fault.
	assert.Equal(err, cpu.Tick())
	assert.Equal(0, cpu.Ip)
}

func TestCpuDestinationLabel(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"here: MOV here, 1",
	})

	assert.ErrorIs(cpu.Run(), ErrDestinationInvalid)
}

func TestCpuFaultSnapshot(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"MOV X0, 1",
		"MOV X7, -1",
		"JMP 100",
	})

	err := cpu.Run()
	assert.ErrorIs(err, ErrTargetRange)

	var exec_err *ErrExecute
	if assert.True(errors.As(err, &exec_err)) {
		assert.Equal(2, exec_err.Ip)
		assert.Equal(int32(1), exec_err.Register[isa.X0])
		assert.Equal(int32(-1), exec_err.Register[isa.X7])
	}
	assert.Equal(2, cpu.Ip)
	assert.Equal(2, cpu.Ticks)
}

func TestCpuTargetRange(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		program []string
		err     error
	}{
		{[]string{"JMP -1"}, ErrTargetRange},
		{[]string{"JMP 2"}, ErrTargetRange},
		{[]string{"MOV X0, 3", "JMP X0"}, ErrTargetRange},
		{[]string{"MOV X0, -5", "JMP X0"}, ErrTargetRange},
		{[]string{"JZ X0, 7"}, ErrTargetRange},
		{[]string{"JMP 1"}, nil},
		{[]string{"MOV X0, 2", "JMP X0"}, nil},
	}

	for _, entry := range table {
		cpu := doAssemble(t, entry.program)
		err := cpu.Run()
		if entry.err == nil {
			assert.NoError(err, entry.program)
		} else {
			assert.ErrorIs(err, entry.err, entry.program)
		}
		assert.True(cpu.Halted(), entry.program)
	}
}

func TestCpuLabelValue(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{
		"       MOV X0, last",
		"       MOV X1, first",
		"first: ADDI X2, X0, 1",
		"last:",
	})

	assert.NoError(cpu.Run())
	assert.Equal(int32(3), cpu.Register[isa.X0])
	assert.Equal(int32(2), cpu.Register[isa.X1])
	assert.Equal(int32(4), cpu.Register[isa.X2])
}

func TestCpuLabelUnresolved(t *testing.T) {
	assert := assert.New(t)

	// Source operand labels are only resolved when executed.
	cpu := doAssemble(t, []string{
		"MOV X0, 1",
		"MOV X1, nowhere",
	})

	err := cpu.Run()
	assert.ErrorIs(err, ErrLabelUnresolved("nowhere"))
	assert.Equal(1, cpu.Ip)
	assert.Equal(int32(1), cpu.Register[isa.X0])
}

func TestCpuHandBuilt(t *testing.T) {
	assert := assert.New(t)

	exe := &isa.Executable{
		Ops: []isa.Op{
			{LineNo: 1, Ip: 0, Instruction: isa.NewInstruction(isa.OP_JMP, isa.LabelRef("ghost"))},
		},
		Label: map[string]int{},
	}

	cpu := NewCpu(exe)
	err := cpu.Run()
	assert.ErrorIs(err, ErrLabelUnresolved("ghost"))

	exe.Ops[0].Instruction = isa.Instruction{Opcode: isa.Opcode(99)}
	cpu.Reset()
	assert.ErrorIs(cpu.Run(), ErrOpcodeInvalid)

	exe.Ops[0].Instruction = isa.NewInstruction(isa.OP_MOV, isa.RegisterRef(isa.X0), isa.RegisterRef(isa.Register(9)))
	cpu.Reset()
	assert.ErrorIs(cpu.Run(), ErrRegisterInvalid)

	exe.Ops[0].Instruction = isa.NewInstruction(isa.OP_MOV, isa.RegisterRef(isa.X0))
	cpu.Reset()
	assert.ErrorIs(cpu.Run(), ErrOperandInvalid)

	cpu.Reset()
	cpu.Ip = 5
	assert.ErrorIs(cpu.Tick(), ErrIpRange)
}

func TestCpuDeterministic(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"      MOV X0, 20",
		"      MOV X1, 1",
		"loop: JZ X0, end",
		"      ADD X1, X1, X1",
		"      ADDI X0, X0, -1",
		"      JMP loop",
		"end:  HALT",
	}

	first := doAssemble(t, program)
	assert.NoError(first.Run())

	second := doAssemble(t, program)
	assert.NoError(second.Run())

	assert.Equal(first.Register, second.Register)
	assert.Equal(first.Ticks, second.Ticks)
	assert.Equal(int32(1<<20), first.Register[isa.X1])

	first.Reset()
	assert.NoError(first.Run())
	assert.Equal(second.Register, first.Register)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{"MOV X1, -1"})
	assert.NoError(cpu.Run())

	text := cpu.String()
	assert.Contains(text, "halted")
	assert.Contains(text, "   X1: FFFF_FFFF -1\n")
	assert.Contains(text, "   X0: 0000_0000 0\n")
}

func TestCpuVerbose(t *testing.T) {
	assert := assert.New(t)

	cpu := doAssemble(t, []string{"MOV X0, 1", "HALT"})
	cpu.Verbose = true
	assert.NoError(cpu.Run())
	assert.Equal(int32(1), cpu.Register[isa.X0])
}

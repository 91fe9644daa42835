// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/x8/isa"
)

// State is the run state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

var _cpu_defines = map[string]string{
	"REGISTERS": fmt.Sprintf("%d", isa.REGISTERS),
}

// Cpu is the simulation context for the x8 machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *isa.Executable // Program being executed.

	Ip       int                  // Address of the next instruction.
	Register [isa.REGISTERS]int32 // Register bank.
	State    State                // Run state.
	Fault    error                // Execution error that halted the CPU, if any.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU, reset to run a program.
func NewCpu(exe *isa.Executable) (cpu *Cpu) {
	cpu = &Cpu{
		Program: exe,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers.
// - Zeros statistics counters.
// - Sets the IP to the start of the program.
// - Clears any fault, and sets the CPU running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Ip = 0
	cpu.State = STATE_RUNNING
	cpu.Fault = nil
	cpu.Ticks = 0
}

// Halted returns true once the CPU has stopped.
func (cpu *Cpu) Halted() bool {
	return cpu.State == STATE_HALTED
}

// Snapshot returns a copy of the register file.
func (cpu *Cpu) Snapshot() (regs [isa.REGISTERS]int32) {
	return cpu.Register
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %04X_%04X %d\n", isa.Register(n), uint32(val)>>16, uint32(val)&0xffff, val)
	}

	return
}

// FetchCode fetches the instruction at the IP.
func (cpu *Cpu) FetchCode() (instr isa.Instruction, err error) {
	if cpu.Program == nil || cpu.Ip == cpu.Program.Len() {
		err = ErrIpEnd
		return
	}

	instr, ok := cpu.Program.Fetch(cpu.Ip)
	if !ok {
		err = ErrIpRange
		return
	}

	return
}

// Tick executes a single CPU instruction cycle.
//
// Reaching the end of the program halts the CPU without error. An execution
// error halts the CPU, leaving the IP at the failing instruction, and is
// returned as an *ErrExecute. Ticking a halted CPU changes nothing, and
// returns the fault that halted it, if any.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State == STATE_HALTED {
		return cpu.Fault
	}

	instr, err := cpu.FetchCode()
	if errors.Is(err, ErrIpEnd) {
		if cpu.Verbose {
			log.Printf("%03d: end of program", cpu.Ip)
		}
		cpu.State = STATE_HALTED
		return nil
	}

	if err == nil {
		err = cpu.Execute(instr)
	}

	if err != nil {
		err = &ErrExecute{
			Ip:          cpu.Ip,
			Instruction: instr,
			Register:    cpu.Register,
			Err:         err,
		}
		cpu.State = STATE_HALTED
		cpu.Fault = err
	}

	return
}

// Run ticks the CPU until it halts. A program that loops forever runs
// forever.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction at the current IP.
func (cpu *Cpu) Execute(instr isa.Instruction) (err error) {
	if cpu.Verbose {
		log.Printf("%03d: %v", cpu.Ip, instr)
	}

	next_ip := cpu.Ip + 1

	args := instr.Args

	switch instr.Opcode {
	case isa.OP_ADD, isa.OP_ADDI:
		var set_target func(value int32)
		set_target, err = cpu.getTarget(args[:], 0)
		if err != nil {
			return
		}
		var a, b int32
		a, err = cpu.getValue(args[:], 1)
		if err != nil {
			return
		}
		b, err = cpu.getValue(args[:], 2)
		if err != nil {
			return
		}
		// Two's complement wraparound.
		set_target(a + b)
	case isa.OP_MOV:
		var set_target func(value int32)
		set_target, err = cpu.getTarget(args[:], 0)
		if err != nil {
			return
		}
		var val int32
		val, err = cpu.getValue(args[:], 1)
		if err != nil {
			return
		}
		set_target(val)
	case isa.OP_JMP:
		next_ip, err = cpu.getAddress(args[:], 0)
		if err != nil {
			return
		}
	case isa.OP_JZ:
		var cond int32
		cond, err = cpu.getValue(args[:], 0)
		if err != nil {
			return
		}
		if cond == 0 {
			next_ip, err = cpu.getAddress(args[:], 1)
			if err != nil {
				return
			}
		}
	case isa.OP_HALT:
		cpu.State = STATE_HALTED
		next_ip = cpu.Ip
	default:
		err = ErrOpcodeInvalid
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1

	if cpu.Verbose && cpu.State == STATE_HALTED {
		log.Printf("%03d: halted", cpu.Ip)
	}

	return
}

// getValue gets the value of a source operand.
// A label's value is its address.
func (cpu *Cpu) getValue(args []isa.Operand, n int) (value int32, err error) {
	arg := args[n]

	switch arg.Kind {
	case isa.OPERAND_REGISTER:
		if !arg.Register.Valid() {
			err = ErrRegisterInvalid
			break
		}
		value = cpu.Register[arg.Register]
	case isa.OPERAND_IMMEDIATE:
		value = arg.Immediate
	case isa.OPERAND_LABEL:
		ip, ok := cpu.address(arg.Label)
		if !ok {
			err = ErrLabelUnresolved(arg.Label)
			break
		}
		value = int32(ip)
	default:
		err = ErrOperandInvalid
	}

	if err != nil {
		err = &ErrArg{Arg: n, Operand: arg, Err: err}
	}

	return
}

// getTarget returns the setter for a destination operand, which must be
// a register.
func (cpu *Cpu) getTarget(args []isa.Operand, n int) (set_target func(value int32), err error) {
	arg := args[n]

	if arg.Kind != isa.OPERAND_REGISTER || !arg.Register.Valid() {
		err = &ErrArg{Arg: n, Operand: arg, Err: ErrDestinationInvalid}
		return
	}

	reg := arg.Register
	set_target = func(value int32) { cpu.Register[reg] = value }

	return
}

// getAddress resolves a jump target operand. Labels resolve to their
// address, immediates are literal addresses, and registers hold computed
// addresses. The end of the program is a valid target, and halts.
func (cpu *Cpu) getAddress(args []isa.Operand, n int) (ip int, err error) {
	arg := args[n]

	switch arg.Kind {
	case isa.OPERAND_LABEL:
		var ok bool
		ip, ok = cpu.address(arg.Label)
		if !ok {
			err = &ErrArg{Arg: n, Operand: arg, Err: ErrLabelUnresolved(arg.Label)}
			return
		}
	default:
		var value int32
		value, err = cpu.getValue(args, n)
		if err != nil {
			return
		}
		ip = int(value)
	}

	if ip < 0 || ip > cpu.length() {
		err = &ErrArg{Arg: n, Operand: arg, Err: ErrTargetRange}
		return
	}

	return
}

// address looks up a label in the program.
func (cpu *Cpu) address(label string) (ip int, ok bool) {
	if cpu.Program == nil {
		return
	}
	return cpu.Program.Address(label)
}

// length is the number of instructions in the program.
func (cpu *Cpu) length() int {
	if cpu.Program == nil {
		return 0
	}
	return cpu.Program.Len()
}

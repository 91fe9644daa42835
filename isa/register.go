package isa

// Register is one of the eight general purpose registers.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	X0 = Register(0) // X0
	X1 = Register(1) // X1
	X2 = Register(2) // X2
	X3 = Register(3) // X3
	X4 = Register(4) // X4
	X5 = Register(5) // X5
	X6 = Register(6) // X6
	X7 = Register(7) // X7
)

// REGISTERS is the size of the register file.
const REGISTERS = 8

// Valid returns true if the register names one of X0..X7.
func (r Register) Valid() bool {
	return r >= X0 && r <= X7
}

// ParseRegister matches a whole word against the register names.
func ParseRegister(word string) (r Register, ok bool) {
	if len(word) != 2 || word[0] != 'X' || word[1] < '0' || word[1] > '7' {
		return
	}

	return Register(word[1] - '0'), true
}

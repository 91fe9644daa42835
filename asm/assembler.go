// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/ezrec/x8/isa"
)

// MAX_LINE is the longest source line accepted, in bytes.
const MAX_LINE = 1024 * 1024

// Assembler parses x8 assembly source.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string // Predefines visible to $(...) expressions.
}

// Predefine defines a new constant or redefines an existing one.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Parse parses an input stream into a Program.
//
// Every line is parsed, even after a failure. If any line fails, the
// returned error is an ErrSyntaxList and no Program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *isa.Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE)

	var errs ErrSyntaxList
	var stmts []isa.Statement
	var lineno int

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, serr := asm.parseLine(text, lineno)
		if serr != nil {
			errs = append(errs, serr)
			continue
		}
		stmts = append(stmts, line...)
	}

	if scan_err := scanner.Err(); scan_err != nil {
		errs = append(errs, &ErrSyntax{LineNo: lineno + 1, Column: 1, Err: scan_err})
	}

	if len(errs) != 0 {
		err = errs
		return
	}

	prog = &isa.Program{Statements: stmts}

	return
}

// Assemble parses and links an input stream.
func (asm *Assembler) Assemble(input io.Reader) (exe *isa.Executable, err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	exe, err = Link(prog)

	return
}

// parseLine parses a single line into its statements.
func (asm *Assembler) parseLine(text string, lineno int) (stmts []isa.Statement, err *ErrSyntax) {
	lx := &lexer{text: text}

	fail := func(at int, cause error) *ErrSyntax {
		return &ErrSyntax{LineNo: lineno, Column: at + 1, Line: text, Err: cause}
	}

	for {
		lx.skipSpace()
		if lx.atEnd() {
			return
		}

		start := lx.pos
		word := lx.ident()
		if len(word) == 0 {
			err = fail(start, ErrCharacterInvalid(lx.peekRune()))
			return
		}

		// label:
		if lx.peek() == ':' {
			lx.pos++
			stmts = append(stmts, isa.LabelDecl(word, lineno))
			continue
		}

		op, ok := isa.ParseOpcode(word)
		if !ok {
			err = fail(start, ErrOpcodeInvalid)
			return
		}

		args, at, cause := asm.parseOperands(lx, lineno)
		if cause != nil {
			err = fail(at, cause)
			return
		}

		switch {
		case len(args) < op.Arity():
			err = fail(lx.pos, ErrOpcodeValueMissing)
			return
		case len(args) > op.Arity():
			err = fail(start, ErrOpcodeExtraArgs)
			return
		}

		stmts = append(stmts, isa.Instr(isa.NewInstruction(op, args...), lineno))

		// Operands run to the end of the line.
		return
	}
}

// parseOperands parses the comma separated operands up to the end of
// the line. On failure, 'at' is the offset of the failure.
func (asm *Assembler) parseOperands(lx *lexer, lineno int) (args []isa.Operand, at int, err error) {
	lx.skipSpace()
	if lx.atEnd() {
		return
	}

	for {
		lx.skipSpace()
		at = lx.pos
		if lx.atEnd() || lx.peek() == ',' {
			err = ErrOpcodeValueMissing
			return
		}

		var arg isa.Operand
		arg, err = asm.parseOperand(lx, lineno)
		if err != nil {
			return
		}
		args = append(args, arg)

		lx.skipSpace()
		at = lx.pos
		if lx.atEnd() {
			return
		}
		if lx.peek() != ',' {
			err = ErrOperandSeparator
			return
		}
		lx.pos++
	}
}

// parseOperand parses a register, integer, expression or label reference.
func (asm *Assembler) parseOperand(lx *lexer, lineno int) (arg isa.Operand, err error) {
	c := lx.peek()

	switch {
	case isIdentStart(c):
		word := lx.ident()
		reg, ok := isa.ParseRegister(word)
		if ok {
			arg = isa.RegisterRef(reg)
		} else {
			arg = isa.LabelRef(word)
		}
	case c == '+' || c == '-' || isDigit(c):
		var value int32
		value, err = valueOf(lx.number())
		if err != nil {
			return
		}
		arg = isa.Immediate(value)
	case c == '$':
		var expr string
		expr, err = lx.expression()
		if err != nil {
			return
		}
		var value int32
		value, err = asm.parenEval(expr, lineno)
		if err != nil {
			return
		}
		arg = isa.Immediate(value)
	default:
		err = ErrCharacterInvalid(lx.peekRune())
	}

	return
}

// valueOf returns the value of an integer literal: an optional sign,
// then decimal digits or 0x and hex digits.
func valueOf(word string) (value int32, err error) {
	digits := word
	negative := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		negative = digits[0] == '-'
		digits = digits[1:]
	}

	base := 10
	if strings.HasPrefix(digits, "0x") {
		base = 16
		digits = digits[2:]
	}

	if len(digits) == 0 {
		err = ErrParseNumber(word)
		return
	}

	mag, perr := strconv.ParseUint(digits, base, 64)
	if perr != nil {
		if errors.Is(perr, strconv.ErrRange) {
			err = ErrParseRange(word)
		} else {
			err = ErrParseNumber(word)
		}
		return
	}

	switch {
	case negative && mag > -math.MinInt32:
		err = ErrParseRange(word)
	case !negative && mag > math.MaxInt32:
		err = ErrParseRange(word)
	case negative:
		value = int32(-int64(mag))
	default:
		value = int32(mag)
	}

	return
}

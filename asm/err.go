package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/x8/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOperandSeparator   = errors.New(f("',' expected"))

	// Linker errors
	ErrLabelDuplicate  = errors.New(f("duplicate label"))
	ErrLabelUnresolved = errors.New(f("unresolved label"))
)

type ErrCharacterInvalid rune

func (err ErrCharacterInvalid) Error() string {
	return f("character %q invalid", rune(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRange string

func (err ErrParseRange) Error() string {
	return f("'%v' overflows a 32-bit integer", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates a syntax error in the source.
type ErrSyntax struct {
	LineNo int    // 1-based line number.
	Column int    // 1-based byte column.
	Line   string // Text of the line.
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d:%d '%v' %v", err.LineNo, err.Column, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrSyntaxList is every syntax error of a source, in line order.
type ErrSyntaxList []*ErrSyntax

func (list ErrSyntaxList) Error() string {
	text := make([]string, len(list))
	for n, err := range list {
		text[n] = err.Error()
	}
	return strings.Join(text, "\n")
}

func (list ErrSyntaxList) Unwrap() []error {
	errs := make([]error, len(list))
	for n, err := range list {
		errs[n] = err
	}
	return errs
}

// ErrLink is a label resolution failure.
type ErrLink struct {
	Label  string
	LineNo int // Line of the offending declaration or reference.
	Err    error
}

func (err *ErrLink) Error() string {
	return f("line %d %v %v", err.LineNo, err.Err, err.Label)
}

func (err *ErrLink) Unwrap() error {
	return err.Err
}

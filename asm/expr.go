package asm

import (
	"errors"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// MAX_EXPR_STEPS bounds the work of a single $(...) evaluation.
const MAX_EXPR_STEPS = 100_000

// parenEval does compile-time $(...) evaluations.
//
// Predefines with integer values are visible by name, and LINENO is the
// line being assembled.
func (asm *Assembler) parenEval(expr string, lineno int) (value int32, err error) {
	thread := starlark.Thread{Name: "asm"}
	thread.SetMaxExecutionSteps(MAX_EXPR_STEPS)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.predefine {
		value32, verr := valueOf(str)
		if verr != nil {
			// Ignore non-integer predefines.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	pred["LINENO"] = starlark.MakeInt(lineno)

	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if serr != nil {
		err = errors.Join(ErrParseExpression(expr), serr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > math.MaxInt32 || st_int64 < math.MinInt32 {
		err = ErrParseRange("$(" + expr + ")")
		return
	}
	value = int32(st_int64)
	return
}

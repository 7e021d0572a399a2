package color

import (
	"fmt"
	"strings"

	"github.com/SAI-Aghylas/libppm/internal/ir"
)

// Op is a named pointwise pixel operation.
type Op string

const (
	OpInvert    Op = "invert"
	OpGrayscale Op = "grayscale"
)

// Ops lists every supported operation in a stable order.
var Ops = []Op{OpInvert, OpGrayscale}

// ParseOp converts an operation name to an Op.
func ParseOp(s string) (Op, error) {
	switch Op(strings.ToLower(strings.TrimSpace(s))) {
	case OpInvert:
		return OpInvert, nil
	case OpGrayscale, "greyscale", "gray", "grey":
		return OpGrayscale, nil
	default:
		return "", fmt.Errorf("unknown operation: %q (want one of %s)", s, OpNames())
	}
}

// ParseOps parses every name in names, failing on the first unknown one.
func ParseOps(names []string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	for _, n := range names {
		op, err := ParseOp(n)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// OpNames returns the supported operation names joined by ", ".
func OpNames() string {
	names := make([]string, len(Ops))
	for i, op := range Ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

// Func returns the pixel function implementing op.
func (op Op) Func() func(ir.Pixel) ir.Pixel {
	switch op {
	case OpInvert:
		return ir.Pixel.Invert
	case OpGrayscale:
		return ir.Pixel.Grayscale
	default:
		return nil
	}
}

package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Op identifies the operation of a Func node.
type Op uint8

const (
	// OpScale multiplies the child value (or x) by a constant.
	OpScale Op = iota
	// OpPow raises the child value to an integer power.
	OpPow
	// OpNeg negates the child value.
	OpNeg
	// OpExp computes e raised to the child value.
	OpExp
	// OpXExpMinus computes y·exp(-y) of the child value y.
	OpXExpMinus
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpScale:
		return "scale"
	case OpPow:
		return "pow"
	case OpNeg:
		return "neg"
	case OpExp:
		return "exp"
	case OpXExpMinus:
		return "xexpminus"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Func is a node of a scalar expression tree.
//
// The zero value is not useful; use the constructors. A nil *Func evaluates
// to the identity.
type Func struct {
	op    Op
	k     float64
	n     int
	child *Func
}

// Scale returns k·x.
func Scale(k float64) *Func {
	return &Func{op: OpScale, k: k}
}

// ScaleOf returns k·f(x).
func ScaleOf(f *Func, k float64) *Func {
	return &Func{op: OpScale, k: k, child: f.clone()}
}

// Pow returns f(x)^n.
func Pow(f *Func, n int) *Func {
	return &Func{op: OpPow, n: n, child: f.clone()}
}

// Neg returns -f(x).
func Neg(f *Func) *Func {
	return &Func{op: OpNeg, child: f.clone()}
}

// Exp returns exp(f(x)).
func Exp(f *Func) *Func {
	return &Func{op: OpExp, child: f.clone()}
}

// XExpMinus returns y·exp(-y) with y = f(x).
func XExpMinus(f *Func) *Func {
	return &Func{op: OpXExpMinus, child: f.clone()}
}

// clone deep-copies f so a parent never shares a subtree with another tree.
func (f *Func) clone() *Func {
	if f == nil {
		return nil
	}
	c := *f
	c.child = f.child.clone()
	return &c
}

// Op returns the node operation.
func (f *Func) Op() Op {
	return f.op
}

// Depth returns the number of nodes from f down to the innermost one.
func (f *Func) Depth() int {
	d := 0
	for n := f; n != nil; n = n.child {
		d++
	}
	return d
}

// Eval evaluates the tree at x.
func (f *Func) Eval(x float64) float64 {
	if f == nil {
		return x
	}
	y := f.child.Eval(x)
	switch f.op {
	case OpScale:
		return f.k * y
	case OpPow:
		return powInt(y, f.n)
	case OpNeg:
		return -y
	case OpExp:
		return exp(y)
	case OpXExpMinus:
		return y * exp(-y)
	default:
		return math.NaN()
	}
}

// powInt computes y^n by repeated squaring.
func powInt(y float64, n int) float64 {
	if n < 0 {
		return 1 / powInt(y, -n)
	}
	r := 1.0
	for n > 0 {
		if n&1 == 1 {
			r *= y
		}
		y *= y
		n >>= 1
	}
	return r
}

// String renders the tree as an infix expression in x.
func (f *Func) String() string {
	if f == nil {
		return "x"
	}
	inner := f.child.String()
	switch f.op {
	case OpScale:
		return fmt.Sprintf("%s·%s", formatFloat(f.k), wrap(inner))
	case OpPow:
		if isPower(inner) {
			inner = "(" + inner + ")"
		}
		return fmt.Sprintf("%s^%d", wrap(inner), f.n)
	case OpNeg:
		return "-" + wrap(inner)
	case OpExp:
		return fmt.Sprintf("exp(%s)", inner)
	case OpXExpMinus:
		return fmt.Sprintf("%s·exp(-%s)", wrap(inner), wrap(inner))
	default:
		return f.op.String()
	}
}

func wrap(s string) string {
	if s == "x" || strings.HasPrefix(s, "exp(") || isPower(s) || isGroup(s) {
		return s
	}
	return "(" + s + ")"
}

// isPower reports whether s renders as "x^n" or "(...)^n".
func isPower(s string) bool {
	i := strings.LastIndexByte(s, '^')
	if i < 0 {
		return false
	}
	if _, err := strconv.Atoi(s[i+1:]); err != nil {
		return false
	}
	base := s[:i]
	return base == "x" || isGroup(base)
}

// isGroup reports whether s is a single parenthesised group.
func isGroup(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

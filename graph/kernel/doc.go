// Package kernel provides composable scalar functions of one real variable.
//
// A [Func] is a small expression tree built from a closed set of
// operations (scale, power, negation, exponential and y·exp(-y)). Each node
// owns at most one child; a nil child stands for the identity x. Trees are
// immutable once built and evaluation recurses from the root on every call.
//
// Filter kernels are assembled by composition instead of bespoke code:
//
//	// 1.2·e^-1 · exp(-(x/c)^4)
//	bias := kernel.ScaleOf(kernel.Exp(kernel.Neg(kernel.Pow(kernel.Scale(1/c), 4))), 1.2*math.Exp(-1))
//	// (t·x)·exp(-t·x)
//	wavelet := kernel.XExpMinus(kernel.Scale(t))
//
// Build with -tags fastmath to evaluate exponentials with the algo-approx
// approximation instead of math.Exp.
package kernel

package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-sgwt/graph/kernel"
)

// Bank is an ordered set of kernels, one per scale. Index 0 is the bias
// (low-pass) kernel; the order is the scale identity and is preserved by
// every consumer.
type Bank struct {
	kernels []*kernel.Func
}

// NewBank wraps explicit kernels in a bank, e.g. for custom families.
func NewBank(kernels ...*kernel.Func) Bank {
	return Bank{kernels: append([]*kernel.Func(nil), kernels...)}
}

// New builds a filter bank of the given kind for a spectrum bounded above
// by lambdaMax, with numScales wavelet kernels after the bias kernel.
//
// Unimplemented kinds, invalid bounds and invalid option values return an empty bank together with
// ErrNotImplemented or ErrInvalidSpectrum; an empty bank must never be used
// for coefficient computation.
func New(kind Kind, lambdaMax float64, numScales int, opts ...Option) (Bank, error) {
	cfg := defaultBankConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if !(lambdaMax > 0) || numScales <= 0 {
		return Bank{}, fmt.Errorf("filter: New(%s, lmax=%v, scales=%d): %w", kind, lambdaMax, numScales, ErrInvalidSpectrum)
	}
	if err := cfg.validate(); err != nil {
		return Bank{}, fmt.Errorf("filter: New(%s): %v: %w", kind, err, ErrInvalidSpectrum)
	}

	switch kind {
	case KindMexicanHat:
		return buildMexicanHat(lambdaMax, numScales, cfg)
	default:
		// KindMeyer and KindABSpline3 are named but have no builder yet.
		return Bank{}, fmt.Errorf("filter: New(%s): %w", kind, ErrNotImplemented)
	}
}

func buildMexicanHat(lmax float64, numScales int, cfg bankConfig) (Bank, error) {
	lmin := cfg.lambdaMin
	if !cfg.lambdaMinSet {
		lmin = lmax / cfg.lowPassFactor
	}

	scales := WaveletScales(lmin, lmax, numScales)
	if len(scales) == 0 {
		return Bank{}, fmt.Errorf("filter: mexican hat scales for [%v, %v]: %w", lmin, lmax, ErrInvalidSpectrum)
	}

	kernels := make([]*kernel.Func, 0, numScales+1)

	// 1.2·e^-1 · exp(-(x/(0.4·lmin))^4)
	lminFac := 0.4 * lmin
	bias := kernel.ScaleOf(kernel.Exp(kernel.Neg(kernel.Pow(kernel.Scale(1/lminFac), 4))), 1.2*math.Exp(-1))
	kernels = append(kernels, bias)

	for _, t := range scales {
		kernels = append(kernels, kernel.XExpMinus(kernel.Scale(t)))
	}
	return Bank{kernels: kernels}, nil
}

// Len returns the number of kernels, bias included.
func (b Bank) Len() int { return len(b.kernels) }

// Empty reports whether the bank holds no kernels.
func (b Bank) Empty() bool { return len(b.kernels) == 0 }

// At returns kernel i.
func (b Bank) At(i int) *kernel.Func { return b.kernels[i] }

// Kernels returns a copy of the kernel slice.
func (b Bank) Kernels() []*kernel.Func {
	return append([]*kernel.Func(nil), b.kernels...)
}

// Eval returns the response of every kernel at x.
func (b Bank) Eval(x float64) []float64 {
	out := make([]float64, len(b.kernels))
	for i, g := range b.kernels {
		out[i] = g.Eval(x)
	}
	return out
}

// String lists the kernels, one "[i] expression" per line.
func (b Bank) String() string {
	var sb strings.Builder
	for i, g := range b.kernels {
		fmt.Fprintf(&sb, "[%d] %s\n", i, g)
	}
	return sb.String()
}

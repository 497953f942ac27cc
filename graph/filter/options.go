package filter

import "fmt"

const (
	defaultLowPassFactor = 20.0
	defaultRangeLo       = -1.0
	defaultRangeHi       = 1.0
)

type bankConfig struct {
	lowPassFactor float64
	lambdaMin     float64
	lambdaMinSet  bool
}

func defaultBankConfig() bankConfig {
	return bankConfig{
		lowPassFactor: defaultLowPassFactor,
	}
}

// Option configures filter bank construction.
type Option func(*bankConfig)

// WithLowPassFactor sets the ratio lambdaMax/lambdaMin used to derive the
// effective lower spectrum bound. Must be > 1; defaults to 20. New fails
// with ErrInvalidSpectrum otherwise.
func WithLowPassFactor(f float64) Option {
	return func(cfg *bankConfig) {
		cfg.lowPassFactor = f
	}
}

// WithLambdaMin sets the lower spectrum bound explicitly, overriding the
// low-pass factor. Must be > 0.
func WithLambdaMin(l float64) Option {
	return func(cfg *bankConfig) {
		cfg.lambdaMin = l
		cfg.lambdaMinSet = true
	}
}

func (cfg bankConfig) validate() error {
	if !(cfg.lowPassFactor > 1) {
		return fmt.Errorf("low-pass factor %v must exceed 1", cfg.lowPassFactor)
	}
	if cfg.lambdaMinSet && !(cfg.lambdaMin > 0) {
		return fmt.Errorf("lambdaMin %v must be positive", cfg.lambdaMin)
	}
	return nil
}

type coeffConfig struct {
	gridOrder int
	lo, hi    float64
	useFFT    bool
}

func defaultCoeffConfig() coeffConfig {
	return coeffConfig{
		lo: defaultRangeLo,
		hi: defaultRangeHi,
	}
}

// CoeffOption configures coefficient computation.
type CoeffOption func(*coeffConfig)

// WithGridOrder sets the number of quadrature nodes. Zero selects
// maxOrder+1.
func WithGridOrder(n int) CoeffOption {
	return func(cfg *coeffConfig) {
		cfg.gridOrder = n
	}
}

// WithRange sets the approximation interval [a, b]; defaults to [-1, 1].
// For a Laplacian this is normally [0, lambdaMax].
func WithRange(a, b float64) CoeffOption {
	return func(cfg *coeffConfig) {
		cfg.lo = a
		cfg.hi = b
	}
}

// WithFFT evaluates the cosine sums with an FFT-based DCT-II when twice the
// grid order is a power of two; other grids use the direct sums. Results
// match the direct sums up to rounding.
func WithFFT() CoeffOption {
	return func(cfg *coeffConfig) {
		cfg.useFFT = true
	}
}

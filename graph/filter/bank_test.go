package filter

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMexicanHat(t *testing.T) {
	const (
		lmax   = 4.0
		scales = 5
	)
	bank, err := New(KindMexicanHat, lmax, scales)
	require.NoError(t, err)
	require.Equal(t, scales+1, bank.Len())

	lmin := lmax / defaultLowPassFactor
	assert.InDelta(t, 1.2*math.Exp(-1), bank.At(0).Eval(0), 1e-15)
	x := 0.4 * lmin
	assert.InDelta(t, 1.2*math.Exp(-1)*math.Exp(-1), bank.At(0).Eval(x), 1e-15)

	ts := WaveletScales(lmin, lmax, scales)
	for i, tv := range ts {
		g := bank.At(i + 1)
		// t·x·exp(-t·x) peaks at x = 1/t with value e^-1.
		assert.InDelta(t, math.Exp(-1), g.Eval(1/tv), 1e-15)
		assert.InDelta(t, 0, g.Eval(0), 1e-15)
	}
}

func TestNewLowPassOptions(t *testing.T) {
	a, err := New(KindMexicanHat, 10, 3, WithLowPassFactor(5))
	require.NoError(t, err)
	b, err := New(KindMexicanHat, 10, 3, WithLambdaMin(2))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := New(KindMexicanHat, 10, 3, WithLowPassFactor(defaultLowPassFactor))
	require.NoError(t, err)
	d, err := New(KindMexicanHat, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, d.String(), c.String())
}

func TestNewInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"lpfactor-one", WithLowPassFactor(1)},
		{"lpfactor-below-one", WithLowPassFactor(0.5)},
		{"lpfactor-nan", WithLowPassFactor(math.NaN())},
		{"lambdamin-zero", WithLambdaMin(0)},
		{"lambdamin-negative", WithLambdaMin(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank, err := New(KindMexicanHat, 10, 3, tt.opt)
			require.ErrorIs(t, err, ErrInvalidSpectrum)
			assert.True(t, bank.Empty())
		})
	}
}

func TestNewUnimplementedKinds(t *testing.T) {
	for _, k := range []Kind{KindMeyer, KindABSpline3, Kind(99)} {
		bank, err := New(k, 2, 4)
		require.ErrorIs(t, err, ErrNotImplemented)
		assert.True(t, bank.Empty())
	}
}

func TestNewInvalidSpectrum(t *testing.T) {
	for _, tc := range []struct {
		lmax float64
		n    int
	}{{0, 3}, {-1, 3}, {2, 0}, {math.NaN(), 2}} {
		bank, err := New(KindMexicanHat, tc.lmax, tc.n)
		require.ErrorIs(t, err, ErrInvalidSpectrum)
		assert.Equal(t, 0, bank.Len())
	}
}

func TestBankEvalAndString(t *testing.T) {
	bank, err := New(KindMexicanHat, 2, 2)
	require.NoError(t, err)

	resp := bank.Eval(0.5)
	require.Len(t, resp, 3)
	for i, v := range resp {
		assert.InDelta(t, bank.At(i).Eval(0.5), v, 0)
	}

	lines := strings.Split(strings.TrimSpace(bank.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "[0] "))
	assert.Contains(t, lines[2], "exp(-")

	ks := bank.Kernels()
	ks[0] = nil
	assert.NotNil(t, bank.At(0))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(strings.ToUpper(k.String()))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("mexican_hat")
	require.NoError(t, err)
	assert.Equal(t, KindMexicanHat, got)

	_, err = ParseKind("haar")
	require.Error(t, err)
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

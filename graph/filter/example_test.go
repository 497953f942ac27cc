package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-sgwt/graph/filter"
)

func ExampleWaveletScales() {
	for _, s := range filter.WaveletScales(0.5, 4, 3) {
		fmt.Printf("%.4f\n", s)
	}
	// Output:
	// 4.0000
	// 1.0000
	// 0.2500
}

func ExampleCoefficients() {
	bank, err := filter.New(filter.KindMexicanHat, 2, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	coeffs, err := filter.Coefficients(bank, 10, filter.WithRange(0, 2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(coeffs.NumScales(), coeffs.Order())
	// Output: 3 10
}

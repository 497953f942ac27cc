// Command sgwtinfo filters an impulse on a synthetic graph with a spectral
// wavelet filter bank and prints per-scale statistics.
//
// Usage:
//
//	sgwtinfo [flags]
//
// Examples:
//
//	sgwtinfo -graph path -n 64 -node 10
//	sgwtinfo -graph grid -n 32 -scales 6 -order 40 -backend gpu
//	sgwtinfo -graph cycle -n 100 -backend cheby -fft
//	sgwtinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-sgwt/graph"
	"github.com/cwbudde/algo-sgwt/graph/device"
	"github.com/cwbudde/algo-sgwt/graph/engine"
	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/sparse"
	"github.com/cwbudde/algo-sgwt/stats/scale"
	"github.com/cwbudde/algo-sgwt/stats/spectral"
)

type config struct {
	graph     string
	n         int
	node      int
	normalize bool
	kind      string
	scales    int
	lpFactor  float64
	order     int
	grid      int
	fft       bool
	backend   string
	precision string
	maxAlloc  uint64
}

const responseSamples = 1024

var errDoesNotFit = errors.New("inputs do not fit in device memory")

func main() {
	var cfg config
	flag.StringVar(&cfg.graph, "graph", "path", "graph family: path, cycle, grid, star")
	flag.IntVar(&cfg.n, "n", 32, "number of nodes (side length for grid)")
	flag.IntVar(&cfg.node, "node", 0, "node carrying the unit impulse")
	flag.BoolVar(&cfg.normalize, "normalized", false, "use the normalized Laplacian")
	flag.StringVar(&cfg.kind, "kind", filter.KindMexicanHat.String(), "filter kind")
	flag.IntVar(&cfg.scales, "scales", 4, "number of wavelet scales")
	flag.Float64Var(&cfg.lpFactor, "lpfactor", 20, "lambda_max / lambda_min")
	flag.IntVar(&cfg.order, "order", 30, "polynomial order")
	flag.IntVar(&cfg.grid, "grid", 0, "quadrature grid order (0 = order+1)")
	flag.BoolVar(&cfg.fft, "fft", false, "compute coefficients with an FFT-based DCT")
	flag.StringVar(&cfg.backend, "backend", "cpu", "recurrence backend: cpu, gpu, cheby")
	flag.StringVar(&cfg.precision, "precision", "float64", "device precision for -backend gpu: float64, float32")
	flag.Uint64Var(&cfg.maxAlloc, "maxalloc", 0, "override the device allocation limit in bytes")
	list := flag.Bool("list", false, "list filter kinds")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sgwtinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Applies a spectral graph wavelet filter bank to an impulse and\n")
		fmt.Fprintf(os.Stderr, "prints the approximation error and statistics of every scale.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		graph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *list {
		for _, k := range filter.Kinds() {
			fmt.Println(k)
		}
		return
	}

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errDoesNotFit) {
			fmt.Fprintf(os.Stderr, "hint: retry with -backend cpu\n")
		}
		os.Exit(1)
	}
}

func buildLaplacian(family string, n int, normalized bool) (*sparse.CSR, error) {
	var (
		edges []sparse.Edge
		nodes = n
	)
	switch strings.ToLower(family) {
	case "path":
		edges = sparse.Path(n)
	case "cycle":
		edges = sparse.Cycle(n)
	case "star":
		edges = sparse.Star(n)
	case "grid":
		edges = sparse.Grid(n, n)
		nodes = n * n
	default:
		return nil, fmt.Errorf("unknown graph %q", family)
	}
	var opts []sparse.LaplacianOption
	if normalized {
		opts = append(opts, sparse.WithNormalized())
	}
	return sparse.Laplacian(nodes, edges, opts...)
}

func newApplier(cfg config, lmax float64) (engine.Applier, string, error) {
	switch cfg.backend {
	case "cpu":
		return engine.NewSequential(), "sequential", nil
	case "cheby":
		ch, err := engine.NewChebyshev(0, lmax)
		return ch, "chebyshev", err
	case "gpu":
		if device.CurrentBackend() == nil {
			device.RegisterHostBackend(device.WithMaxBufferSize(cfg.maxAlloc))
		}
		var p device.Precision
		switch cfg.precision {
		case "float64":
			p = device.Float64
		case "float32":
			p = device.Float32
		default:
			return nil, "", fmt.Errorf("unknown precision %q", cfg.precision)
		}
		a, err := engine.NewAccelerated(engine.WithPrecision(p))
		if err != nil {
			return nil, "", err
		}
		return a, fmt.Sprintf("accelerated (%s, %s)", a.Device().Name, p), nil
	default:
		return nil, "", fmt.Errorf("unknown backend %q", cfg.backend)
	}
}

func run(cfg config, w io.Writer) error {
	l, err := buildLaplacian(cfg.graph, cfg.n, cfg.normalize)
	if err != nil {
		return err
	}
	signal := make([]float64, l.Rows())
	if cfg.node < 0 || cfg.node >= len(signal) {
		return fmt.Errorf("node %d outside [0, %d)", cfg.node, len(signal))
	}
	signal[cfg.node] = 1

	if cfg.lpFactor <= 1 {
		return fmt.Errorf("lpfactor %v must exceed 1", cfg.lpFactor)
	}
	kind, err := filter.ParseKind(cfg.kind)
	if err != nil {
		return err
	}
	lmax := sparse.GershgorinBound(l)
	bank, err := filter.New(kind, lmax, cfg.scales, filter.WithLowPassFactor(cfg.lpFactor))
	if err != nil {
		return err
	}

	copts := []filter.CoeffOption{filter.WithRange(0, lmax), filter.WithGridOrder(cfg.grid)}
	if cfg.fft {
		copts = append(copts, filter.WithFFT())
	}
	coeffs, err := filter.Coefficients(bank, cfg.order, copts...)
	if err != nil {
		return err
	}

	applier, name, err := newApplier(cfg, lmax)
	if err != nil {
		return err
	}
	if a, ok := applier.(*engine.Accelerated); ok {
		m, s := a.RequiredBytes(l, len(signal), coeffs)
		if !a.FitsInDeviceMemory(m, s) {
			return fmt.Errorf("%d bytes > %d allowed by %s: %w", m+s, a.Device().MaxAllocBytes(), a.Device().Name, errDoesNotFit)
		}
	}

	results, err := engine.ValidatedBank(applier, bank).Apply(l, signal, coeffs)
	if err != nil {
		return err
	}

	feat := cpu.DetectFeatures()
	fmt.Fprintf(w, "graph:   %s, %d nodes, %d nonzeros, lambda_max <= %.4f\n", cfg.graph, l.Rows(), l.NNZ(), lmax)
	fmt.Fprintf(w, "bank:    %s, %d kernels, order %d\n", kind, bank.Len(), coeffs.Order())
	fmt.Fprintf(w, "backend: %s\n", name)
	fmt.Fprintf(w, "cpu:     %s sse2=%t avx2=%t neon=%t\n", feat.Architecture, feat.HasSSE2, feat.HasAVX2, feat.HasNEON)

	lo, hi := spectral.FrameBounds(bank, lmax, responseSamples)
	fmt.Fprintf(w, "frame:   A=%.4f B=%.4f B/A=%.3f\n\n", lo, hi, hi/lo)

	return printTable(w, bank, coeffs, results, lmax, lmax/cfg.lpFactor)
}

func printTable(w io.Writer, bank filter.Bank, coeffs filter.Coeffs, results [][]float64, lmax, lmin float64) error {
	scales := filter.WaveletScales(lmin, lmax, bank.Len()-1)
	stats := scale.Summarize(results)
	energy := scale.EnergyFraction(results)
	resp := spectral.Describe(bank, lmax, responseSamples)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tScale\tCentroid\tBandwidth\tMax Err\tPeak\tPeak Node\tRMS\tEnergy [%%]\tSupport\n")
	fmt.Fprintf(tw, "------\t-----\t--------\t---------\t-------\t----\t---------\t---\t----------\t-------\n")
	for i, st := range stats {
		label, s := "low-pass", "-"
		if i > 0 {
			label = fmt.Sprintf("wavelet %d", i)
			if i-1 < len(scales) {
				s = fmt.Sprintf("%.4f", scales[i-1])
			}
		}
		maxErr := filter.MaxError(bank.At(i), coeffs[i], 0, lmax, 512)
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.3e\t%.4e\t%d\t%.4e\t%.2f\t%d\n",
			label, s, resp[i].Centroid, resp[i].Bandwidth, maxErr,
			st.Peak, st.PeakNode, st.RMS, 100*energy[i], st.Support)
	}
	return tw.Flush()
}

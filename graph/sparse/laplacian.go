package sparse

import (
	"fmt"
	"math"
)

// Edge is an undirected weighted edge between two nodes.
type Edge struct {
	From, To int
	Weight   float64
}

type laplacianConfig struct {
	normalized bool
}

// LaplacianOption configures Laplacian construction.
type LaplacianOption func(*laplacianConfig)

// WithNormalized builds the symmetric normalized Laplacian
// I - D^-1/2 W D^-1/2 instead of the combinatorial D - W.
func WithNormalized() LaplacianOption {
	return func(cfg *laplacianConfig) {
		cfg.normalized = true
	}
}

// Laplacian builds the graph Laplacian of an undirected graph with n nodes.
// Parallel edges are summed and self-loops are ignored. Isolated nodes get a
// zero row.
func Laplacian(n int, edges []Edge, opts ...LaplacianOption) (*CSR, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Laplacian: n=%d: %w", n, ErrBadShape)
	}
	var cfg laplacianConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	degree := make([]float64, n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("Laplacian: edge %d-%d: %w", e.From, e.To, ErrOutOfRange)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight < 0 {
			return nil, fmt.Errorf("Laplacian: edge %d-%d weight %v: %w", e.From, e.To, e.Weight, ErrInvalidWeight)
		}
		if e.From == e.To {
			continue
		}
		degree[e.From] += e.Weight
		degree[e.To] += e.Weight
	}

	entries := make([]Triplet, 0, n+2*len(edges))
	for i, d := range degree {
		switch {
		case cfg.normalized && d > 0:
			entries = append(entries, Triplet{Row: i, Col: i, Val: 1})
		case !cfg.normalized:
			entries = append(entries, Triplet{Row: i, Col: i, Val: d})
		}
	}
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		w := e.Weight
		if cfg.normalized {
			w /= math.Sqrt(degree[e.From] * degree[e.To])
		}
		entries = append(entries,
			Triplet{Row: e.From, Col: e.To, Val: -w},
			Triplet{Row: e.To, Col: e.From, Val: -w},
		)
	}
	return FromTriplets(n, n, entries)
}

// GershgorinBound returns max_i Σ_j |a_ij|, an upper bound on the largest
// eigenvalue magnitude of m. It is a cheap substitute for an eigen solve when
// choosing the spectrum range of a filter.
func GershgorinBound(m *CSR) float64 {
	var bound float64
	for i := 0; i < m.rows; i++ {
		var sum float64
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			sum += math.Abs(m.data[p])
		}
		bound = math.Max(bound, sum)
	}
	return bound
}

// Path returns the unit-weight edges of the path graph 0-1-...-(n-1).
func Path(n int) []Edge {
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{From: i - 1, To: i, Weight: 1})
	}
	return edges
}

// Cycle returns the unit-weight edges of the cycle graph on n nodes.
func Cycle(n int) []Edge {
	if n < 3 {
		return Path(n)
	}
	return append(Path(n), Edge{From: n - 1, To: 0, Weight: 1})
}

// Star returns the unit-weight edges joining node 0 to nodes 1..n-1.
func Star(n int) []Edge {
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{From: 0, To: i, Weight: 1})
	}
	return edges
}

// Grid returns the unit-weight edges of a rows×cols 4-neighbour lattice.
// Node (r, c) has index r*cols + c.
func Grid(rows, cols int) []Edge {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	var edges []Edge
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				edges = append(edges, Edge{From: id, To: id + 1, Weight: 1})
			}
			if r+1 < rows {
				edges = append(edges, Edge{From: id, To: id + cols, Weight: 1})
			}
		}
	}
	return edges
}

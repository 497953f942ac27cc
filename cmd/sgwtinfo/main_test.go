package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sgwt/graph/device"
)

func testConfig() config {
	return config{
		graph:     "path",
		n:         16,
		node:      3,
		kind:      "mexican-hat",
		scales:    3,
		lpFactor:  20,
		order:     20,
		backend:   "cpu",
		precision: "float64",
	}
}

func TestRunBackends(t *testing.T) {
	defer device.RegisterBackend(nil)
	for _, backend := range []string{"cpu", "gpu", "cheby"} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig()
			cfg.backend = backend
			var buf bytes.Buffer
			require.NoError(t, run(cfg, &buf))

			out := buf.String()
			assert.Contains(t, out, "16 nodes")
			assert.Contains(t, out, "low-pass")
			assert.Contains(t, out, "wavelet 3")
			assert.Equal(t, 3, strings.Count(out, "wavelet "))
		})
	}
}

func TestRunGrid(t *testing.T) {
	cfg := testConfig()
	cfg.graph = "grid"
	cfg.n = 4
	cfg.fft = true
	var buf bytes.Buffer
	require.NoError(t, run(cfg, &buf))
	assert.Contains(t, buf.String(), "16 nodes")
}

func TestRunRejectsOversizedDeviceInputs(t *testing.T) {
	device.RegisterBackend(nil)
	defer device.RegisterBackend(nil)

	cfg := testConfig()
	cfg.backend = "gpu"
	cfg.maxAlloc = 128
	err := run(cfg, &bytes.Buffer{})
	require.ErrorIs(t, err, errDoesNotFit)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*config)
	}{
		{"graph", func(c *config) { c.graph = "torus" }},
		{"node", func(c *config) { c.node = 99 }},
		{"kind", func(c *config) { c.kind = "haar" }},
		{"unimplemented kind", func(c *config) { c.kind = "meyer" }},
		{"backend", func(c *config) { c.backend = "tpu" }},
		{"scales", func(c *config) { c.scales = 0 }},
		{"lpfactor", func(c *config) { c.lpFactor = 1 }},
		{"precision", func(c *config) {
			c.backend = "gpu"
			c.precision = "float16"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mod(&cfg)
			require.Error(t, run(cfg, &bytes.Buffer{}))
		})
	}
}

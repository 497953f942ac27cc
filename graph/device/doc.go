// Package device abstracts the accelerator used by the recurrence engine.
//
// The surface mirrors a GPU compute API: a [Backend] enumerates devices and
// opens a [Context]; the context allocates device buffers (vectors, CSR
// matrices and dense tables), moves data between host and device, and runs
// the few kernels the polynomial recurrence needs (sparse matrix-vector
// product, copy, zero and a scaled accumulate).
//
// [HostBackend] executes on the CPU while enforcing a device allocation limit
// and memory budget. It is the reference backend for tests and for machines
// without a driver. A backend is selected globally with [RegisterBackend] or
// passed explicitly to the engine.
package device

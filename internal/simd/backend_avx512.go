//go:build avx512

package simd

// LANES is the compile-time SIMD width. Building with -tags avx512 selects
// the 16-wide backend (untested by the reference implementation, per
// spec.md §6 — carried forward here for completeness).
const LANES = 16

// backendName identifies this build for the startup feature report in
// dispatch.go.
const backendName = "avx512"

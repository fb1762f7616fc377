//go:build noSIMD && !avx512 && !sse

package simd

// LANES is the compile-time SIMD width. Building with -tags noSIMD selects
// the trivial 1-wide fallback: every primitive degenerates to a scalar
// wrapper, so correctness is testable without any vector hardware.
const LANES = 1

const backendName = "scalar"

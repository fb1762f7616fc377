//go:build sse && !avx512

package simd

// LANES is the compile-time SIMD width. Building with -tags sse selects
// the 4-wide backend.
const LANES = 4

const backendName = "sse"

//go:build !avx512 && !sse && !noSIMD

package simd

// LANES is the compile-time SIMD width. This is the default backend
// (no build tag required), matching spec.md §6: "AVX (8-wide, default)".
const LANES = 8

const backendName = "avx"

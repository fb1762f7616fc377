package simd

import (
	"log/slog"

	"golang.org/x/sys/cpu"
)

// ActiveBackend reports the build-tag-selected backend's name (scalar, sse,
// avx, avx512), set at package init for the startup log line below. Unlike
// the teacher's internal/fit/ssd.go, which dispatches to an AVX2/NEON/
// scalar implementation at runtime based on cpu.X86.HasAVX2, the backend
// here is fixed at compile time (spec.md §6: "Chosen at build time"). We
// still consult golang.org/x/sys/cpu so a build's log output can flag a
// mismatch — e.g. an avx512 build running on hardware that lacks it.
var ActiveBackend = backendName

func init() {
	available := detectedISA()
	slog.Info("sphereflake SIMD backend selected",
		"backend", ActiveBackend,
		"lanes", LANES,
		"cpu_best_available", available,
	)

	if backendMismatch(available) {
		slog.Warn("SIMD backend built for an ISA this CPU does not advertise; "+
			"falling back to compiler-generated scalar code per lane is still "+
			"correct, just not accelerated",
			"backend", ActiveBackend,
			"cpu_best_available", available,
		)
	}
}

// detectedISA reports the widest vector ISA golang.org/x/sys/cpu can see on
// this machine, independent of which backend this binary was built with.
func detectedISA() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2, cpu.X86.HasAVX:
		return "avx"
	case cpu.X86.HasSSE41:
		return "sse"
	default:
		return "scalar"
	}
}

// backendMismatch reports whether this binary was built for a wider/
// different ISA than the running CPU actually supports.
func backendMismatch(available string) bool {
	rank := map[string]int{"scalar": 0, "sse": 1, "avx": 2, "avx512": 3}
	return rank[ActiveBackend] > rank[available]
}

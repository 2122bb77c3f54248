package asciiscan

import "golang.org/x/sys/cpu"

// cpuHasAVX2 reads the same feature flag an assembly-backed memchr
// routine would gate on. Kept as its own function (rather than an inline
// var initializer) so a future accelerated IsASCII has one place to add
// the dispatch.
func cpuHasAVX2() bool {
	return cpu.X86.HasAVX2
}

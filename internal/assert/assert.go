//go:build debug

// Package assert holds invariant checks that only run with -tags debug.
package assert

import "fmt"

// Region panics if a writable region of length region breaks the
// [0, remaining] bound, or is empty while capacity remains.
// Only enabled with -tags debug.
func Region(method string, region, remaining int) {
	if region > remaining {
		panic(fmt.Sprintf("%s: region %d > remaining %d", method, region, remaining))
	}
	if region == 0 && remaining != 0 {
		panic(fmt.Sprintf("%s: empty region, remaining %d", method, remaining))
	}
}

// Vectors panics if more regions than slots were filled, or if the
// regions in dst[:n] add up to more than remaining.
// Only enabled with -tags debug.
func Vectors(method string, dst [][]byte, n, remaining int) {
	if n > len(dst) {
		panic(fmt.Sprintf("%s: %d regions > %d slots", method, n, len(dst)))
	}
	total := 0
	for i := 0; i < n; i++ {
		total += len(dst[i])
	}
	if total > remaining {
		panic(fmt.Sprintf("%s: regions %d > remaining %d", method, total, remaining))
	}
}

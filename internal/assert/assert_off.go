//go:build !debug

package assert

// Region is a no-op in production.
// Enable with -tags debug for runtime checks.
func Region(string, int, int) {}

// Vectors is a no-op in production.
// Enable with -tags debug for runtime checks.
func Vectors(string, [][]byte, int, int) {}

package testkit

import (
	"sync"
	"testing"
)

var seamMu sync.Mutex

// Swap replaces *target for the duration of the test; the old value is restored on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	prev := *target
	*target = replacement
	t.Cleanup(func() { *target = prev })
}

// Serial holds a process-wide lock until the test ends, for tests that Swap package-level seams
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}

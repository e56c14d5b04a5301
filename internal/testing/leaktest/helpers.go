// Package leaktest holds test helpers for spotting goroutine and heap growth
// around concurrent code such as the catalog memo cache and the connection pool.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
	bytesPerMB  = 1024 * 1024
)

// GoroutineChecker records the goroutine count so a later Check can compare.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines outlived the work.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	// Give finished goroutines a chance to exit, polling until the deadline
	deadline := time.Now().Add(4 * drainDelay)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(settleDelay)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckHeapGrowth runs fn and fails if live heap grew by more than maxGrowthMB.
func CheckHeapGrowth(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	fn()

	runtime.GC()
	time.Sleep(settleDelay)
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	growthMB := (float64(after.HeapAlloc) - float64(before.HeapAlloc)) / bytesPerMB
	if growthMB > maxGrowthMB {
		t.Errorf("Heap grew %.2fMB (max=%.2fMB): before=%.2fMB, after=%.2fMB",
			growthMB, maxGrowthMB, float64(before.HeapAlloc)/bytesPerMB, float64(after.HeapAlloc)/bytesPerMB)
	}
}

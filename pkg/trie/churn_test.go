//go:build test

package trie

import (
	"fmt"
	"runtime"
	"testing"
)

var churnPatterns = [][]string{
	{"a", "ab", "abc", "abcd", "abcde"},
	{"h", "he", "hel", "hell", "hello"},
	{"w", "wo", "wor", "worl", "world"},
	{"p", "pr", "pro", "prog", "progr", "progra", "program"},
	{"i", "in", "int", "inte", "inter", "intern", "interna", "internat", "internati", "internatio", "internation", "internationa", "international"},
}

// TestInsertRemoveChurn fills and empties the dictionary repeatedly. Every
// cycle must end with a bare root, and live memory must not grow with the
// number of cycles.
func TestInsertRemoveChurn(t *testing.T) {
	for _, cycles := range []int{10, 100, 500} {
		t.Run(fmt.Sprintf("cycles_%d", cycles), func(t *testing.T) {
			runChurn(t, cycles)
		})
	}
}

func runChurn(t *testing.T, cycles int) {
	unit := New()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)

	ops := 0
	for c := 0; c < cycles; c++ {
		for _, pattern := range churnPatterns {
			for i, w := range pattern {
				unit.Insert(fmt.Sprintf("%s%d", w, c%7), i)
				ops++
			}
		}
		for _, pattern := range churnPatterns {
			for _, w := range pattern {
				_ = unit.PredictN(w, 10)
				ops++
			}
		}
		for _, pattern := range churnPatterns {
			for _, w := range pattern {
				unit.Remove(fmt.Sprintf("%s%d", w, c%7))
				ops++
			}
		}
		if unit.Size() != 1 {
			t.Fatalf("cycle %d left %d nodes behind", c, unit.Size())
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.Alloc - baseline.Alloc)
	t.Logf("cycles=%d ops=%d mem_delta=%d bytes", cycles, ops, memDelta)

	if memDelta > 1<<20 {
		t.Errorf("live memory grew by %d bytes after churn", memDelta)
	}
}

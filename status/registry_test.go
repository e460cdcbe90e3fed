package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	a := m.Get("combat.spread")
	b := m.Get("combat.spread")
	if a != b {
		t.Error("Expected Get to return the cached pointer")
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Error("Expected Lookup not to register missing keys")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if got := f.Load(); got != 4000 {
		t.Errorf("Expected 4000, got %f", got)
	}

	f.StoreMax(10)
	if f.Load() != 4000 {
		t.Errorf("Expected StoreMax to keep larger value, got %f", f.Load())
	}
	f.StoreMax(5000)
	if f.Load() != 5000 {
		t.Errorf("Expected 5000, got %f", f.Load())
	}
}

func TestRegistrySnapshotOrder(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("pickup.completed").Store(3)
	r.Ints.Get("combat.shots").Store(12)
	r.Floats.Get("combat.spread").Store(0.5)
	r.Bools.Get("combat.aiming").Store(true)

	snap := r.Snapshot()
	want := []Metric{
		{"combat.shots", "12"},
		{"pickup.completed", "3"},
		{"combat.spread", "0.50"},
		{"combat.aiming", "true"},
	}
	if len(snap) != len(want) {
		t.Fatalf("Expected %d metrics, got %d", len(want), len(snap))
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("Metric %d: expected %+v, got %+v", i, want[i], snap[i])
		}
	}
}

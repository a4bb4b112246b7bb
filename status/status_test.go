package status

import (
	"sync"
	"testing"
)

func TestMetricMapCachesPointers(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyFrames)
	b := r.Ints.Get(KeyFrames)
	if a != b {
		t.Fatal("Get should return the cached pointer")
	}
	a.Add(3)
	if r.Snapshot().Frames != 3 {
		t.Errorf("snapshot frames = %d", r.Snapshot().Frames)
	}
	if !r.Ints.Has(KeyFrames) || r.Ints.Has("missing") {
		t.Error("Has mismatch")
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("b").Set(2)
	m.Get("a").Set(1)
	m.Get("c").Set(3)

	var keys []string
	m.Range(func(k string, v *AtomicFloat) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("range order = %v", keys)
	}
}

func TestMetricMapConcurrentFirstGet(t *testing.T) {
	m := NewMetricMap[AtomicString]()
	ptrs := make([]*AtomicString, 16)
	var wg sync.WaitGroup
	for i := range ptrs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ptrs[i] = m.Get(KeyBackground)
		}()
	}
	wg.Wait()
	for _, p := range ptrs[1:] {
		if p != ptrs[0] {
			t.Fatal("concurrent first Get returned different metrics")
		}
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if f.Get() != 400 {
		t.Errorf("sum = %v, want 400", f.Get())
	}
}

func TestAtomicStringSwap(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Fatal("zero value should be empty")
	}
	long := "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	if prev := s.Swap(long); prev != "" {
		t.Errorf("first swap returned %q", prev)
	}
	if s.Load() != long {
		t.Error("long literals must be kept intact")
	}
	if prev := s.Swap("x"); prev != long {
		t.Errorf("swap returned %q", prev)
	}
}

func TestSnapshotDefaults(t *testing.T) {
	r := NewRegistry()
	snap := r.Snapshot()
	if snap != (Snapshot{}) {
		t.Errorf("fresh snapshot = %+v", snap)
	}
	if r.TotalCount() == 0 {
		t.Error("snapshot should register the well-known keys")
	}
}

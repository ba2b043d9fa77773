package filter

import "testing"

type recorder struct {
	writes [][]float32
	closed bool
}

func (r *recorder) Write(p []float32) (int, error) {
	r.writes = append(r.writes, append([]float32(nil), p...))
	return len(p), nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

func TestNoOpPassesThrough(t *testing.T) {
	rec := &recorder{}
	n := NewNoOp(rec)

	p := []float32{0.1, 0.2, 0.3}
	written, err := n.Write(p)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if written != len(p) {
		t.Errorf("Write returned %d, want %d", written, len(p))
	}
	if len(rec.writes) != 1 {
		t.Fatalf("recorder got %d writes, want 1", len(rec.writes))
	}
	for i, v := range p {
		if rec.writes[0][i] != v {
			t.Errorf("writes[0][%d] = %v, want %v", i, rec.writes[0][i], v)
		}
	}
}

func TestSlotAccumulatorEmitsCompleteSlots(t *testing.T) {
	const rate = 10
	const slotSeconds = 1.0 // 10 samples per slot

	var slots [][]float32
	acc := NewSlotAccumulator(rate, slotSeconds, func(s []float32) {
		slots = append(slots, s)
	})

	// 25 samples should emit two full 10-sample slots and leave 5 pending.
	samples := make([]float32, 25)
	for i := range samples {
		samples[i] = float32(i)
	}
	if _, err := acc.Write(samples); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	for i, slot := range slots {
		if len(slot) != 10 {
			t.Fatalf("slot %d has %d samples, want 10", i, len(slot))
		}
	}
	for i, v := range slots[0] {
		if v != float32(i) {
			t.Errorf("slot 0 sample %d = %v, want %v", i, v, float32(i))
		}
	}
	for i, v := range slots[1] {
		if v != float32(10+i) {
			t.Errorf("slot 1 sample %d = %v, want %v", i, v, float32(10+i))
		}
	}
	if acc.Pending() != 5 {
		t.Errorf("Pending() = %d, want 5", acc.Pending())
	}
}

func TestSlotAccumulatorCloseDiscardsPartialSlot(t *testing.T) {
	acc := NewSlotAccumulator(10, 1.0, func([]float32) {
		t.Fatal("onSlot should not be called for a partial slot")
	})
	if _, err := acc.Write(make([]float32, 4)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := acc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if acc.Pending() != 0 {
		t.Errorf("Pending() after Close = %d, want 0", acc.Pending())
	}
}

func TestSlotAccumulatorWriteAcrossMultipleCalls(t *testing.T) {
	var slots [][]float32
	acc := NewSlotAccumulator(5, 1.0, func(s []float32) {
		slots = append(slots, s)
	})
	acc.Write(make([]float32, 3))
	acc.Write(make([]float32, 3))
	if len(slots) != 1 {
		t.Fatalf("got %d slots across two writes, want 1", len(slots))
	}
	if acc.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", acc.Pending())
	}
}

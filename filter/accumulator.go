package filter

// SlotAccumulator buffers streamed PCM samples and calls onSlot once
// per complete slotSeconds-long slot (§1: 15 s FT8, 7.5 s FT4),
// dropping the consumed samples from its internal buffer afterwards.
// Partial data left at Close is discarded; callers that need a
// trailing short slot decoded should pad it themselves first.
type SlotAccumulator struct {
	slotSamples int
	buf         []float32
	onSlot      func([]float32)
}

// NewSlotAccumulator returns an accumulator for slots of slotSeconds
// at sampleRateHz, calling onSlot with each complete slot's samples.
func NewSlotAccumulator(sampleRateHz int, slotSeconds float64, onSlot func([]float32)) *SlotAccumulator {
	return &SlotAccumulator{
		slotSamples: int(float64(sampleRateHz) * slotSeconds),
		onSlot:      onSlot,
	}
}

// Write appends p to the accumulator's buffer, emitting every
// complete slot formed along the way.
func (a *SlotAccumulator) Write(p []float32) (int, error) {
	a.buf = append(a.buf, p...)
	for len(a.buf) >= a.slotSamples {
		slot := append([]float32(nil), a.buf[:a.slotSamples]...)
		a.onSlot(slot)
		a.buf = a.buf[a.slotSamples:]
	}
	return len(p), nil
}

// Close discards any partial slot still buffered.
func (a *SlotAccumulator) Close() error {
	a.buf = nil
	return nil
}

// Pending returns the number of samples buffered for the slot in
// progress.
func (a *SlotAccumulator) Pending() int {
	return len(a.buf)
}

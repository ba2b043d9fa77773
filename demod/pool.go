package demod

import "sync"

// BufferPool recycles the per-frame and per-column scratch buffers of
// BuildSpectrogramPooled across repeated calls. The Waterfall itself is
// allocated fresh on every call, and Decode does not use a pool.
type BufferPool struct {
	frames sync.Pool
	rows   sync.Pool
}

// NewBufferPool returns a pool ready for use.
func NewBufferPool() *BufferPool {
	return &BufferPool{}
}

// GetFrame returns a scratch float64 slice of at least n elements.
func (p *BufferPool) GetFrame(n int) []float64 {
	if v := p.frames.Get(); v != nil {
		buf := v.([]float64)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]float64, n)
}

// PutFrame returns a scratch slice to the pool.
func (p *BufferPool) PutFrame(buf []float64) {
	p.frames.Put(buf) //nolint:staticcheck // sync.Pool requires interface{}
}

// GetRow returns a scratch row slice of at least n elements.
func (p *BufferPool) GetRow(n int) []float64 {
	if v := p.rows.Get(); v != nil {
		buf := v.([]float64)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]float64, n)
}

// PutRow returns a scratch row to the pool.
func (p *BufferPool) PutRow(buf []float64) {
	p.rows.Put(buf)
}

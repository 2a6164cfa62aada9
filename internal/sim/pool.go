package sim

import "sync"

// StatePool recycles state vectors of a fixed dimension. Stepping a daily
// model over multi-year records allocates several stage vectors per step;
// the hot loop draws them from a pool instead.
type StatePool struct {
	dim  int
	pool sync.Pool
}

func NewStatePool(dim int) *StatePool {
	p := &StatePool{dim: dim}
	p.pool.New = func() interface{} {
		return make(State, dim)
	}
	return p
}

// Get returns a zeroed state of the pool's dimension.
func (p *StatePool) Get() State {
	return p.pool.Get().(State)
}

// Put zeroes s and returns it to the pool. States of the wrong dimension
// are dropped.
func (p *StatePool) Put(s State) {
	if len(s) != p.dim {
		return
	}
	for i := range s {
		s[i] = 0
	}
	p.pool.Put(s)
}

// GetAndCopy returns a pooled state initialized from src.
func (p *StatePool) GetAndCopy(src State) State {
	dst := p.Get()
	copy(dst, src)
	return dst
}

package testfixtures

import "sync"

// Picker is a deterministic stand-in for the generator's random source. It
// returns the configured values in order, clamped into [0, n), and repeats the
// last value once the sequence is exhausted. An empty sequence always picks 0.
type Picker struct {
	mu     sync.Mutex
	values []int
	index  int
}

// NewPicker constructs a picker replaying the given sequence.
func NewPicker(values ...int) *Picker {
	return &Picker{values: values}
}

// Pick returns the next configured value modulo n.
func (p *Picker) Pick(n int) int {
	if n <= 0 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.values) == 0 {
		return 0
	}

	value := p.values[p.index]
	if p.index < len(p.values)-1 {
		p.index++
	}
	if value < 0 {
		value = -value
	}
	return value % n
}

// PickFunc exposes Pick as a function suitable for dependency injection.
func (p *Picker) PickFunc() func(n int) int {
	if p == nil {
		return func(int) int { return 0 }
	}
	return p.Pick
}

// Reset rewinds the sequence to its start.
func (p *Picker) Reset() {
	p.mu.Lock()
	p.index = 0
	p.mu.Unlock()
}

package galaxy

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform samples in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FixedSource returns the same sample for every draw.
type FixedSource float64

// Float64 implements Source.
func (f FixedSource) Float64() float64 {
	return float64(f)
}

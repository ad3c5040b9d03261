package geom

// Rand is the random source injected into the sampling helpers. It is
// satisfied by *math/rand.Rand and by *FastRand.
type Rand interface {
	Intn(n int) int
}

// FastRand is a xorshift64 generator for deterministic, allocation-free
// sampling. Not cryptographic.
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator. A zero seed is replaced with 1 because the
// xorshift state must never be zero.
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value.
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

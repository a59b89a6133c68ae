package simplex

import (
	"github.com/CQCL/simplex/bimap"
	"github.com/CQCL/simplex/bits"
	"github.com/CQCL/simplex/rng"
)

// Option configures a State at construction.
type Option func(*State)

// WithSeed sets the seed for the internal coin source consumed by
// non-deterministic measurements that the caller does not override with an
// explicit coin. The default seed is 0.
func WithSeed(seed int64) Option {
	return func(s *State) {
		s.rbg = rng.NewSource(seed)
	}
}

// State is an n-qubit stabilizer state, (n, r, A, b, Q, R0, R1, p, det).
// The zero value is not usable; construct with New. State is not safe for
// concurrent use; distinct States sharing no memory may be used
// concurrently without synchronization.
type State struct {
	n int // qubit count, fixed at construction
	r int // live generator count, 0 <= r <= n+1

	a  *bits.AMatrix // n x (n+1): column h supported-qubit set
	b  []uint8       // length n: per-qubit Z-parity offset
	q  *bits.QMatrix // (n+1) x (n+1) symmetric, zero diagonal
	r0 []uint8       // length n+1: per-column phase digit, low bit
	r1 []uint8       // length n+1: per-column phase digit, high bit
	p  *bimap.Bimap  // principal column <-> qubit

	det bool        // cleared on first non-deterministic coin toss
	rbg *rng.Source // coin source for unforced measurements
}

// New constructs a simulator for n qubits, initialized to |0...0>.
func New(n int, opts ...Option) *State {
	if n < 0 {
		panic("simplex.New: n must be >= 0")
	}
	s := &State{
		n:   n,
		r:   0,
		a:   bits.NewAMatrix(n),
		b:   make([]uint8, n),
		q:   bits.NewQMatrix(n),
		r0:  make([]uint8, n+1),
		r1:  make([]uint8, n+1),
		p:   bimap.New(),
		det: true,
		rbg: rng.NewSource(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// N returns the number of qubits.
func (s *State) N() int {
	return s.n
}

// IsDeterministic reports whether every measurement performed so far was
// forced by the state (true iff no random choice has ever been made).
func (s *State) IsDeterministic() bool {
	return s.det
}

// Clone returns an independent deep copy: mutating the clone never affects
// the receiver, or vice versa, including each State's coin source.
func (s *State) Clone() *State {
	b := make([]uint8, len(s.b))
	copy(b, s.b)
	r0 := make([]uint8, len(s.r0))
	copy(r0, s.r0)
	r1 := make([]uint8, len(s.r1))
	copy(r1, s.r1)
	return &State{
		n:   s.n,
		r:   s.r,
		a:   s.a.Clone(),
		b:   b,
		q:   s.q.Clone(),
		r0:  r0,
		r1:  r1,
		p:   s.p.Clone(),
		det: s.det,
		rbg: s.rbg.Clone(),
	}
}

// colsWhereOne returns the ascending list of live columns h with A[j,h]=1.
func (s *State) colsWhereOne(j int) []int {
	return s.a.ColsWhereOne(j, s.r)
}

// colsWhereOne2 returns the ascending list of live columns h with
// A[j,h] = A[k,h] = 1.
func (s *State) colsWhereOne2(j, k int) []int {
	return s.a.ColsWhereOne2(j, k, s.r)
}

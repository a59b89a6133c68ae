package runner

import (
	"fmt"

	"github.com/CQCL/simplex/simplex"
	"github.com/CQCL/simplex/stimparse"
)

// ResetX resets qubit j to the +1 eigenstate of X: measure in the X basis
// and apply a Z correction if the outcome was 1.
func ResetX(s *simplex.State, j int) {
	if s.MeasX(j, nil) == 1 {
		s.Z(j)
	}
}

// ResetY resets qubit j to the +1 eigenstate of Y: measure in the Y basis
// and apply an X correction if the outcome was 1.
func ResetY(s *simplex.State, j int) {
	if s.MeasY(j, nil) == 1 {
		s.X(j)
	}
}

// ResetZ resets qubit j to |0>: measure in the Z basis and apply an X
// correction if the outcome was 1.
func ResetZ(s *simplex.State, j int) {
	if s.MeasZ(j, nil) == 1 {
		s.X(j)
	}
}

// Run constructs an n-qubit simulator seeded with seed, applies ops in
// order, and returns every measurement outcome encountered (in circuit
// order) along with whether the run was fully deterministic. Reset ops
// contribute no entry to outcomes; they are state-preparation sugar, not
// observations.
//
// Run panics if an op names a qubit index outside [0,n) or a qubit count
// inconsistent with its type's arity: ops produced by stimparse.Parse
// always satisfy this, so a panic here means the caller assembled Op
// values by hand incorrectly.
func Run(n int, ops []stimparse.Op, seed int64) (outcomes []int, det bool) {
	s, outcomes := RunState(n, ops, seed)
	return outcomes, s.IsDeterministic()
}

// RunState is Run but also returns the final simulator state, letting a
// caller (such as a command-line driver) perform further gates or
// measurements after the parsed circuit has executed.
func RunState(n int, ops []stimparse.Op, seed int64) (*simplex.State, []int) {
	s := simplex.New(n, simplex.WithSeed(seed))
	var outcomes []int
	for _, op := range ops {
		if out, ok := applyOp(s, op); ok {
			outcomes = append(outcomes, out)
		}
	}
	return s, outcomes
}

// applyOp applies a single op to s, returning its measurement outcome and
// true if op was a measurement, or (0, false) otherwise.
func applyOp(s *simplex.State, op stimparse.Op) (int, bool) {
	switch op.Type {
	case stimparse.OpX:
		s.X(one(op))
	case stimparse.OpY:
		s.Y(one(op))
	case stimparse.OpZ:
		s.Z(one(op))
	case stimparse.OpH:
		s.H(one(op))
	case stimparse.OpS:
		s.S(one(op))
	case stimparse.OpSdg:
		s.Sdg(one(op))
	case stimparse.OpCX:
		j, k := two(op)
		s.CX(j, k)
	case stimparse.OpCZ:
		j, k := two(op)
		s.CZ(j, k)
	case stimparse.OpMeasX:
		return s.MeasX(one(op), nil), true
	case stimparse.OpMeasY:
		return s.MeasY(one(op), nil), true
	case stimparse.OpMeasZ:
		return s.MeasZ(one(op), nil), true
	case stimparse.OpResetX:
		ResetX(s, one(op))
	case stimparse.OpResetY:
		ResetY(s, one(op))
	case stimparse.OpResetZ:
		ResetZ(s, one(op))
	default:
		panic(fmt.Sprintf("runner: unrecognized op type %v", op.Type))
	}
	return 0, false
}

func one(op stimparse.Op) int {
	if len(op.Qubits) != 1 {
		panic(fmt.Sprintf("runner: op %v expects 1 qubit, got %d", op.Type, len(op.Qubits)))
	}
	return op.Qubits[0]
}

func two(op stimparse.Op) (int, int) {
	if len(op.Qubits) != 2 {
		panic(fmt.Sprintf("runner: op %v expects 2 qubits, got %d", op.Type, len(op.Qubits)))
	}
	return op.Qubits[0], op.Qubits[1]
}

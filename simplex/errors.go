package simplex

import "fmt"

// checkQubit panics if j is not a valid qubit index. Out-of-range indices
// are a programming error, not a recoverable condition.
func (s *State) checkQubit(j int) {
	if j < 0 || j >= s.n {
		panic(fmt.Sprintf("simplex: qubit index %d out of range [0,%d)", j, s.n))
	}
}

// checkDistinct panics if j == k; CX and CZ require distinct qubits.
func (s *State) checkDistinct(j, k int) {
	if j == k {
		panic(fmt.Sprintf("simplex: qubit index %d used for both operands of a two-qubit gate", j))
	}
}

// checkCoin panics if coin is non-nil and not 0 or 1.
func (s *State) checkCoin(coin *int) {
	if coin != nil && *coin != 0 && *coin != 1 {
		panic(fmt.Sprintf("simplex: coin must be 0 or 1, got %d", *coin))
	}
}

// Package simplex is a stabilizer-style simulator for Clifford quantum
// circuits. It maintains a compact algebraic representation of an n-qubit
// stabilizer state, (A, b, Q, R0, R1, p, r), and updates it in place as
// gates and measurements are applied.
//
// What:
//
//   - New(n) constructs the all-zero state |0...0>.
//   - X, Y, Z, H, S, Sdg apply single-qubit Clifford gates; CX, CZ apply
//     two-qubit Clifford gates.
//   - MeasX, MeasY, MeasZ measure a qubit in the corresponding basis,
//     returning 0 or 1. A measurement forced by the current state does not
//     consume randomness and leaves IsDeterministic() true; an unforced
//     measurement draws one bit from the internal coin source (or uses a
//     caller-supplied override) and clears IsDeterministic() permanently.
//   - Clone returns an independent deep copy, letting a caller fork
//     execution at a mid-circuit measurement.
//
// Why:
//
//   - A Clifford circuit's stabilizer state has size polynomial in the
//     qubit count, unlike a general state vector's exponential size; this
//     package exploits that to simulate circuits of {X, Y, Z, H, S, Sdg,
//     CX, CZ} plus single-qubit Pauli measurements efficiently.
//
// Complexity:
//
//   - Gate application: O(n) for X, Y and Z; up to O(n^2) for S, Sdg, CZ,
//     CX and H, whose submatrix flips, principal-row reselection and column
//     elimination each touch up to r <= n+1 generators.
//   - Measurement: O(n) for MeasZ's deterministic fast path; up to O(n^2)
//     for every other path, which reselects or eliminates principal
//     columns.
//
// Errors:
//
//   - Out-of-range qubit indices, j == k on CX/CZ, and a coin outside
//     {0, 1} are programming errors and panic (see errors.go); there is no
//     recoverable error condition in this package's public surface.
package simplex

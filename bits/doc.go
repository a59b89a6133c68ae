// Package bits provides the two dense GF(2) bit matrices that back the
// stabilizer state tuple: AMatrix (n rows, up to n+1 live columns) and
// QMatrix (a symmetric, zero-diagonal square matrix of the same column
// capacity).
//
// What:
//
//   - AMatrix tracks which qubits are supported by which generator.
//   - QMatrix tracks off-diagonal phase coupling between generators; its
//     diagonal is reserved for the caller's own R0/R1 phase digits and is
//     never touched by QMatrix itself.
//   - Both expose XOR row/column mutation, weight queries, swap-to-last-live
//     and append, in terms of a live column count "r" that the caller
//     (package simplex) owns and passes in wherever an operation depends
//     on it. Neither type has a drop-last operation: the caller drops the
//     last live column by decrementing its own r.
//
// Why:
//
//   - The simulator core never needs more than these eight or so primitive
//     mutations on either matrix; keeping them here, free of the simplex
//     state tuple, makes the GF(2) bookkeeping independently testable.
//
// Complexity:
//
//   - Entry: O(1).
//   - AddRow/RowWeight: O(r) in the live column count.
//   - AddCol/ColWeight/SwapCol/ZeroAppendBasisCol: O(n) in the qubit count.
//   - QMatrix ops are O(r) per row/column touched.
//
// Errors:
//
//   - Out-of-range row/column indices panic; they are a programming error
//     in package simplex, not a condition callers recover from.
package bits

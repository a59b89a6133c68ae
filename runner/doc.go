// Package runner binds parsed circuit ops to a simplex.State and executes
// them in order. It is the Go collapse of the original library's
// language-binding layer: where a foreign-function boundary once needed a
// thin per-language wrapper, the exported Run and RunState functions play
// the same role.
//
// Reset is not a simplex primitive; ResetX/Y/Z are implemented here as
// measure-then-correct: measure in the matching basis, then apply the
// Pauli correction that forces the post-measurement state to the basis
// fixed point.
package runner

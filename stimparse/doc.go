// Package stimparse parses a line-oriented subset of the Stim circuit
// format into a flat list of primitive simplex operations.
//
// Each line is a mnemonic followed by whitespace-separated qubit indices
// ("H 0", "CX 0 1", "tick"). Every recognized mnemonic expands into zero or
// more primitive ops ({X, Y, Z, H, S, Sdg, CX, CZ, MeasX, MeasY, MeasZ,
// ResetX, ResetY, ResetZ}); compound gates such as SQRT_XX or YCZ expand
// into short Clifford sub-circuits over the same primitive set. Blank lines
// are skipped; "tick" is recognized and discarded (it carries no semantics
// for this simulator).
//
// Complexity: parsing is O(lines + total expanded ops). Errors: malformed
// lines are reported as sentinel errors wrapping the offending line text,
// never as a panic — circuit files are untrusted input.
package stimparse

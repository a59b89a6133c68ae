package stimparse

import "errors"

// Every message is prefixed "stimparse: ..." for consistent grepping.
// Callers should match with errors.Is; line context is attached with
// fmt.Errorf("%w: <line>", Err...) at the call site, so errors.Is still
// matches through the wrap.
var (
	// ErrUnknownOpcode is returned when a line's first token is not a
	// recognized mnemonic.
	ErrUnknownOpcode = errors.New("stimparse: unrecognized opcode")

	// ErrArityMismatch is returned when a line supplies a different number
	// of qubit arguments than its opcode requires.
	ErrArityMismatch = errors.New("stimparse: wrong number of qubit arguments")

	// ErrBadQubitIndex is returned when a qubit argument does not parse as
	// a non-negative integer.
	ErrBadQubitIndex = errors.New("stimparse: qubit index is not a non-negative integer")
)

package stimparse

// OpType enumerates the primitive operations a parsed circuit is expanded
// into. Every recognized mnemonic line expands into zero or more Ops drawn
// from this set.
type OpType int

const (
	OpX OpType = iota
	OpY
	OpZ
	OpH
	OpS
	OpSdg
	OpCX
	OpCZ
	OpMeasX
	OpMeasY
	OpMeasZ
	OpResetX
	OpResetY
	OpResetZ
)

// String provides a readable identifier for logs/errors (deterministic).
func (o OpType) String() string {
	switch o {
	case OpX:
		return "X"
	case OpY:
		return "Y"
	case OpZ:
		return "Z"
	case OpH:
		return "H"
	case OpS:
		return "S"
	case OpSdg:
		return "Sdg"
	case OpCX:
		return "CX"
	case OpCZ:
		return "CZ"
	case OpMeasX:
		return "MeasX"
	case OpMeasY:
		return "MeasY"
	case OpMeasZ:
		return "MeasZ"
	case OpResetX:
		return "ResetX"
	case OpResetY:
		return "ResetY"
	case OpResetZ:
		return "ResetZ"
	default:
		return "Unknown"
	}
}

// Op is a single primitive operation applied to one or two qubits. Two-qubit
// ops store control in Qubits[0] and target in Qubits[1].
type Op struct {
	Type   OpType
	Qubits []int
}

// opdatum is one primitive step of a mnemonic's expansion. Args indexes into
// the mnemonic's own qubit argument list (0 for the first argument, 1 for
// the second), letting the same expansion template reorder or duplicate
// operands (e.g. CX(1,0) for a mnemonic whose own arguments are (0,1)).
type opdatum struct {
	op   OpType
	args []int
}

// opdata is one mnemonic's arity and Clifford expansion.
type opdata struct {
	arity    int
	expand []opdatum
}

// opmap is the full recognized mnemonic table. Mnemonics not appearing here
// trigger ErrUnknownOpcode. "tick" and "I" carry no primitive expansion and
// are parsed but produce no ops.
var opmap = map[string]opdata{
	"I": {1, nil},
	"X": {1, []opdatum{{OpX, []int{0}}}},
	"Y": {1, []opdatum{{OpY, []int{0}}}},
	"Z": {1, []opdatum{{OpZ, []int{0}}}},
	"C_XYZ": {1, []opdatum{
		{OpSdg, []int{0}},
		{OpH, []int{0}},
	}},
	"C_ZYX": {1, []opdatum{
		{OpH, []int{0}},
		{OpS, []int{0}},
	}},
	"H": {1, []opdatum{{OpH, []int{0}}}},
	"H_XY": {1, []opdatum{
		{OpH, []int{0}},
		{OpZ, []int{0}},
		{OpH, []int{0}},
		{OpS, []int{0}},
	}},
	"H_XZ": {1, []opdatum{{OpH, []int{0}}}},
	"H_YZ": {1, []opdatum{
		{OpH, []int{0}},
		{OpS, []int{0}},
		{OpH, []int{0}},
		{OpZ, []int{0}},
	}},
	"S": {1, []opdatum{{OpS, []int{0}}}},
	"SQRT_X": {1, []opdatum{
		{OpH, []int{0}},
		{OpS, []int{0}},
		{OpH, []int{0}},
	}},
	"SQRT_X_DAG": {1, []opdatum{
		{OpS, []int{0}},
		{OpH, []int{0}},
		{OpS, []int{0}},
	}},
	"SQRT_Y": {1, []opdatum{
		{OpZ, []int{0}},
		{OpH, []int{0}},
	}},
	"SQRT_Y_DAG": {1, []opdatum{
		{OpH, []int{0}},
		{OpZ, []int{0}},
	}},
	"SQRT_Z":     {1, []opdatum{{OpS, []int{0}}}},
	"SQRT_Z_DAG": {1, []opdatum{{OpSdg, []int{0}}}},
	"S_DAG":      {1, []opdatum{{OpSdg, []int{0}}}},
	"CNOT":       {2, []opdatum{{OpCX, []int{0, 1}}}},
	"CX":         {2, []opdatum{{OpCX, []int{0, 1}}}},
	"CY": {2, []opdatum{
		{OpSdg, []int{1}},
		{OpCX, []int{0, 1}},
		{OpS, []int{1}},
	}},
	"CZ": {2, []opdatum{{OpCZ, []int{0, 1}}}},
	"ISWAP": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpS, []int{1}},
		{OpCX, []int{1, 0}},
		{OpCX, []int{0, 1}},
	}},
	"ISWAP_DAG": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpSdg, []int{1}},
		{OpCX, []int{1, 0}},
		{OpCX, []int{0, 1}},
	}},
	"SQRT_XX": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpH, []int{0}},
		{OpS, []int{0}},
		{OpH, []int{0}},
		{OpCX, []int{0, 1}},
	}},
	"SQRT_XX_DAG": {2, []opdatum{
		{OpS, []int{0}},
		{OpCX, []int{0, 1}},
		{OpH, []int{0}},
		{OpS, []int{0}},
		{OpCX, []int{0, 1}},
	}},
	"SQRT_YY": {2, []opdatum{
		{OpS, []int{0}},
		{OpCX, []int{1, 0}},
		{OpZ, []int{0}},
		{OpH, []int{1}},
		{OpCX, []int{1, 0}},
		{OpS, []int{0}},
	}},
	"SQRT_YY_DAG": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpS, []int{1}},
		{OpH, []int{0}},
		{OpS, []int{0}},
		{OpH, []int{0}},
		{OpCX, []int{1, 0}},
		{OpCX, []int{0, 1}},
	}},
	"SQRT_ZZ": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpS, []int{1}},
		{OpCX, []int{0, 1}},
	}},
	"SQRT_ZZ_DAG": {2, []opdatum{
		{OpH, []int{1}},
		{OpCX, []int{0, 1}},
		{OpH, []int{1}},
		{OpSdg, []int{0}},
		{OpSdg, []int{1}},
	}},
	"SWAP": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpCX, []int{1, 0}},
		{OpCX, []int{0, 1}},
	}},
	"XCX": {2, []opdatum{
		{OpH, []int{0}},
		{OpCX, []int{0, 1}},
		{OpH, []int{0}},
	}},
	"XCY": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpH, []int{0}},
		{OpS, []int{0}},
		{OpCX, []int{0, 1}},
		{OpH, []int{0}},
	}},
	"XCZ": {2, []opdatum{{OpCX, []int{1, 0}}}},
	"YCX": {2, []opdatum{
		{OpCX, []int{0, 1}},
		{OpH, []int{1}},
		{OpS, []int{1}},
		{OpCX, []int{1, 0}},
		{OpH, []int{1}},
	}},
	"YCY": {2, []opdatum{
		{OpH, []int{0}},
		{OpS, []int{0}},
		{OpH, []int{0}},
		{OpCX, []int{0, 1}},
		{OpH, []int{0}},
		{OpCX, []int{1, 0}},
		{OpS, []int{0}},
	}},
	"YCZ": {2, []opdatum{
		{OpSdg, []int{0}},
		{OpCX, []int{1, 0}},
		{OpS, []int{0}},
	}},
	"ZCX": {2, []opdatum{{OpCX, []int{0, 1}}}},
	"ZCY": {2, []opdatum{
		{OpSdg, []int{1}},
		{OpCX, []int{0, 1}},
		{OpS, []int{1}},
	}},
	"ZCZ": {2, []opdatum{{OpCZ, []int{0, 1}}}},
	"M":   {1, []opdatum{{OpMeasZ, []int{0}}}},
	"MX":  {1, []opdatum{{OpMeasX, []int{0}}}},
	"MY":  {1, []opdatum{{OpMeasY, []int{0}}}},
	"MZ":  {1, []opdatum{{OpMeasZ, []int{0}}}},
	"R":   {1, []opdatum{{OpResetZ, []int{0}}}},
	"RX":  {1, []opdatum{{OpResetX, []int{0}}}},
	"RY":  {1, []opdatum{{OpResetY, []int{0}}}},
	"RZ":  {1, []opdatum{{OpResetZ, []int{0}}}},
	"tick": {0, nil},
}

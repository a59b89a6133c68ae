package stimparse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/CQCL/simplex/stimparse"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleCircuit(t *testing.T) {
	src := "H 0\nCX 0 1\nM 0\nM 1\n"
	n, ops, err := stimparse.ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []stimparse.Op{
		{Type: stimparse.OpH, Qubits: []int{0}},
		{Type: stimparse.OpCX, Qubits: []int{0, 1}},
		{Type: stimparse.OpMeasZ, Qubits: []int{0}},
		{Type: stimparse.OpMeasZ, Qubits: []int{1}},
	}, ops)
}

func TestParseSkipsBlankLinesAndTick(t *testing.T) {
	src := "H 0\n\ntick\nX 0\n"
	n, ops, err := stimparse.ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []stimparse.Op{
		{Type: stimparse.OpH, Qubits: []int{0}},
		{Type: stimparse.OpX, Qubits: []int{0}},
	}, ops)
}

func TestParseExpandsCompoundGate(t *testing.T) {
	src := "SWAP 0 1\n"
	_, ops, err := stimparse.ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []stimparse.Op{
		{Type: stimparse.OpCX, Qubits: []int{0, 1}},
		{Type: stimparse.OpCX, Qubits: []int{1, 0}},
		{Type: stimparse.OpCX, Qubits: []int{0, 1}},
	}, ops)
}

func TestParseReorderedArguments(t *testing.T) {
	src := "XCZ 3 5\n"
	_, ops, err := stimparse.ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []stimparse.Op{
		{Type: stimparse.OpCX, Qubits: []int{5, 3}},
	}, ops)
}

func TestParseResetMnemonics(t *testing.T) {
	src := "R 0\nRX 1\nRY 2\nRZ 3\n"
	n, ops, err := stimparse.ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []stimparse.Op{
		{Type: stimparse.OpResetZ, Qubits: []int{0}},
		{Type: stimparse.OpResetX, Qubits: []int{1}},
		{Type: stimparse.OpResetY, Qubits: []int{2}},
		{Type: stimparse.OpResetZ, Qubits: []int{3}},
	}, ops)
}

func TestParseIAndTickProduceNoOps(t *testing.T) {
	src := "I 0\ntick\n"
	n, ops, err := stimparse.ParseReader(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Empty(t, ops)
}

func TestParseUnknownOpcode(t *testing.T) {
	_, _, err := stimparse.ParseReader(strings.NewReader("FROB 0\n"))
	require.True(t, errors.Is(err, stimparse.ErrUnknownOpcode))
}

func TestParseArityMismatch(t *testing.T) {
	_, _, err := stimparse.ParseReader(strings.NewReader("CX 0\n"))
	require.True(t, errors.Is(err, stimparse.ErrArityMismatch))

	_, _, err = stimparse.ParseReader(strings.NewReader("H 0 1\n"))
	require.True(t, errors.Is(err, stimparse.ErrArityMismatch))
}

func TestParseBadQubitIndex(t *testing.T) {
	_, _, err := stimparse.ParseReader(strings.NewReader("H -1\n"))
	require.True(t, errors.Is(err, stimparse.ErrBadQubitIndex))

	_, _, err = stimparse.ParseReader(strings.NewReader("H foo\n"))
	require.True(t, errors.Is(err, stimparse.ErrBadQubitIndex))
}

func TestParseEmptyFileHasZeroQubits(t *testing.T) {
	n, ops, err := stimparse.ParseReader(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Empty(t, ops)
}

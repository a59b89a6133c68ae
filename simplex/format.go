package simplex

import (
	"fmt"
	"strings"
)

// String renders a stable-enough-for-logging textual dump of the state: n,
// then A as n bracketed rows of r bits, b as one bracketed row, Q as r
// bracketed rows of r bits with the diagonal position showing R0[h] +
// 2*R1[h] in place of the (always zero) Q diagonal, then p as "col <-->
// qubit" lines. This is not a wire format and carries no compatibility
// guarantee across versions.
func (s *State) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "n: %d\n", s.n)

	sb.WriteString("A:\n")
	for j := 0; j < s.n; j++ {
		sb.WriteString(bitRow(func(h int) uint8 { return s.a.Entry(j, h) }, s.r))
		sb.WriteString("\n")
	}

	sb.WriteString("b: ")
	sb.WriteString(bitRow(func(j int) uint8 { return s.b[j] }, s.n))
	sb.WriteString("\n")

	sb.WriteString("Q:\n")
	for h1 := 0; h1 < s.r; h1++ {
		sb.WriteString(bitRow(func(h2 int) uint8 {
			if h1 == h2 {
				return s.r0[h1] + 2*s.r1[h1]
			}
			return s.q.Entry(h1, h2)
		}, s.r))
		sb.WriteString("\n")
	}

	sb.WriteString("p:\n")
	for _, pair := range s.p.Pairs() {
		fmt.Fprintf(&sb, "%d <--> %d\n", pair[0], pair[1])
	}

	return sb.String()
}

// bitRow renders "[v0 v1 ... v(count-1)]" for the given accessor.
func bitRow(at func(i int) uint8, count int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", at(i))
	}
	sb.WriteByte(']')
	return sb.String()
}

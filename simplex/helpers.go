package simplex

// reindexSubtColumn performs the right-multiplication that adds column c
// into column k, consistently across A, Q and R1.
func (s *State) reindexSubtColumn(k, c int) {
	if k == c {
		return
	}
	s.a.AddCol(k, c)
	s.r1[k] ^= s.q.Entry(c, k)
	s.q.AddRowCol(k, c, s.r)
}

// makePrincipal makes column c the principal column of qubit j, clearing
// A[j,*] outside column c by folding every other 1-column of row j into c.
func (s *State) makePrincipal(c, j int) {
	if s.a.Entry(j, c) == 0 {
		return
	}
	H := s.colsWhereOne(j)
	for _, k := range H {
		if k != c {
			s.reindexSubtColumn(k, c)
		}
	}
	s.p.MakeMatch(c, j)
}

// reselectPrincipalRow finds the qubit minimising row weight among those
// supported by column c (excluding the qubit pointed to by exclude, if
// non-nil), and makes it c's new principal owner. A no-op if no candidate
// qubit exists.
func (s *State) reselectPrincipalRow(c int, exclude *int) {
	have := false
	var j0, minWeight int
	for j1 := 0; j1 < s.n; j1++ {
		if exclude != nil && j1 == *exclude {
			continue
		}
		if s.a.Entry(j1, c) == 0 {
			continue
		}
		w := s.a.RowWeight(j1, s.r)
		if !have || w < minWeight {
			j0, minWeight, have = j1, w, true
		}
	}
	if have {
		s.makePrincipal(c, j0)
	}
}

// principate tries to reassign ownership of j's principal column (if any)
// to another qubit, returning the column index if j still owns it
// afterward (meaning it must be explicitly destroyed before j's state
// changes further), or nil if either j has no principal column or ownership
// was successfully handed off.
func (s *State) principate(j int) *int {
	c, ok := s.p.Inv(j)
	if !ok {
		return nil
	}
	s.reselectPrincipalRow(c, &j)
	if owner, ok2 := s.p.Fwd(c); !ok2 || owner != j {
		return nil
	}
	cc := c
	return &cc
}

// reindexSwapColumn swaps column k with column r-1 across A, Q, R0, R1 and
// p. A no-op if k is already r-1.
func (s *State) reindexSwapColumn(k int) {
	r1 := s.r - 1
	if k == r1 {
		return
	}
	s.a.SwapCol(k, s.r)
	s.r0[k], s.r0[r1] = s.r0[r1], s.r0[k]
	s.r1[k], s.r1[r1] = s.r1[r1], s.r1[k]
	s.q.SwapRowCol(k, s.r)
	s.p.SwapFwd(k, r1)
}

// expand appends a fresh generator column supported by qubit j (and any
// couplings in H), incrementing r.
func (s *State) expand(j int, H []int) {
	s.a.ZeroAppendBasisCol(j, s.r)
	s.q.AppendRowCol(H, s.r)
	s.r++
}

// contract drops the last live column/row, decrementing r.
func (s *State) contract() {
	s.p.FwdErase(s.r - 1)
	s.r--
}

// fixFinalBit consumes the last live column as a classical offset: if z is
// set, folds column r-1 into b and R1 before dropping it.
func (s *State) fixFinalBit(z int) {
	if z != 0 {
		r1 := s.r - 1
		for j := 0; j < s.n; j++ {
			s.b[j] ^= s.a.Entry(j, r1)
		}
		for h := 0; h < r1; h++ {
			s.r1[h] ^= s.q.Entry(h, r1)
		}
	}
	s.contract()
}

// zeroColumnElim eliminates column c, which is being vacated by its owner,
// folding its coupling into the remaining generators so the tableau stays
// consistent.
func (s *State) zeroColumnElim(c int) {
	s.reindexSwapColumn(c)
	H := s.q.RowsWithTerminal1(s.r)
	u0 := s.r0[s.r-1]
	u1 := s.r1[s.r-1]
	s.contract()

	if u0 != 0 {
		s.q.FlipSubmatrix(H)
		for _, h := range H {
			s.r0[h] ^= 1
			s.r1[h] ^= s.r0[h] ^ u1
		}
		return
	}
	if len(H) == 0 {
		return
	}
	l := H[0]
	for _, h := range H[1:] {
		s.reindexSubtColumn(h, l)
	}
	s.reindexSwapColumn(l)
	s.fixFinalBit(int(u1))
}

// newPrincipalColumn installs a fresh principal column for qubit j with
// phase digits (r0, r1) and couplings H, evicting qubit j's old principal
// column c (if any) once the new one is in place.
func (s *State) newPrincipalColumn(j, r0, r1 int, c *int, H []int) {
	s.expand(j, H)
	s.b[j] = 0
	s.r0[s.r-1] = uint8(r0)
	s.r1[s.r-1] = uint8(r1)
	s.p.MakeMatch(s.r-1, j)
	if c != nil {
		s.zeroColumnElim(*c)
	}
}

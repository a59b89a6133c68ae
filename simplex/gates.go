package simplex

// X applies a Pauli-X gate to qubit j.
func (s *State) X(j int) {
	s.checkQubit(j)
	s.applyX(j)
}

func (s *State) applyX(j int) {
	s.b[j] ^= 1
}

// Z applies a Pauli-Z gate to qubit j.
func (s *State) Z(j int) {
	s.checkQubit(j)
	s.applyZ(j)
}

func (s *State) applyZ(j int) {
	for _, h := range s.colsWhereOne(j) {
		s.r1[h] ^= 1
	}
}

// Y applies a Pauli-Y gate to qubit j.
func (s *State) Y(j int) {
	s.checkQubit(j)
	s.applyZ(j)
	s.applyX(j)
}

// S applies a phase (S) gate to qubit j.
func (s *State) S(j int) {
	s.checkQubit(j)
	H := s.colsWhereOne(j)
	s.q.FlipSubmatrix(H)
	z := s.b[j]
	for _, h := range H {
		s.r1[h] ^= s.r0[h] ^ z
		s.r0[h] ^= 1
	}
}

// Sdg applies the inverse phase (S-dagger) gate to qubit j.
func (s *State) Sdg(j int) {
	s.checkQubit(j)
	H := s.colsWhereOne(j)
	s.q.FlipSubmatrix(H)
	z := s.b[j]
	for _, h := range H {
		s.r0[h] ^= 1
		s.r1[h] ^= s.r0[h] ^ z
	}
}

// CX applies a controlled-X (CNOT) gate with control j and target k.
func (s *State) CX(j, k int) {
	s.checkQubit(j)
	s.checkQubit(k)
	s.checkDistinct(j, k)

	s.a.AddRow(k, j, s.r)
	s.b[k] ^= s.b[j]
	if c, ok := s.p.Inv(k); ok {
		s.reselectPrincipalRow(c, nil)
	}
}

// CZ applies a controlled-Z gate between qubits j and k (symmetric in j, k).
func (s *State) CZ(j, k int) {
	s.checkQubit(j)
	s.checkQubit(k)
	s.checkDistinct(j, k)

	Hj := s.colsWhereOne(j)
	Hk := s.colsWhereOne(k)
	s.q.FlipSubmatrixPair(Hj, Hk)

	Hjk := s.colsWhereOne2(j, k)
	for _, h := range Hjk {
		s.r1[h] ^= 1
	}
	zj, zk := s.b[j], s.b[k]
	for _, h := range Hj {
		s.r1[h] ^= zk
	}
	for _, h := range Hk {
		s.r1[h] ^= zj
	}
}

// H applies a Hadamard gate to qubit j.
func (s *State) H(j int) {
	s.checkQubit(j)
	c := s.principate(j)
	H := s.colsWhereOne(j)
	s.newPrincipalColumn(j, 0, int(s.b[j]), c, H)
}

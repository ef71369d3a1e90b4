package gf

// AddTable returns the Cayley table of addition over the nonzero
// elements: cell [i][j] holds a^i + a^j.
func (f *Field) AddTable() [][]Element {
	elts := f.Elements()
	table := make([][]Element, len(elts))
	for i, a := range elts {
		row := make([]Element, len(elts))
		for j, b := range elts {
			row[j] = a.add(b)
		}
		table[i] = row
	}
	return table
}

// MulTable returns the Cayley table of multiplication over the nonzero
// elements: cell [i][j] holds a^i * a^j.
func (f *Field) MulTable() [][]Element {
	elts := f.Elements()
	mod := f.q - 1
	table := make([][]Element, len(elts))
	for i := range elts {
		row := make([]Element, len(elts))
		for j := range elts {
			row[j] = Element{field: f, exp: (i + j) % mod}
		}
		table[i] = row
	}
	return table
}

package cryptography

// AlphabetSize is the number of letters a shift rotates through.
const AlphabetSize = 26

// ShiftMap maps every ASCII letter to the letter shift positions further
// down the alphabet. It is a plain value: copies never share state. The zero
// value is the identity map (shift 0).
type ShiftMap struct {
	shift int
}

// NormalizeShift folds any integer into [0, AlphabetSize).
func NormalizeShift(shift int) int {
	return ((shift % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// InverseShift returns the shift that undoes shift.
func InverseShift(shift int) int {
	return (AlphabetSize - NormalizeShift(shift)) % AlphabetSize
}

// BuildShiftMap creates the mapping for shift. Out of range values are
// normalized rather than rejected.
func BuildShiftMap(shift int) ShiftMap {
	return ShiftMap{shift: NormalizeShift(shift)}
}

func (m ShiftMap) Shift() int {
	return m.shift
}

func (m ShiftMap) rotate(base, offset int) int {
	return base + (offset+m.shift)%AlphabetSize
}

// Lookup returns the substitute for char and whether char is an ASCII letter.
func (m ShiftMap) Lookup(char rune) (rune, bool) {
	if char >= 'a' && char <= 'z' {
		return rune(m.rotate('a', int(char-'a'))), true
	}
	if char >= 'A' && char <= 'Z' {
		return rune(m.rotate('A', int(char-'A'))), true
	}
	return char, false
}

// Apply substitutes every ASCII letter in text. Every other byte, including
// multi-byte UTF-8 sequences and invalid UTF-8, is copied unchanged, so the
// output has the same length as text.
func (m ShiftMap) Apply(text string) string {
	shifted := []byte(text)
	for i, b := range shifted {
		switch {
		case b >= 'a' && b <= 'z':
			shifted[i] = byte(m.rotate('a', int(b-'a')))
		case b >= 'A' && b <= 'Z':
			shifted[i] = byte(m.rotate('A', int(b-'A')))
		}
	}
	return string(shifted)
}

// Entries returns a freshly allocated copy of the mapping.
func (m ShiftMap) Entries() map[rune]rune {
	entries := make(map[rune]rune, 2*AlphabetSize)
	for i := 0; i < AlphabetSize; i++ {
		entries['a'+rune(i)] = rune(m.rotate('a', i))
		entries['A'+rune(i)] = rune(m.rotate('A', i))
	}
	return entries
}

// ApplyShift encrypts text with the given shift.
func ApplyShift(text string, shift int) string {
	return BuildShiftMap(shift).Apply(text)
}

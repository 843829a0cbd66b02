package hexconv

const invalid = 0xFF

// Halfbyte maps a hex digit to its value. Any other char maps to 0xFF.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = invalid
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}()

// Parse returns the value of a hex digit and whether it is one at all.
func Parse(char byte) (value byte, ok bool) {
	value = Halfbyte[char]
	return value, value != invalid
}

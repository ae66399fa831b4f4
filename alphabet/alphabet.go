// Package alphabet maps $RANDOM outputs to password characters the way
// the classic `${chars:RANDOM%${#chars}:1}` shell idiom does.
package alphabet

import "strings"

// Table is the symbol set, indexed by output modulo its length
const Table = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Size is the number of symbols in Table
const Size = len(Table)

var index [128]int8

func init() {
	for i := range index {
		index[i] = -1
	}
	for i := 0; i < Size; i++ {
		index[Table[i]] = int8(i)
	}
}

// Encode returns the character an output selects.
func Encode(output uint16) byte {
	return Table[int(output)%Size]
}

// EncodeAll encodes outputs in order.
func EncodeAll(outputs []uint16) string {
	var b strings.Builder
	b.Grow(len(outputs))
	for _, o := range outputs {
		b.WriteByte(Encode(o))
	}
	return b.String()
}

// Index returns the position of c in Table.
func Index(c rune) (int, bool) {
	if c < 0 || int(c) >= len(index) || index[c] < 0 {
		return 0, false
	}
	return int(index[c]), true
}

// Indices resolves every character of s, failing on the first one outside
// Table.
func Indices(s string) ([]int, bool) {
	out := make([]int, 0, len(s))
	for _, c := range s {
		i, ok := Index(c)
		if !ok {
			return nil, false
		}
		out = append(out, i)
	}
	return out, true
}

// Package itoa converts integers to ASCII digits in base 2, 10, or 16
// without allocating.
package itoa

// MaxLen is the longest output of any conversion: 64 binary digits plus a
// sign.
const MaxLen = 65

// Buffer is the fixed output area a conversion writes into.
type Buffer [MaxLen]byte

const digits = "0123456789ABCDEF"

// Int writes the digits of v in the given base into b and returns the
// written portion. Negative values carry a leading '-' in every base.
func Int(b *Buffer, v int64, base int) []byte {
	if v >= 0 {
		return Uint(b, uint64(v), base)
	}
	// -v overflows for MinInt64; the unsigned negation does not.
	out := Uint(b, -uint64(v), base)
	i := MaxLen - len(out) - 1
	b[i] = '-'
	return b[i:]
}

// Uint writes the digits of v in the given base into b and returns the
// written portion. Digits above 9 are uppercase. It panics for bases other
// than 2, 10 and 16.
func Uint(b *Buffer, v uint64, base int) []byte {
	checkBase(base)
	u := uint64(base)
	i := MaxLen
	for {
		i--
		b[i] = digits[v%u]
		v /= u
		if v == 0 {
			break
		}
	}
	return b[i:]
}

func checkBase(base int) {
	switch base {
	case 2, 10, 16:
	default:
		panic("itoa: unsupported base " + string(Int(new(Buffer), int64(base), 10)))
	}
}

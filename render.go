package uprint

import "github.com/bjaus/uprint/internal/itoa"

// Renderer writes the text form of a value to a transport. It is the only
// interface an argument needs; implement it on any type to make that type
// printable.
type Renderer interface {
	Render(t Transport)
}

// Str renders verbatim, without quoting or escaping.
type Str string

func (s Str) Render(t Transport) { t.PutString(string(s)) }

// Int renders in base 10 with a leading '-' when negative.
type Int int

func (i Int) Render(t Transport) {
	var b itoa.Buffer
	putBytes(t, itoa.Int(&b, int64(i), 10))
}

// Uint32 renders in base 10 through the unsigned conversion.
type Uint32 uint32

func (u Uint32) Render(t Transport) {
	var b itoa.Buffer
	putBytes(t, itoa.Uint(&b, uint64(u), 10))
}

// Bool renders as "true" or "false".
type Bool bool

func (v Bool) Render(t Transport) {
	if v {
		t.PutString("true")
	} else {
		t.PutString("false")
	}
}

// Char renders as a single byte, not as its numeric code.
type Char byte

func (c Char) Render(t Transport) { t.PutChar(byte(c)) }

// Hex renders as uppercase hexadecimal with no leading zeros. Converting a
// negative signed variable yields its 32-bit two's complement:
//
//	var v int32 = -1
//	uprint.Hex(v) // FFFFFFFF
type Hex uint32

func (h Hex) Render(t Transport) {
	var b itoa.Buffer
	putBytes(t, itoa.Uint(&b, uint64(h), 16))
}

// Binary renders in base 2 with leading zero bits stripped.
type Binary uint32

func (v Binary) Render(t Transport) {
	var b itoa.Buffer
	putBytes(t, itoa.Uint(&b, uint64(v), 2))
}

// Units renders Value immediately followed by Label. The pair is a single
// argument: its own spacing applies outside, never between the two parts.
type Units struct {
	Value Renderer
	Label Str
}

// UnitsOf returns a [Units] for v and label.
//
//	uprint.Sprint(uprint.Str("Current:"), uprint.UnitsOf(uprint.Int(5), "mA")) // "Current: 5mA\n"
func UnitsOf(v Renderer, label string) Units {
	return Units{Value: v, Label: Str(label)}
}

func (u Units) Render(t Transport) {
	if u.Value != nil {
		u.Value.Render(t)
	}
	u.Label.Render(t)
}

func putBytes(t Transport, p []byte) {
	for _, c := range p {
		t.PutChar(c)
	}
}

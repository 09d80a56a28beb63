package uprint

// Spacing controls whether an argument takes part in automatic space
// insertion.
type Spacing int

const (
	SpacingAuto Spacing = iota // joined to spaceable neighbours by one space
	SpacingNone                // never spaced on either side
)

// String returns the spacing name.
func (s Spacing) String() string {
	switch s {
	case SpacingAuto:
		return "auto"
	case SpacingNone:
		return "none"
	default:
		return "unknown"
	}
}

// Spacer is an optional interface a [Renderer] implements to choose its own
// spacing. Arguments without it are [SpacingAuto].
type Spacer interface {
	Spacing() Spacing
}

// SpacingOf reports the spacing of r.
func SpacingOf(r Renderer) Spacing {
	if s, ok := r.(Spacer); ok {
		return s.Spacing()
	}
	return SpacingAuto
}

// Token pairs a value with a spacing tag. The zero Token renders nothing and
// is spaceable.
type Token struct {
	value Renderer
	tag   Spacing
}

// Unspaced wraps v so no space is inserted before or after it.
//
//	uprint.Print(t, uprint.Str("["), uprint.Unspaced(uprint.Int(1020)), uprint.Str("]")) // [1020]
func Unspaced(v Renderer) Token {
	return Token{value: v, tag: SpacingNone}
}

// Stock unspaced tokens. They are fixed values shared by every caller and
// must never be reassigned; wrap a different value with [Unspaced] instead.
// Token fields are unexported, so the values themselves cannot be altered.
var (
	Nospace = Unspaced(Str(""))   // suppresses spacing, contributes no text
	Comma   = Unspaced(Str(", ")) // carries its own trailing space
)

// Value returns the wrapped renderer.
func (t Token) Value() Renderer { return t.value }

// Spacing returns the token's tag.
func (t Token) Spacing() Spacing { return t.tag }

// Render renders the wrapped value.
func (t Token) Render(tr Transport) {
	if t.value != nil {
		t.value.Render(tr)
	}
}

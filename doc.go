// Package uprint prints space-separated diagnostic lines over byte-oriented
// transports such as a microcontroller UART.
//
// A call renders its arguments left to right, joins neighbours with a single
// space, and ends the line with '\n':
//
//	uprint.Print(uart, uprint.Str("Values:"), uprint.Int(10), uprint.Int(20)) // Values: 10 20
//
// The package never allocates on the rendering path and never parses a
// format string. Every decision is made from the static types of the
// arguments.
//
// # Renderers
//
// Every argument implements [Renderer]. A value whose type has no Render
// method does not compile as an argument. Built-in renderers are named types,
// so a Go conversion doubles as the constructor:
//
//   - [Str] — verbatim text
//   - [Int] — signed decimal
//   - [Uint32] — unsigned decimal
//   - [Bool] — "true" or "false"
//   - [Char] — one byte
//   - [Hex] — uppercase hexadecimal, no leading zeros
//   - [Binary] — base 2, no leading zeros
//   - [Units] — a value and its label with nothing between them
//
// Add a renderer for your own type by giving it a Render method:
//
//	type Celsius float32
//
//	func (c Celsius) Render(t uprint.Transport) {
//		uprint.Int(c).Render(t)
//		t.PutString("C")
//	}
//
// # Spacing
//
// Arguments are [SpacingAuto] by default. A space is written between two
// arguments only when both are spaceable. Wrap an argument with [Unspaced]
// to glue it to both neighbours:
//
//	uprint.Sprint(uprint.Str("["), uprint.Unspaced(uprint.Int(304)), uprint.Str("]")) // "[304]\n"
//
// [Nospace] contributes no text and only suppresses spacing. [Comma] writes
// ", " and suppresses the automatic space before it:
//
//	uprint.Sprint(uprint.Str("Foo"), uprint.Comma, uprint.Str("Bar")) // "Foo, Bar\n"
//
// A type may choose its own spacing by implementing [Spacer].
//
// # Transports
//
// [Print] writes to a [Transport], which accepts single bytes and strings
// and never reports failure. [CharFunc] builds one from a byte primitive,
// [Buffer] collects output in memory, and [Writer] adapts an [io.Writer] and
// keeps its first error. [Sprint] and [Fprint] wrap the last two.
//
// # Concurrency
//
// The package functions hold no state. When several goroutines share one
// transport, print through a [Logger] so that each line is written as a
// unit.
package uprint

package uprint

import "io"

// Print renders args to t as one line. Adjacent arguments are separated by a
// single space only when both are [SpacingAuto]; the line always ends with
// '\n' and never with a space.
func Print(t Transport, args ...Renderer) {
	needSpace := false
	for _, arg := range args {
		needSpace = printArg(t, arg, needSpace)
	}
	t.PutChar('\n')
}

// printArg renders one argument and reports whether the next one may be
// preceded by a space.
func printArg(t Transport, arg Renderer, needSpace bool) bool {
	spaced := SpacingOf(arg) == SpacingAuto
	if needSpace && spaced {
		t.PutChar(' ')
	}
	arg.Render(t)
	return spaced
}

// Sprint renders args as [Print] does and returns the line.
func Sprint(args ...Renderer) string {
	var buf Buffer
	Print(&buf, args...)
	return buf.String()
}

// Fprint renders args to w as [Print] does. It returns the first write error;
// bytes written before the failure are not rolled back.
func Fprint(w io.Writer, args ...Renderer) error {
	tw := NewWriter(w)
	Print(tw, args...)
	return tw.Err()
}

package uprint

import "iter"

// PrintSeq renders the arguments yielded by seq as one line, with the same
// spacing as [Print]. Each argument is written as soon as it is yielded.
func PrintSeq(t Transport, seq iter.Seq[Renderer]) {
	needSpace := false
	for arg := range seq {
		needSpace = printArg(t, arg, needSpace)
	}
	t.PutChar('\n')
}

// PrintChan renders every argument received from ch as one line. The line
// is terminated once ch is closed.
func PrintChan(t Transport, ch <-chan Renderer) {
	PrintSeq(t, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

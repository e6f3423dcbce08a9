package automaton

// grow extends s to at least size elements, filling new slots with fill.
func grow[T any](s []T, size int, fill T) []T {
	for len(s) < size {
		s = append(s, fill)
	}
	return s
}

package layer

// Stack is two layers chained together: applying it applies inner first
// and then wraps the result with outer. Grouping stacks differently never
// changes observable call behavior, only the static nesting.
type Stack[S, T, U any] struct {
	inner Layer[S, T]
	outer Layer[T, U]
}

// NewStack chains inner and outer.
func NewStack[S, T, U any](inner Layer[S, T], outer Layer[T, U]) Stack[S, T, U] {
	return Stack[S, T, U]{inner: inner, outer: outer}
}

func (s Stack[S, T, U]) Layer(svc S) U {
	return s.outer.Layer(s.inner.Layer(svc))
}

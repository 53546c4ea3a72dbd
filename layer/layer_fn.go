package layer

// Fn adapts a plain wrapping function into a Layer, for cases where a
// dedicated layer type would be boilerplate.
type Fn[S, T any] func(inner S) T

func (f Fn[S, T]) Layer(inner S) T {
	return f(inner)
}

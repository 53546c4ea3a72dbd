package layer

// Identity is the neutral layer: it returns the inner service unchanged.
type Identity[S any] struct{}

func (Identity[S]) Layer(inner S) S {
	return inner
}

// Package limit provides a token-bucket admission layer.
package limit

import (
	"errors"

	"github.com/l-vitaly/layerkit/service"
)

// ErrLimited is returned when a call is refused by the limiter.
var ErrLimited = errors.New("rate limit exceeded")

// Allower decides whether a call may proceed. *rate.Limiter from
// golang.org/x/time/rate satisfies it.
type Allower interface {
	Allow() bool
}

// Erroring fails calls the limiter refuses instead of queueing them. The
// limiter's counters are the only shared state here and synchronize
// themselves.
type Erroring[Cx, Req, Resp any] struct {
	limiter Allower
}

// NewErroring returns an erroring rate-limit layer.
func NewErroring[Cx, Req, Resp any](limiter Allower) Erroring[Cx, Req, Resp] {
	return Erroring[Cx, Req, Resp]{limiter: limiter}
}

func (l Erroring[Cx, Req, Resp]) Layer(inner service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return service.Func[Cx, Req, Resp](func(cx Cx, req Req) (Resp, error) {
		if !l.limiter.Allow() {
			var zero Resp
			return zero, ErrLimited
		}
		return inner.Call(cx, req)
	})
}

// Package retry re-invokes failed calls, backing off between attempts.
// Retrying deliberately lives outside the composition core: it is just
// another layer built on the same contract.
package retry

import (
	"github.com/cenkalti/backoff/v4"

	"github.com/l-vitaly/layerkit/service"
)

// Layer retries failed calls up to max additional attempts, sleeping the
// backoff interval between them. The request value is reused across
// attempts, so a failed call must not have consumed it. Wrap an error in
// backoff.Permanent to stop early.
type Layer[Cx, Req, Resp any] struct {
	max     uint64
	backoff func() backoff.BackOff
}

// NewLayer returns a retrying layer. newBackOff supplies a fresh backoff
// schedule per call; nil means exponential backoff with defaults.
func NewLayer[Cx, Req, Resp any](max uint64, newBackOff func() backoff.BackOff) Layer[Cx, Req, Resp] {
	if newBackOff == nil {
		newBackOff = func() backoff.BackOff { return backoff.NewExponentialBackOff() }
	}
	return Layer[Cx, Req, Resp]{max: max, backoff: newBackOff}
}

func (l Layer[Cx, Req, Resp]) Layer(inner service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return service.Func[Cx, Req, Resp](func(cx Cx, req Req) (Resp, error) {
		var resp Resp
		operation := func() error {
			r, err := inner.Call(cx, req)
			if err != nil {
				return err
			}
			resp = r
			return nil
		}
		if err := backoff.Retry(operation, backoff.WithMaxRetries(l.backoff(), l.max)); err != nil {
			var zero Resp
			return zero, err
		}
		return resp, nil
	})
}

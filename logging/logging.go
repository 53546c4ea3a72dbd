// Package logging instruments service calls with go-kit loggers and
// metrics.
package logging

import (
	"fmt"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics"

	"github.com/l-vitaly/layerkit/service"
)

// Layer logs every call's error and elapsed time, keyed by method name.
type Layer[Cx, Req, Resp any] struct {
	logger log.Logger
}

// NewLayer returns a logging layer for the named method.
func NewLayer[Cx, Req, Resp any](logger log.Logger, method string) Layer[Cx, Req, Resp] {
	return Layer[Cx, Req, Resp]{logger: log.With(logger, "method", method)}
}

func (l Layer[Cx, Req, Resp]) Layer(inner service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return service.Func[Cx, Req, Resp](func(cx Cx, req Req) (resp Resp, err error) {
		defer func(begin time.Time) {
			l.logger.Log("error", errStr(err), "took", time.Since(begin))
		}(time.Now())
		return inner.Call(cx, req)
	})
}

// DurationLayer observes every call's duration on a histogram, labeled by
// method name and success.
type DurationLayer[Cx, Req, Resp any] struct {
	histogram metrics.Histogram
}

// NewDurationLayer returns a duration-observing layer for the named
// method.
func NewDurationLayer[Cx, Req, Resp any](histogram metrics.Histogram, method string) DurationLayer[Cx, Req, Resp] {
	return DurationLayer[Cx, Req, Resp]{histogram: histogram.With("method", method)}
}

func (l DurationLayer[Cx, Req, Resp]) Layer(inner service.Service[Cx, Req, Resp]) service.Service[Cx, Req, Resp] {
	return service.Func[Cx, Req, Resp](func(cx Cx, req Req) (resp Resp, err error) {
		defer func(begin time.Time) {
			l.histogram.With("success", fmt.Sprint(err == nil)).Observe(time.Since(begin).Seconds())
		}(time.Now())
		return inner.Call(cx, req)
	})
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

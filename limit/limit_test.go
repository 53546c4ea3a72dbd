package limit_test

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/l-vitaly/layerkit/limit"
	"github.com/l-vitaly/layerkit/service"
)

func TestErroringAllows(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Minute), 1)

	var calls int
	svc := limit.NewErroring[struct{}, int, int](limiter).
		Layer(service.Func[struct{}, int, int](func(_ struct{}, req int) (int, error) {
			calls++
			return req, nil
		}))

	resp, err := svc.Call(struct{}{}, 42)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want, have := 42, resp; want != have {
		t.Errorf("want %d, have %d", want, have)
	}

	_, err = svc.Call(struct{}{}, 42)
	if !errors.Is(err, limit.ErrLimited) {
		t.Errorf("want %v, have %v", limit.ErrLimited, err)
	}
	if want, have := 1, calls; want != have {
		t.Errorf("want %d calls, have %d", want, have)
	}
}

package logging_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/generic"

	"github.com/l-vitaly/layerkit/logging"
	"github.com/l-vitaly/layerkit/service"
)

func TestLayerLogsMethodAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	svc := logging.NewLayer[struct{}, int, int](logger, "Double").
		Layer(service.Func[struct{}, int, int](func(_ struct{}, req int) (int, error) {
			return req * 2, nil
		}))

	resp, err := svc.Call(struct{}{}, 21)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want, have := 42, resp; want != have {
		t.Errorf("want %d, have %d", want, have)
	}

	line := buf.String()
	if !strings.Contains(line, "method=Double") {
		t.Errorf("missing method in %q", line)
	}
	if !strings.Contains(line, "took=") {
		t.Errorf("missing took in %q", line)
	}
}

func TestLayerLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)

	svc := logging.NewLayer[struct{}, int, int](logger, "Fail").
		Layer(service.Func[struct{}, int, int](func(_ struct{}, _ int) (int, error) {
			return 0, errors.New("dang")
		}))

	if _, err := svc.Call(struct{}{}, 0); err == nil {
		t.Fatal("expected error")
	}
	if line := buf.String(); !strings.Contains(line, "error=dang") {
		t.Errorf("missing error in %q", line)
	}
}

func TestDurationLayerObserves(t *testing.T) {
	histogram := generic.NewHistogram("duration", 50)

	svc := logging.NewDurationLayer[struct{}, int, int](histogram, "Double").
		Layer(service.Func[struct{}, int, int](func(_ struct{}, req int) (int, error) {
			return req * 2, nil
		}))

	resp, err := svc.Call(struct{}{}, 21)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want, have := 42, resp; want != have {
		t.Errorf("want %d, have %d", want, have)
	}
	if have := histogram.Quantile(0.9); have < 0 {
		t.Errorf("expected an observation, have quantile %f", have)
	}
}

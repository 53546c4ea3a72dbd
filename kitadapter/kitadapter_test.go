package kitadapter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/kit/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l-vitaly/layerkit/kitadapter"
	"github.com/l-vitaly/layerkit/service"
)

func TestEndpoint(t *testing.T) {
	svc := service.Func[context.Context, int, int](func(_ context.Context, req int) (int, error) {
		return req * 2, nil
	})

	e := kitadapter.Endpoint[int, int](svc)
	resp, err := e(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestEndpointPropagatesErrors(t *testing.T) {
	errInner := errors.New("dang")
	svc := service.Func[context.Context, int, int](func(_ context.Context, _ int) (int, error) {
		return 0, errInner
	})

	_, err := kitadapter.Endpoint[int, int](svc)(context.Background(), 0)
	assert.True(t, errors.Is(err, errInner))
}

func TestService(t *testing.T) {
	var e endpoint.Endpoint = func(_ context.Context, request interface{}) (interface{}, error) {
		return request.(int) * 2, nil
	}

	svc := kitadapter.Service[int, int](e)
	resp, err := svc.Call(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, resp)
}

func TestServiceWith(t *testing.T) {
	type callCx struct {
		ctx context.Context
	}

	var e endpoint.Endpoint = func(ctx context.Context, request interface{}) (interface{}, error) {
		return ctx.Value(ctxKey{}), nil
	}

	svc := kitadapter.ServiceWith[*callCx, struct{}, string](e, func(cx *callCx) context.Context {
		return cx.ctx
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, "routed")
	resp, err := svc.Call(&callCx{ctx: ctx}, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "routed", resp)
}

type ctxKey struct{}

func TestRoundTrip(t *testing.T) {
	svc := service.Func[context.Context, string, string](func(_ context.Context, req string) (string, error) {
		return req + "!", nil
	})

	round := kitadapter.Service[string, string](kitadapter.Endpoint[string, string](svc))
	resp, err := round.Call(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello!", resp)
}

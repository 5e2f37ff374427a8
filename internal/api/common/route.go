package common

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

type RouteCreationContext struct {
	API huma.API
}

// AddHumaRoute registers a handler whose error is a huma.StatusError. A nil
// StatusError is turned into a nil error before it reaches huma.
func AddHumaRoute[I, O any](rctx RouteCreationContext, handler func(context.Context, *I) (*O, huma.StatusError), op huma.Operation) {
	huma.Register(rctx.API, op, func(ctx context.Context, input *I) (*O, error) {
		out, err := handler(ctx, input)
		if err != nil {
			return nil, err
		}
		return out, nil
	})
}

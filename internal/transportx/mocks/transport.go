// Package mocks contains mocks for transportx types.
package mocks

import (
	"context"

	"github.com/skillwave/sdk-go/internal/transportx"
)

// Transport allows mocking a transportx.Transport.
type Transport struct {
	MockDispatch func(ctx context.Context, req *transportx.Request) (*transportx.Response, error)
}

// Dispatch calls MockDispatch.
func (txp *Transport) Dispatch(ctx context.Context, req *transportx.Request) (*transportx.Response, error) {
	return txp.MockDispatch(ctx, req)
}

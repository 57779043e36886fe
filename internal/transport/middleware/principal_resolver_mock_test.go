package middleware

import (
	"context"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/domain"
	"github.com/chiyonofujikam/roadmap-manager-v2/internal/service/identity"
	"sync"
)

var _ principalResolver = &principalResolverMock{}

type principalResolverMock struct {
	ResolveFunc func(ctx context.Context, input identity.ResolveInput) (*domain.User, error)

	calls struct {
		Resolve []struct {
			Ctx   context.Context
			Input identity.ResolveInput
		}
	}
	lockResolve sync.RWMutex
}

func (mock *principalResolverMock) Resolve(ctx context.Context, input identity.ResolveInput) (*domain.User, error) {
	if mock.ResolveFunc == nil {
		panic("principalResolverMock.ResolveFunc: method is nil but principalResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input identity.ResolveInput
	}{Ctx: ctx, Input: input}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, input)
}

func (mock *principalResolverMock) ResolveCalls() []struct {
	Ctx   context.Context
	Input identity.ResolveInput
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

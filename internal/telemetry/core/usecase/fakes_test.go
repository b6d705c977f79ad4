package usecase_test

import (
	"context"
	"sync"

	"telemetry-gateway/internal/telemetry/core/domain"
)

// fakeVault implements SignupReaderPort and RetainedReaderPort.
type fakeVault struct {
	SignupFn   func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error)
	RetainedFn func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error)

	mu            sync.Mutex
	signupCalls   int
	retainedCalls int
	lastQuery     domain.MetricsQuery
}

func (f *fakeVault) FetchSignup(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
	f.mu.Lock()
	f.signupCalls++
	f.lastQuery = q
	f.mu.Unlock()
	if f.SignupFn != nil {
		return f.SignupFn(ctx, q)
	}
	return &domain.SignupResult{}, nil
}

func (f *fakeVault) FetchRetained(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
	f.mu.Lock()
	f.retainedCalls++
	f.lastQuery = q
	f.mu.Unlock()
	if f.RetainedFn != nil {
		return f.RetainedFn(ctx, q)
	}
	return &domain.RetainedResult{}, nil
}

type fakePublisher struct {
	FetchFn   func(ctx context.Context, q domain.PublicationsQuery) (*domain.PublicationsResult, error)
	called    bool
	lastQuery domain.PublicationsQuery
}

func (f *fakePublisher) FetchPublications(ctx context.Context, q domain.PublicationsQuery) (*domain.PublicationsResult, error) {
	f.called = true
	f.lastQuery = q
	if f.FetchFn != nil {
		return f.FetchFn(ctx, q)
	}
	return &domain.PublicationsResult{}, nil
}

func intPtr(v int) *int { return &v }

func buckets(n int) []domain.CountMetric {
	out := make([]domain.CountMetric, n)
	for i := range out {
		out[i] = domain.CountMetric{Key: string(rune('A'+i%26)) + string(rune('A'+i/26)), Count: int64(i + 1)}
	}
	return out
}

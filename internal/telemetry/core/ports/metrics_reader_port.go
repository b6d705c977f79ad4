package ports

import (
	"context"

	"telemetry-gateway/internal/telemetry/core/domain"
)

// SignupReaderPort and RetainedReaderPort are served by the vault;
// failures are reported as *domain.UpstreamError.
type SignupReaderPort interface {
	FetchSignup(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error)
}

type RetainedReaderPort interface {
	FetchRetained(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error)
}

type PublicationsReaderPort interface {
	FetchPublications(ctx context.Context, q domain.PublicationsQuery) (*domain.PublicationsResult, error)
}

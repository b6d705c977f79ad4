package usecase

import (
	"context"

	"telemetry-gateway/internal/telemetry/core/domain"
	"telemetry-gateway/internal/telemetry/core/ports"
)

// SignupPage is a signup result whose Buckets hold only the requested page
// (or the first top buckets when Pagination is nil).
type SignupPage struct {
	Signup     domain.SignupResult
	GroupBy    string
	Pagination *domain.PaginationInfo
}

type RetainedPage struct {
	Retained   domain.RetainedResult
	GroupBy    string
	Pagination *domain.PaginationInfo
}

type GetSignupUseCase struct {
	reader ports.SignupReaderPort
}

func NewGetSignupUseCase(reader ports.SignupReaderPort) *GetSignupUseCase {
	return &GetSignupUseCase{reader: reader}
}

// Execute validates the input, asks the vault for the grouped signup buckets
// and applies top-N or pagination locally.
func (uc *GetSignupUseCase) Execute(ctx context.Context, in GetMetricsInput) (*SignupPage, error) {
	q, err := in.toQuery()
	if err != nil {
		return nil, err
	}

	res, err := uc.reader.FetchSignup(ctx, q)
	if err != nil {
		return nil, err
	}

	out := &SignupPage{
		Signup:  *res,
		GroupBy: q.GroupBy,
	}
	out.Signup.Buckets, out.Pagination = shapeRecords(res.Buckets, q.Top, q.Page, q.PageSize)

	return out, nil
}

type GetRetainedUseCase struct {
	reader ports.RetainedReaderPort
}

func NewGetRetainedUseCase(reader ports.RetainedReaderPort) *GetRetainedUseCase {
	return &GetRetainedUseCase{reader: reader}
}

func (uc *GetRetainedUseCase) Execute(ctx context.Context, in GetMetricsInput) (*RetainedPage, error) {
	q, err := in.toQuery()
	if err != nil {
		return nil, err
	}

	res, err := uc.reader.FetchRetained(ctx, q)
	if err != nil {
		return nil, err
	}

	out := &RetainedPage{
		Retained: *res,
		GroupBy:  q.GroupBy,
	}
	out.Retained.Buckets, out.Pagination = shapeRecords(res.Buckets, q.Top, q.Page, q.PageSize)

	return out, nil
}

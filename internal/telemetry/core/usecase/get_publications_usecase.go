package usecase

import (
	"context"

	"telemetry-gateway/internal/telemetry/core/domain"
	"telemetry-gateway/internal/telemetry/core/ports"
)

type PublicationsPage struct {
	Publications domain.PublicationsResult
	Pagination   domain.PaginationInfo
}

type GetPublicationsUseCase struct {
	reader ports.PublicationsReaderPort
}

func NewGetPublicationsUseCase(reader ports.PublicationsReaderPort) *GetPublicationsUseCase {
	return &GetPublicationsUseCase{reader: reader}
}

func (uc *GetPublicationsUseCase) Execute(ctx context.Context, in GetPublicationsInput) (*PublicationsPage, error) {
	q, err := in.toQuery()
	if err != nil {
		return nil, err
	}

	res, err := uc.reader.FetchPublications(ctx, q)
	if err != nil {
		return nil, err
	}

	out := &PublicationsPage{Publications: *res}

	records, info := shapeRecords(res.Records, nil, q.Page, q.PageSize)
	out.Publications.Records = records
	out.Pagination = *info

	return out, nil
}

package usecase

import "telemetry-gateway/internal/telemetry/core/domain"

// shapeRecords applies top-N truncation or local pagination to an ordered
// record list. Pagination metadata is nil when top is set.
func shapeRecords[T any](records []T, top *int, page, pageSize int) ([]T, *domain.PaginationInfo) {
	if top != nil {
		n := *top
		if n > len(records) {
			n = len(records)
		}
		return records[:n:n], nil
	}

	info := domain.NewPaginationInfo(page, pageSize, len(records))
	start, end := domain.PageBounds(page, pageSize, len(records))
	return records[start:end:end], &info
}

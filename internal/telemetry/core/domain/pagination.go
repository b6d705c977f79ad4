package domain

type PaginationInfo struct {
	Page         int
	PageSize     int
	TotalPages   int
	TotalRecords int
}

// NewPaginationInfo computes total pages as ceil(totalRecords / pageSize).
func NewPaginationInfo(page, pageSize, totalRecords int) PaginationInfo {
	info := PaginationInfo{
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
	if pageSize > 0 && totalRecords > 0 {
		info.TotalPages = (totalRecords + pageSize - 1) / pageSize
	}
	return info
}

// PageBounds returns the [start, end) slice bounds of page within n records.
// A page past the end yields an empty range.
func PageBounds(page, pageSize, n int) (int, int) {
	if page < 1 || pageSize < 1 {
		return 0, 0
	}
	start := (page - 1) * pageSize
	if start >= n {
		return n, n
	}
	end := start + pageSize
	if end > n {
		end = n
	}
	return start, end
}

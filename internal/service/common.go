package service

import "github.com/noah-isme/tutor-booking-api/internal/models"

// paginate slices items for the requested page and returns the
// accompanying pagination metadata.
func paginate[T any](items []T, page, pageSize int) ([]T, *models.Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	pagination := &models.Pagination{Page: page, PageSize: pageSize, TotalCount: len(items)}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, pagination
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pagination
}

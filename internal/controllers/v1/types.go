package v1

import (
	bt_uuid "github.com/billtrail/backend/internal/uuid"
)

type URIID struct {
	ID bt_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int  `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int  `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total" example:"827"` // The total number of resources matching the query
}

// defaultLimit is the number of resources returned when no limit is set.
const defaultLimit = 50

// paginate returns the page of items selected by offset and limit. A
// negative limit returns all items after the offset.
func paginate[T any](items []T, offset uint, limit int) ([]T, Pagination) {
	total := len(items)

	start := total
	if offset < uint(total) {
		start = int(offset)
	}

	end := total
	if limit >= 0 {
		end = start + min(limit, total-start)
	}

	page := items[start:end]
	return page, Pagination{
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}

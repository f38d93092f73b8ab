package utils

import "gorm.io/gorm"

type PaginatedResult struct {
	NumPages    uint
	CurrentPage uint
	NextPage    uint
}

// Scope applies the query's limit and offset. Ordering is left to the
// caller's Filterable, which already knows the default sort.
func (q Query) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset).Limit(q.Limit)
	}
}

// Result computes the pagination summary for a total row count.
func (q Query) Result(total int64) *PaginatedResult {
	if q.Limit <= 0 {
		return &PaginatedResult{NumPages: 1}
	}

	numPages := uint((total + int64(q.Limit) - 1) / int64(q.Limit))

	currentPage := uint(q.Offset / q.Limit)

	nextPage := currentPage

	if currentPage+1 < numPages {
		nextPage = currentPage + 1
	}

	return &PaginatedResult{
		NumPages:    numPages,
		CurrentPage: currentPage,
		NextPage:    nextPage,
	}
}

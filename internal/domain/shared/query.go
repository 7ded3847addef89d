package shared

import "strings"

// QueryOptions carries the client-supplied list parameters: 1-based page,
// page size, optional sort column and direction, optional search term.
// A nil *QueryOptions means "no paging at all": return every record.
type QueryOptions struct {
	Page       int
	PageSize   int
	SortColumn string
	SortOrder  string
	Search     string
}

// Descending reports whether the sort direction reverses the order.
// Only "desc" (case-insensitive) does; anything else is ascending.
func (o *QueryOptions) Descending() bool {
	return o != nil && strings.EqualFold(o.SortOrder, "desc")
}

// Offset returns the number of records to skip for the requested page.
func (o *QueryOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// HasSearch reports whether a non-blank search term was supplied.
func (o *QueryOptions) HasSearch() bool {
	return o != nil && strings.TrimSpace(o.Search) != ""
}

// PagedResult is the uniform envelope returned by every list operation.
// TotalCount reflects the filtered set before pagination.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResult builds the envelope, deriving TotalPages as
// ceil(totalCount / pageSize).
func NewPagedResult[T any](items []T, totalCount int64, page, pageSize int) PagedResult[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int(totalCount) / pageSize
		if int(totalCount)%pageSize > 0 {
			totalPages++
		}
	}
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// AllOf wraps an unpaged collection in the envelope: a single page whose
// size equals the total count.
func AllOf[T any](items []T) PagedResult[T] {
	return NewPagedResult(items, int64(len(items)), 1, len(items))
}

// SortMap is an entity's closed mapping from client-facing sort-column
// names to order expressions on the underlying store. Keys are stored
// lowercase; lookups are case-insensitive. Unknown or empty names resolve
// to Default, so adding a sortable column is a one-line table edit.
type SortMap struct {
	Columns map[string]string
	Default string
}

// Resolve returns the order expression for the given column name.
func (m SortMap) Resolve(column string) string {
	if expr, ok := m.Columns[strings.ToLower(strings.TrimSpace(column))]; ok {
		return expr
	}
	return m.Default
}

// OrderClause returns the full order expression including direction.
func (m SortMap) OrderClause(column, order string) string {
	expr := m.Resolve(column)
	if strings.EqualFold(order, "desc") {
		return expr + " DESC"
	}
	return expr + " ASC"
}

package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/shared"
)

// ScopeIf applies the given query scope only when condition holds, so
// callers can chain optional filters without branching at every call site.
func ScopeIf(condition bool, scope func(*gorm.DB) *gorm.DB) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !condition {
			return db
		}
		return scope(db)
	}
}

// WhereIf adds a plain WHERE clause only when condition holds.
func WhereIf(condition bool, query string, args ...interface{}) func(*gorm.DB) *gorm.DB {
	return ScopeIf(condition, func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	})
}

// FindPaged runs the composed query with counting, sorting and pagination.
//
// The total count is taken before pagination so callers always see the full
// match count even when the requested page is out of range. Nil options
// return every matching row in one page sized to the result. Preloads are
// association names passed through to GORM.
func FindPaged[T any](ctx context.Context, db *gorm.DB, sortMap shared.SortMap, opts *shared.QueryOptions, preloads []string, scopes ...func(*gorm.DB) *gorm.DB) (shared.PagedResult[T], error) {
	var model T
	query := db.WithContext(ctx).Model(&model).Scopes(scopes...)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return shared.PagedResult[T]{}, err
	}

	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var items []T
	if opts == nil || opts.PageSize < 1 {
		if err := query.Order(sortMap.OrderClause("", "")).Find(&items).Error; err != nil {
			return shared.PagedResult[T]{}, err
		}
		return shared.AllOf(items), nil
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	if err := query.
		Order(sortMap.OrderClause(opts.SortColumn, opts.SortOrder)).
		Offset((page - 1) * opts.PageSize).
		Limit(opts.PageSize).
		Find(&items).Error; err != nil {
		return shared.PagedResult[T]{}, err
	}

	return shared.NewPagedResult(items, totalCount, page, opts.PageSize), nil
}

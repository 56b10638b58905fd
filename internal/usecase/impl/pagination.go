package impl

import (
	"math"
	"strings"

	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/usecase"
)

// buildListQuery validates the listing input and resolves pagination defaults.
func buildListQuery(input usecase.ListBooksInput) (entity.BookListQuery, error) {
	fields := map[string]string{}

	sort := input.Sort
	switch sort {
	case "":
		sort = entity.BookSortTitleAsc
	case entity.BookSortTitleAsc, entity.BookSortTitleDesc:
	default:
		fields["sort"] = "must be one of asc, desc"
	}

	if input.MinPrice != nil && input.MaxPrice != nil && *input.MinPrice > *input.MaxPrice {
		fields["minPrice"] = "must not exceed maxPrice"
	}

	query := entity.BookListQuery{
		Filter: entity.BookFilter{
			Search:     strings.TrimSpace(input.Search),
			MinPrice:   input.MinPrice,
			MaxPrice:   input.MaxPrice,
			CategoryID: input.CategoryID,
			OwnerID:    input.OwnerID,
		},
		Sort: sort,
	}

	page, limit := 1, usecase.DefaultPageLimit
	if input.Page != nil {
		page = *input.Page
	}
	if input.Limit != nil {
		limit = *input.Limit
	}
	if page < 1 {
		fields["page"] = "must be at least 1"
	}
	if limit < 1 || limit > usecase.MaxPageLimit {
		fields["limit"] = "must be between 1 and 100"
	} else if page-1 > math.MaxInt/limit {
		fields["page"] = "is too large"
	}

	// Unpaginated listings still get the first page; Paginate only controls
	// whether the page window is reported back.
	query.Paginate = input.Page != nil || input.Limit != nil
	query.Limit = limit
	query.Offset = (page - 1) * limit

	if len(fields) > 0 {
		return entity.BookListQuery{}, domainerrors.NewValidationError(fields)
	}

	return query, nil
}

// totalPages is ceil(total/limit).
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}

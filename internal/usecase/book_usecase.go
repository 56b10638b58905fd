package usecase

import (
	"context"

	"bookshop/internal/domain/entity"
	"bookshop/internal/domain/service"
)

const (
	DefaultPageLimit = 25
	MaxPageLimit     = 100
)

// --- Input DTOs ---

// CreateBookInput defines the data required to list a new book.
type CreateBookInput struct {
	Title       string
	Description *string
	Price       int64
	CategoryID  int64
	AuthorID    int64
	TagIDs      []int64
	Thumbnail   *service.ThumbnailUpload
}

// EditBookInput carries a partial edit. Nil fields are left untouched;
// TagIDs nil keeps the current tags and an empty non-nil slice clears them.
type EditBookInput struct {
	Title       *string
	Description *string
	Price       *int64
	CategoryID  *int64
	AuthorID    *int64
	TagIDs      []int64
	Thumbnail   *service.ThumbnailUpload
}

// IsEmpty reports whether the edit changes nothing.
func (in EditBookInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Price == nil &&
		in.CategoryID == nil && in.AuthorID == nil && in.TagIDs == nil && in.Thumbnail == nil
}

// ListBooksInput holds the listing filters. Page and Limit default to 1 and
// DefaultPageLimit; supplying either adds the page window to the result.
type ListBooksInput struct {
	Search     string
	MinPrice   *int64
	MaxPrice   *int64
	CategoryID *int64
	OwnerID    *int64
	Sort       entity.BookSort
	Page       *int
	Limit      *int
}

// --- Output DTOs ---

// BookPage is a listing result. Page, Limit and TotalPages are set only for
// paginated listings.
type BookPage struct {
	Items      []*entity.BookDetails
	TotalCount int64
	Paginated  bool
	Page       int
	Limit      int
	TotalPages int
}

// BookUsecase defines the interface for book-related business operations.
type BookUsecase interface {
	Create(ctx context.Context, ownerID int64, input CreateBookInput) (*entity.BookDetails, error)
	Edit(ctx context.Context, callerID, bookID int64, input EditBookInput) (*entity.BookDetails, error)
	Delete(ctx context.Context, callerID, bookID int64) error
	Get(ctx context.Context, bookID int64) (*entity.BookDetails, error)
	List(ctx context.Context, input ListBooksInput) (*BookPage, error)
	ListMine(ctx context.Context, callerID int64, input ListBooksInput) (*BookPage, error)
}

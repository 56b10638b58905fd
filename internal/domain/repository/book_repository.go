package repository

import (
	"context"
	"errors"

	"bookshop/internal/domain/entity"
)

var (
	// ErrBookNotFound is returned when a book is not found.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookReferenceNotFound is returned when a write points at a missing category, author or owner.
	ErrBookReferenceNotFound = errors.New("book reference not found")

	// ErrInvalidBook is returned when a write violates a row check such as a positive price.
	ErrInvalidBook = errors.New("invalid book")
)

// BookRepository persists books and their tag links.
type BookRepository interface {
	// Create inserts the book row and fills its id and timestamps.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID returns the plain book row.
	FindByID(ctx context.Context, id int64) (*entity.Book, error)

	// FindDetailsByID returns the book joined with category, author and tags.
	FindDetailsByID(ctx context.Context, id int64) (*entity.BookDetails, error)

	// Update applies the column changes of update and bumps updated_at.
	// Tag changes are applied separately through ReplaceTags.
	Update(ctx context.Context, id int64, update entity.BookUpdate) error

	// Delete removes the row. Tag links cascade.
	Delete(ctx context.Context, id int64) error

	// AttachTags links the book to each tag id.
	AttachTags(ctx context.Context, bookID int64, tagIDs []int64) error

	// ReplaceTags removes every link of the book and inserts the given set.
	ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error

	// List returns the aggregated books matching the query.
	List(ctx context.Context, query entity.BookListQuery) ([]*entity.BookDetails, error)

	// Count returns how many books match the filter, ignoring any page window.
	Count(ctx context.Context, filter entity.BookFilter) (int64, error)
}

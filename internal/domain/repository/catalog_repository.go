package repository

import (
	"context"
	"errors"

	"bookshop/internal/domain/entity"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrTagNotFound      = errors.New("tag not found")

	// ErrCatalogConflict is returned when an insert hits a unique constraint.
	ErrCatalogConflict = errors.New("catalog entry already exists")
)

// CatalogRepository persists categories, authors and tags.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	FindCategoryByID(ctx context.Context, id int64) (*entity.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	CreateAuthor(ctx context.Context, author *entity.Author) error
	FindAuthorByID(ctx context.Context, id int64) (*entity.Author, error)
	FindAuthorByName(ctx context.Context, name string) (*entity.Author, error)
	ListAuthors(ctx context.Context) ([]*entity.Author, error)

	CreateTag(ctx context.Context, tag *entity.Tag) error
	FindTagByName(ctx context.Context, name string) (*entity.Tag, error)
	ListTags(ctx context.Context) ([]*entity.Tag, error)

	// CountTags returns how many of the distinct ids exist.
	CountTags(ctx context.Context, ids []int64) (int64, error)
}

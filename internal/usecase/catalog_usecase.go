package usecase

import (
	"context"

	"bookshop/internal/domain/entity"
)

type CreateCategoryInput struct {
	Name        string
	Description *string
}

type CreateAuthorInput struct {
	Name string
	Bio  *string
}

// CatalogUsecase manages the reference data books point at.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	CreateAuthor(ctx context.Context, input CreateAuthorInput) (*entity.Author, error)
	ListAuthors(ctx context.Context) ([]*entity.Author, error)

	CreateTag(ctx context.Context, name string) (*entity.Tag, error)
	ListTags(ctx context.Context) ([]*entity.Tag, error)
}

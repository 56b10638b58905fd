package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookshop/internal/delivery/context"
	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/domain/repository"
	"bookshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{Name: input.Name, Description: input.Description}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		_, err := catalogRepo.FindCategoryByName(ctx, input.Name)
		if err == nil {
			return domainerrors.ErrCategoryAlreadyExists.WrapMessage("create category")
		}
		if !errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(err, "failed to check category name")
		}

		return translateCatalogInsert(catalogRepo.CreateCategory(ctx, category), domainerrors.ErrCategoryAlreadyExists)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID))

	return category, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateAuthor(ctx context.Context, input usecase.CreateAuthorInput) (*entity.Author, error) {
	author := &entity.Author{Name: input.Name, Bio: input.Bio}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		_, err := catalogRepo.FindAuthorByName(ctx, input.Name)
		if err == nil {
			return domainerrors.ErrAuthorAlreadyExists.WrapMessage("create author")
		}
		if !errors.Is(err, repository.ErrAuthorNotFound) {
			return errors.Wrap(err, "failed to check author name")
		}

		return translateCatalogInsert(catalogRepo.CreateAuthor(ctx, author), domainerrors.ErrAuthorAlreadyExists)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	srv.log(ctx).Info("Author created", slog.Int64("authorID", author.ID))

	return author, nil
}

func (srv *catalogService) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := srv.catalogRepo.ListAuthors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	return authors, nil
}

func (srv *catalogService) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	tag := &entity.Tag{Name: name}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		_, err := catalogRepo.FindTagByName(ctx, name)
		if err == nil {
			return domainerrors.ErrTagAlreadyExists.WrapMessage("create tag")
		}
		if !errors.Is(err, repository.ErrTagNotFound) {
			return errors.Wrap(err, "failed to check tag name")
		}

		return translateCatalogInsert(catalogRepo.CreateTag(ctx, tag), domainerrors.ErrTagAlreadyExists)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create tag")
	}

	srv.log(ctx).Info("Tag created", slog.Int64("tagID", tag.ID))

	return tag, nil
}

func (srv *catalogService) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := srv.catalogRepo.ListTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

// translateCatalogInsert maps a unique-violation race to the same conflict as the name check.
func translateCatalogInsert(err error, conflict *domainerrors.BaseError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrCatalogConflict):
		return conflict.WrapMessage("created concurrently")
	default:
		return errors.Wrap(err, "failed to insert catalog entry")
	}
}

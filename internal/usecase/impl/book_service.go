package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "bookshop/internal/delivery/context"
	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/domain/repository"
	"bookshop/internal/domain/service"
	"bookshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const maxTitleLength = 250

type bookService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	storage   service.ThumbnailStorage
	logger    *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	Storage   service.ThumbnailStorage
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the thumbnail first, then writes the row and tag links in one
// transaction. The file is removed again when the transaction fails.
func (srv *bookService) Create(ctx context.Context, ownerID int64, input usecase.CreateBookInput) (*entity.BookDetails, error) {
	if err := validateNewBook(input); err != nil {
		return nil, err
	}

	tagIDs := distinctIDs(input.TagIDs)

	var thumbnail *string
	if input.Thumbnail != nil {
		path, err := srv.storeThumbnail(ctx, input.Thumbnail)
		if err != nil {
			return nil, err
		}
		thumbnail = &path
	}

	book := &entity.Book{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Thumbnail:   thumbnail,
		CategoryID:  input.CategoryID,
		AuthorID:    input.AuthorID,
		OwnerID:     ownerID,
	}

	var details *entity.BookDetails
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := checkReferences(ctx, repoFactory.CatalogRepo(), &input.CategoryID, &input.AuthorID, tagIDs); err != nil {
			return err
		}

		bookRepo := repoFactory.BookRepo()
		if err := bookRepo.Create(ctx, book); err != nil {
			return translateBookWrite(err, "create book")
		}
		if len(tagIDs) > 0 {
			if err := bookRepo.AttachTags(ctx, book.ID, tagIDs); err != nil {
				return translateBookWrite(err, "attach tags")
			}
		}

		var err error
		details, err = bookRepo.FindDetailsByID(ctx, book.ID)

		return errors.Wrap(err, "failed to load created book")
	})
	if err != nil {
		if thumbnail != nil {
			removeThumbnail(ctx, srv.storage, srv.log(ctx), *thumbnail)
		}
		srv.log(ctx).Warn("Book creation failed", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created", slog.Int64("bookID", book.ID), slog.Int64("ownerID", ownerID))

	return details, nil
}

// Edit applies a partial update. A replaced thumbnail is deleted only after
// the new path is committed.
func (srv *bookService) Edit(ctx context.Context, callerID, bookID int64, input usecase.EditBookInput) (*entity.BookDetails, error) {
	if input.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsToUpdate.WrapMessage("edit book")
	}
	if err := validateBookEdit(input); err != nil {
		return nil, err
	}

	current, err := srv.ownedBook(ctx, callerID, bookID)
	if err != nil {
		return nil, err
	}

	update := entity.BookUpdate{
		Title:       trimmed(input.Title),
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		AuthorID:    input.AuthorID,
	}
	if input.TagIDs != nil {
		update.TagIDs = distinctIDs(input.TagIDs)
	}

	if input.Thumbnail != nil {
		path, err := srv.storeThumbnail(ctx, input.Thumbnail)
		if err != nil {
			return nil, err
		}
		update.Thumbnail = &path
	}

	var details *entity.BookDetails
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := checkReferences(ctx, repoFactory.CatalogRepo(), update.CategoryID, update.AuthorID, update.TagIDs); err != nil {
			return err
		}

		bookRepo := repoFactory.BookRepo()
		if err := bookRepo.Update(ctx, bookID, update); err != nil {
			return translateBookWrite(err, "update book")
		}
		if update.TagIDs != nil {
			if err := bookRepo.ReplaceTags(ctx, bookID, update.TagIDs); err != nil {
				return translateBookWrite(err, "replace tags")
			}
		}

		var err error
		details, err = bookRepo.FindDetailsByID(ctx, bookID)

		return errors.Wrap(err, "failed to load updated book")
	})
	if err != nil {
		if update.Thumbnail != nil {
			removeThumbnail(ctx, srv.storage, srv.log(ctx), *update.Thumbnail)
		}

		return nil, errors.Wrap(err, "failed to edit book")
	}

	if update.Thumbnail != nil && current.Thumbnail != nil {
		removeThumbnail(ctx, srv.storage, srv.log(ctx), *current.Thumbnail)
	}

	srv.log(ctx).Info("Book updated", slog.Int64("bookID", bookID))

	return details, nil
}

// Delete removes the caller's book. Tag links cascade in the store.
func (srv *bookService) Delete(ctx context.Context, callerID, bookID int64) error {
	current, err := srv.ownedBook(ctx, callerID, bookID)
	if err != nil {
		return err
	}

	if err := srv.bookRepo.Delete(ctx, bookID); err != nil {
		return translateBookWrite(err, "delete book")
	}

	if current.Thumbnail != nil {
		removeThumbnail(ctx, srv.storage, srv.log(ctx), *current.Thumbnail)
	}

	srv.log(ctx).Info("Book deleted", slog.Int64("bookID", bookID), slog.Int64("ownerID", callerID))

	return nil
}

func (srv *bookService) Get(ctx context.Context, bookID int64) (*entity.BookDetails, error) {
	details, err := srv.bookRepo.FindDetailsByID(ctx, bookID)
	if err != nil {
		return nil, translateBookWrite(err, "get book")
	}

	return details, nil
}

// List runs the page query and the count query concurrently.
func (srv *bookService) List(ctx context.Context, input usecase.ListBooksInput) (*usecase.BookPage, error) {
	query, err := buildListQuery(input)
	if err != nil {
		return nil, err
	}

	var (
		items []*entity.BookDetails
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = srv.bookRepo.List(gctx, query)

		return errors.Wrap(err, "failed to list books")
	})
	g.Go(func() error {
		var err error
		total, err = srv.bookRepo.Count(gctx, query.Filter)

		return errors.Wrap(err, "failed to count books")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []*entity.BookDetails{}
	}

	page := &usecase.BookPage{Items: items, TotalCount: total}
	if query.Paginate {
		page.Paginated = true
		page.Limit = query.Limit
		page.Page = query.Offset/query.Limit + 1
		page.TotalPages = totalPages(total, query.Limit)
	}

	return page, nil
}

// ListMine is List restricted to the caller's books.
func (srv *bookService) ListMine(ctx context.Context, callerID int64, input usecase.ListBooksInput) (*usecase.BookPage, error) {
	input.OwnerID = &callerID

	return srv.List(ctx, input)
}

func (srv *bookService) ownedBook(ctx context.Context, callerID, bookID int64) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, translateBookWrite(err, "find book")
	}

	if !book.IsOwnedBy(callerID) {
		srv.log(ctx).Warn("Book ownership violation", slog.Int64("bookID", bookID), slog.Int64("callerID", callerID))

		return nil, errors.Wrap(domainerrors.ErrBookOwnershipViolation, "book belongs to another user")
	}

	return book, nil
}

func (srv *bookService) storeThumbnail(ctx context.Context, upload *service.ThumbnailUpload) (string, error) {
	if err := sniffThumbnail(upload); err != nil {
		return "", err
	}

	path, err := srv.storage.Store(ctx, upload)
	if err != nil {
		srv.log(ctx).Error("Failed to store thumbnail", slog.String("filename", upload.Filename), slog.Any("error", err))

		return "", domainerrors.ErrThumbnailStoreFailed.WrapMessage("store thumbnail")
	}

	return path, nil
}

// checkReferences verifies that every referenced catalog row exists. Nil ids and
// a nil tag list are not checked.
func checkReferences(ctx context.Context, catalogRepo repository.CatalogRepository, categoryID, authorID *int64, tagIDs []int64) error {
	if categoryID != nil {
		if _, err := catalogRepo.FindCategoryByID(ctx, *categoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrCategoryNotFound, "check category")
			}

			return errors.Wrap(err, "failed to find category")
		}
	}

	if authorID != nil {
		if _, err := catalogRepo.FindAuthorByID(ctx, *authorID); err != nil {
			if errors.Is(err, repository.ErrAuthorNotFound) {
				return errors.Wrap(domainerrors.ErrAuthorNotFound, "check author")
			}

			return errors.Wrap(err, "failed to find author")
		}
	}

	if len(tagIDs) > 0 {
		found, err := catalogRepo.CountTags(ctx, tagIDs)
		if err != nil {
			return errors.Wrap(err, "failed to count tags")
		}
		if found != int64(len(tagIDs)) {
			return errors.Wrap(domainerrors.ErrTagNotFound, "check tags")
		}
	}

	return nil
}

func translateBookWrite(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrBookNotFound):
		return errors.Wrap(domainerrors.ErrBookNotFound, op)
	case errors.Is(err, repository.ErrTagNotFound):
		return errors.Wrap(domainerrors.ErrTagNotFound, op)
	case errors.Is(err, repository.ErrBookReferenceNotFound):
		return domainerrors.ErrNotFound.WrapMessage(op + ": referenced row does not exist")
	case errors.Is(err, repository.ErrInvalidBook):
		return domainerrors.ErrValidationFailed.WrapMessage(op + ": row check failed")
	default:
		return errors.Wrap(err, op)
	}
}

func validateNewBook(input usecase.CreateBookInput) error {
	fields := map[string]string{}
	validateTitle(fields, input.Title)
	if input.Price <= 0 {
		fields["price"] = "must be greater than 0"
	}
	if input.CategoryID <= 0 {
		fields["categoryId"] = "is required"
	}
	if input.AuthorID <= 0 {
		fields["authorId"] = "is required"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

func validateBookEdit(input usecase.EditBookInput) error {
	fields := map[string]string{}
	if input.Title != nil {
		validateTitle(fields, *input.Title)
	}
	if input.Price != nil && *input.Price <= 0 {
		fields["price"] = "must be greater than 0"
	}
	if input.CategoryID != nil && *input.CategoryID <= 0 {
		fields["categoryId"] = "must be a positive id"
	}
	if input.AuthorID != nil && *input.AuthorID <= 0 {
		fields["authorId"] = "must be a positive id"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}

func validateTitle(fields map[string]string, title string) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		fields["title"] = "is required"
	case utf8.RuneCountInString(title) > maxTitleLength:
		fields["title"] = "must be at most 250 characters"
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)

	return &t
}

// distinctIDs drops duplicates and keeps order. The result is never nil.
func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

package postgres

import (
	"context"
	"time"

	"bookshop/internal/domain/entity"
	"bookshop/internal/domain/repository"
	"bookshop/internal/errors"
	"bookshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository returns the GORM-backed BookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)
	if err := repo.db.WithContext(ctx).Omit("Category", "Author", "Owner").Create(bookM).Error; err != nil {
		return translateBookWriteError(err, "create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

func (repo *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bookM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrBookNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find book by id")
	}

	return toBookDomain(&bookM), nil
}

func (repo *bookRepository) FindDetailsByID(ctx context.Context, id int64) (*entity.BookDetails, error) {
	var rows []bookRow
	if err := withBookJoins(repo.db.WithContext(ctx)).Where("books.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "find book details")
	}
	if len(rows) == 0 {
		return nil, repository.ErrBookNotFound
	}

	details, err := repo.withTags(ctx, rows)
	if err != nil {
		return nil, err
	}

	return details[0], nil
}

// Update always bumps updated_at so a tag-only edit is still recorded on the row.
func (repo *bookRepository) Update(ctx context.Context, id int64, update entity.BookUpdate) error {
	changes := map[string]any{"updated_at": time.Now()}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Price != nil {
		changes["price"] = *update.Price
	}
	if update.CategoryID != nil {
		changes["category_id"] = *update.CategoryID
	}
	if update.AuthorID != nil {
		changes["author_id"] = *update.AuthorID
	}
	if update.Thumbnail != nil {
		changes["thumbnail"] = *update.Thumbnail
	}

	result := repo.db.WithContext(ctx).Model(&model.BookModel{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return translateBookWriteError(result.Error, "update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BookModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) AttachTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	ids := uniqueIDs(tagIDs)
	if len(ids) == 0 {
		return nil
	}

	links := make([]model.BookTagModel, 0, len(ids))
	for _, tagID := range ids {
		links = append(links, model.BookTagModel{BookID: bookID, TagID: tagID})
	}

	if err := repo.db.WithContext(ctx).Omit("Book", "Tag").Create(&links).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTagNotFound
		}

		return errors.Wrap(err, "attach tags")
	}

	return nil
}

func (repo *bookRepository) ReplaceTags(ctx context.Context, bookID int64, tagIDs []int64) error {
	if err := repo.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&model.BookTagModel{}).Error; err != nil {
		return errors.Wrap(err, "clear book tags")
	}

	return repo.AttachTags(ctx, bookID, tagIDs)
}

func (repo *bookRepository) List(ctx context.Context, query entity.BookListQuery) ([]*entity.BookDetails, error) {
	var rows []bookRow
	err := withBookJoins(repo.db.WithContext(ctx)).
		Scopes(bookFilterScope(query.Filter), bookOrderScope(query.Sort), bookPageScope(query)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list books")
	}

	return repo.withTags(ctx, rows)
}

func (repo *bookRepository) Count(ctx context.Context, filter entity.BookFilter) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Scopes(bookFilterScope(filter)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count books")
	}

	return count, nil
}

// withTags loads the tag links of every row in one query and aggregates them.
func (repo *bookRepository) withTags(ctx context.Context, rows []bookRow) ([]*entity.BookDetails, error) {
	if len(rows) == 0 {
		return []*entity.BookDetails{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var links []bookTagRow
	err := repo.db.WithContext(ctx).
		Table("books_to_tags").
		Select("books_to_tags.book_id, tags.id AS tag_id, tags.name AS tag_name").
		Joins("JOIN tags ON tags.id = books_to_tags.tag_id").
		Where("books_to_tags.book_id IN ?", ids).
		Order("books_to_tags.book_id").Order("tags.id").
		Scan(&links).Error
	if err != nil {
		return nil, errors.Wrap(err, "load book tags")
	}

	return assembleBookDetails(rows, groupBookTags(links)), nil
}

func translateBookWriteError(err error, op string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(repository.ErrBookReferenceNotFound, op)
	case isCheckConstraintViolation(err):
		return errors.Wrap(repository.ErrInvalidBook, op)
	default:
		return errors.Wrap(err, op)
	}
}

func toBookDomain(m *model.BookModel) *entity.Book {
	book := &entity.Book{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Thumbnail:   m.Thumbnail,
		CategoryID:  m.CategoryID,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.AuthorID != nil {
		book.AuthorID = *m.AuthorID
	}

	return book
}

func fromBookDomain(b *entity.Book) *model.BookModel {
	m := &model.BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Thumbnail:   b.Thumbnail,
		CategoryID:  b.CategoryID,
		OwnerID:     b.OwnerID,
	}
	if b.AuthorID != 0 {
		authorID := b.AuthorID
		m.AuthorID = &authorID
	}

	return m
}

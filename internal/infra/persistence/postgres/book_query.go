package postgres

import (
	"strings"
	"time"

	"bookshop/internal/domain/entity"

	"gorm.io/gorm"
)

// bookRow is one books row joined with its category and author names.
type bookRow struct {
	ID           int64
	Title        string
	Description  *string
	Price        int64
	Thumbnail    *string
	CategoryID   int64
	CategoryName *string
	AuthorID     *int64
	AuthorName   *string
	OwnerID      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// bookTagRow is one link of a book to a tag.
type bookTagRow struct {
	BookID  int64
	TagID   int64
	TagName string
}

const bookDetailsSelect = "books.id, books.title, books.description, books.price, books.thumbnail, " +
	"books.category_id, categories.name AS category_name, " +
	"books.author_id, authors.name AS author_name, " +
	"books.owner_id, books.created_at, books.updated_at"

// withBookJoins selects bookRow columns.
func withBookJoins(db *gorm.DB) *gorm.DB {
	return db.Table("books").
		Select(bookDetailsSelect).
		Joins("LEFT JOIN categories ON categories.id = books.category_id").
		Joins("LEFT JOIN authors ON authors.id = books.author_id")
}

// bookFilterScope adds one predicate per supplied filter field.
func bookFilterScope(filter entity.BookFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search := strings.TrimSpace(filter.Search); search != "" {
			db = db.Where("books.title ILIKE ? ESCAPE '\\'", "%"+escapeLike(search)+"%")
		}
		if filter.MinPrice != nil {
			db = db.Where("books.price >= ?", *filter.MinPrice)
		}
		if filter.MaxPrice != nil {
			db = db.Where("books.price <= ?", *filter.MaxPrice)
		}
		if filter.CategoryID != nil {
			db = db.Where("books.category_id = ?", *filter.CategoryID)
		}
		if filter.OwnerID != nil {
			db = db.Where("books.owner_id = ?", *filter.OwnerID)
		}

		return db
	}
}

// bookOrderScope orders by title with id as a stable tie-break.
func bookOrderScope(sort entity.BookSort) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sort == entity.BookSortTitleDesc {
			return db.Order("books.title DESC").Order("books.id DESC")
		}

		return db.Order("books.title ASC").Order("books.id ASC")
	}
}

// bookPageScope applies the page window. A zero limit leaves the query
// unbounded, which only happens for hand-built queries.
func bookPageScope(query entity.BookListQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query.Limit <= 0 {
			return db
		}

		return db.Limit(query.Limit).Offset(query.Offset)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// groupBookTags folds tag link rows into a per-book list, preserving row order.
func groupBookTags(rows []bookTagRow) map[int64][]entity.NamedRef {
	grouped := make(map[int64][]entity.NamedRef)
	for _, row := range rows {
		grouped[row.BookID] = append(grouped[row.BookID], entity.NamedRef{ID: row.TagID, Name: row.TagName})
	}

	return grouped
}

// assembleBookDetails merges joined rows with their grouped tags. Books
// without tags get an empty, non-nil slice.
func assembleBookDetails(rows []bookRow, tags map[int64][]entity.NamedRef) []*entity.BookDetails {
	out := make([]*entity.BookDetails, 0, len(rows))
	for _, row := range rows {
		details := &entity.BookDetails{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Price:       row.Price,
			Thumbnail:   row.Thumbnail,
			OwnerID:     row.OwnerID,
			Tags:        tags[row.ID],
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
		if details.Tags == nil {
			details.Tags = []entity.NamedRef{}
		}
		if row.CategoryName != nil {
			details.Category = &entity.NamedRef{ID: row.CategoryID, Name: *row.CategoryName}
		}
		if row.AuthorID != nil && row.AuthorName != nil {
			details.Author = &entity.NamedRef{ID: *row.AuthorID, Name: *row.AuthorName}
		}
		out = append(out, details)
	}

	return out
}

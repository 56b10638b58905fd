package entity

import "time"

// Book is a listing created by a user. Only the owner may change or remove it.
type Book struct {
	ID          int64
	Title       string
	Description *string
	Price       int64 // Whole currency units, always positive.
	Thumbnail   *string
	CategoryID  int64
	AuthorID    int64
	OwnerID     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID may mutate the book.
func (b *Book) IsOwnedBy(userID int64) bool {
	return b.OwnerID == userID
}

// NamedRef is the {id, name} projection of a related entity.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookDetails is the aggregated read model of a book joined with its
// category, author and tags. Tags is never nil.
type BookDetails struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Price       int64      `json:"price"`
	Thumbnail   *string    `json:"thumbnail"`
	OwnerID     int64      `json:"ownerId"`
	Category    *NamedRef  `json:"category"`
	Author      *NamedRef  `json:"author"`
	Tags        []NamedRef `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BookUpdate carries the fields of a partial edit. Nil scalar fields are left
// untouched. TagIDs nil means "leave tags alone" while a non-nil empty slice
// clears them.
type BookUpdate struct {
	Title       *string
	Description *string
	Price       *int64
	CategoryID  *int64
	AuthorID    *int64
	Thumbnail   *string
	TagIDs      []int64
}

// HasColumnChanges reports whether any column of the books row changes.
func (u BookUpdate) HasColumnChanges() bool {
	return u.Title != nil || u.Description != nil || u.Price != nil ||
		u.CategoryID != nil || u.AuthorID != nil || u.Thumbnail != nil
}

// BookSort selects the title ordering of a listing.
type BookSort string

const (
	BookSortTitleAsc  BookSort = "asc"
	BookSortTitleDesc BookSort = "desc"
)

// BookFilter composes conjunctively; nil fields do not constrain the result.
type BookFilter struct {
	Search     string
	MinPrice   *int64
	MaxPrice   *int64
	CategoryID *int64
	OwnerID    *int64
}

// BookListQuery is a filter plus ordering and an optional page window.
type BookListQuery struct {
	Filter BookFilter
	Sort   BookSort
	// Paginate reports whether the caller asked for a page. Limit and Offset
	// are always applied.
	Paginate bool
	Limit    int
	Offset   int
}

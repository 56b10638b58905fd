package entity

// Category groups books by genre or subject.
type Category struct {
	ID          int64
	Name        string
	Description *string
}

// Author is the person credited for a book.
type Author struct {
	ID   int64
	Name string
	Bio  *string
}

// Tag is a free-form label attached to books through a many-to-many link.
type Tag struct {
	ID   int64
	Name string
}

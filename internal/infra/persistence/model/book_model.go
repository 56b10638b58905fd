package model

import "time"

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(250);not null;index"`
	Description *string `gorm:"type:text"`
	Price       int64   `gorm:"not null;check:chk_books_price_positive,price > 0"`
	Thumbnail   *string `gorm:"type:varchar(512)"`
	CategoryID  int64   `gorm:"not null;index"`
	AuthorID    *int64  `gorm:"index"`
	OwnerID     int64   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Author   *AuthorModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	Owner    *UserModel     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (BookModel) TableName() string {
	return "books"
}

// BookTagModel mirrors the 'books_to_tags' join table.
type BookTagModel struct {
	BookID int64 `gorm:"primaryKey"`
	TagID  int64 `gorm:"primaryKey;index"`

	Book *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Tag  *TagModel  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (BookTagModel) TableName() string {
	return "books_to_tags"
}

// All lists the models in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&AuthorModel{},
		&TagModel{},
		&BookModel{},
		&BookTagModel{},
	}
}

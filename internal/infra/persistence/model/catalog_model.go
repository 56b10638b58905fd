package model

// CategoryModel mirrors the 'categories' table. Name uniqueness is a
// business rule checked by the service, not a storage constraint.
type CategoryModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null;index"`
	Description *string `gorm:"type:text"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// AuthorModel mirrors the 'authors' table.
type AuthorModel struct {
	ID   int64   `gorm:"primaryKey;autoIncrement"`
	Name string  `gorm:"type:varchar(100);not null;index"`
	Bio  *string `gorm:"type:text"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(30);uniqueIndex;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}

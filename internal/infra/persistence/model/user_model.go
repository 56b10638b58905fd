// Package model holds the GORM persistence models. They mirror table layouts
// and never leave the infra layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                 int64      `gorm:"primaryKey;autoIncrement"`
	Username           string     `gorm:"type:varchar(30);uniqueIndex;not null"`
	Email              string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash       string     `gorm:"type:varchar(255);not null"`
	ResetCodeHash      *string    `gorm:"type:varchar(64)"`
	ResetCodeExpiresAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

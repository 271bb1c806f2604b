// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// Username and email each carry a named unique constraint; the constraint
// name is how the repository attributes a conflict to its field.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex:users_username_key;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Bio          string    `gorm:"type:text"`
	Image        string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                   string    `gorm:"type:varchar(100);not null"`
	Email                  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Photo                  string    `gorm:"type:varchar(255);not null;default:'default.jpg'"`
	Role                   string    `gorm:"type:varchar(32);not null;default:'basic'"`
	PasswordHash           string    `gorm:"type:varchar(72);not null"`
	PasswordChangedAt      *time.Time
	PasswordResetTokenHash *string `gorm:"type:char(64);index"`
	PasswordResetExpiresAt *time.Time
	Active                 bool `gorm:"not null;default:true;index"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

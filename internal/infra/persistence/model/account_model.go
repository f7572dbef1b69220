package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 assigned by the repository, with gen_random_uuid() as the column default.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email;not null"`
	Password    string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(50);not null;default:''"`
	AccessToken *string   `gorm:"type:text;index:idx_accounts_access_token"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

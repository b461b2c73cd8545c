package model

import (
	"time"

	"github.com/google/uuid"
)

// APICredentialModel mirrors the 'api_credentials' table. Rows are managed
// by operators; the application only ever reads them.
type APICredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Provider     string    `gorm:"type:varchar(50);unique;not null"`
	APIKey       string    `gorm:"type:text"`
	ClientID     string    `gorm:"type:varchar(255)"`
	ClientSecret string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (APICredentialModel) TableName() string {
	return "api_credentials"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserTokenModel mirrors the 'user_tokens' table. The table holds both real
// provider tokens and ephemeral OAuth state rows; the provider column tells
// them apart ("sumup" vs "sumup_oauth_state"). There is deliberately no
// uniqueness on (user_id, provider) — readers order by created_at.
type UserTokenModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_user_tokens_user_provider"`
	Provider     string    `gorm:"type:varchar(50);not null;index:idx_user_tokens_user_provider"`
	AccessToken  string    `gorm:"type:text;not null;index"`
	RefreshToken string    `gorm:"type:text"`
	TokenType    string    `gorm:"type:varchar(50);default:Bearer"`
	ExpiresAt    *time.Time
	Scope        string `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserTokenModel) TableName() string {
	return "user_tokens"
}

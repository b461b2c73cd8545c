package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TransactionModel mirrors the 'transactions' table. The unique index on
// (provider, transaction_id) is what makes re-sync idempotent.
type TransactionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_transactions_provider_tx_id"`
	TransactionID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_transactions_provider_tx_id"`
	Amount          float64   `gorm:"type:numeric(12,2);not null"`
	Currency        string    `gorm:"type:varchar(10);not null"`
	Status          string    `gorm:"type:varchar(50);not null"`
	Description     string    `gorm:"type:text"`
	MerchantName    string    `gorm:"type:varchar(255)"`
	TransactionDate time.Time `gorm:"not null;index"`
	RawData         datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

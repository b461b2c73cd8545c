package postgres

import (
	"context"
	"encoding/json"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// UpsertTransaction inserts or updates a transaction keyed on (provider, transaction_id).
func (repo *transactionRepository) UpsertTransaction(ctx context.Context, tx *entity.Transaction) error {
	txM, err := fromTransactionDomain(tx)
	if err != nil {
		return errors.Wrap(err, "failed to encode transaction")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider"}, {Name: "transaction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "amount", "currency", "status", "description",
				"merchant_name", "transaction_date", "raw_data", "updated_at",
			}),
		}).
		Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required transaction information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt
	tx.UpdatedAt = txM.UpdatedAt

	return nil
}

// FindTransactionsByUser returns a user's transactions for a provider, newest first.
func (repo *transactionRepository) FindTransactionsByUser(ctx context.Context, userID uuid.UUID, provider string, limit int) ([]*entity.Transaction, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Order("transaction_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var txModels []*model.TransactionModel
	if err := query.Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions by user")
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for _, txM := range txModels {
		transactions = append(transactions, toTransactionDomain(txM))
	}

	return transactions, nil
}

// --- Mapper Functions ---

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	var raw map[string]any
	if len(data.RawData) > 0 {
		// Raw payload is opaque; a decode failure just leaves it nil.
		_ = json.Unmarshal(data.RawData, &raw)
	}

	return &entity.Transaction{
		ID:              data.ID,
		UserID:          data.UserID,
		Provider:        data.Provider,
		TransactionID:   data.TransactionID,
		Amount:          data.Amount,
		Currency:        data.Currency,
		Status:          data.Status,
		Description:     data.Description,
		MerchantName:    data.MerchantName,
		TransactionDate: data.TransactionDate,
		RawData:         raw,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) (*model.TransactionModel, error) {
	if data == nil {
		return nil, nil
	}

	var raw datatypes.JSON
	if data.RawData != nil {
		encoded, err := json.Marshal(data.RawData)
		if err != nil {
			return nil, err
		}
		raw = datatypes.JSON(encoded)
	}

	return &model.TransactionModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Provider:        data.Provider,
		TransactionID:   data.TransactionID,
		Amount:          data.Amount,
		Currency:        data.Currency,
		Status:          data.Status,
		Description:     data.Description,
		MerchantName:    data.MerchantName,
		TransactionDate: data.TransactionDate,
		RawData:         raw,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

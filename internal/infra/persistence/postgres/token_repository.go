// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// providerTokenRepository implements the repository.ProviderTokenRepository interface.
type providerTokenRepository struct {
	db *gorm.DB
}

// NewProviderTokenRepository is the constructor for providerTokenRepository.
func NewProviderTokenRepository(db *gorm.DB) repository.ProviderTokenRepository {
	return &providerTokenRepository{
		db: db,
	}
}

// UpsertToken stores a token for (user, provider), replacing the previous one on reconnect.
func (repo *providerTokenRepository) UpsertToken(ctx context.Context, token *entity.ProviderToken) error {
	tokenM := fromProviderTokenDomain(token)

	// Historical rows may exist; delete-then-insert inside one transaction
	// keeps exactly one live credential per (user, provider).
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND provider = ?", tokenM.UserID, tokenM.Provider).
			Delete(&model.UserTokenModel{}).Error; err != nil {
			return err
		}

		return tx.Create(tokenM).Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store provider token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindLatestToken retrieves the most recently created token for a (user, provider) pair.
func (repo *providerTokenRepository) FindLatestToken(ctx context.Context, userID uuid.UUID, provider string) (*entity.ProviderToken, error) {
	var tokenM model.UserTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Order("created_at DESC").
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider token")
	}

	return toProviderTokenDomain(&tokenM), nil
}

// HasToken reports whether any token row exists for (user, provider).
func (repo *providerTokenRepository) HasToken(ctx context.Context, userID uuid.UUID, provider string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserTokenModel{}).
		Where("user_id = ? AND provider = ?", userID, provider).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count provider tokens")
	}

	return count > 0, nil
}

// DeleteTokens removes every token row for (user, provider).
func (repo *providerTokenRepository) DeleteTokens(ctx context.Context, userID uuid.UUID, provider string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND provider = ?", userID, provider).
		Delete(&model.UserTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete provider tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toProviderTokenDomain converts a GORM UserTokenModel to a domain ProviderToken entity.
func toProviderTokenDomain(data *model.UserTokenModel) *entity.ProviderToken {
	if data == nil {
		return nil
	}

	return &entity.ProviderToken{
		ID:           data.ID,
		UserID:       data.UserID,
		Provider:     data.Provider,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		TokenType:    data.TokenType,
		ExpiresAt:    data.ExpiresAt,
		Scope:        data.Scope,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromProviderTokenDomain converts a domain ProviderToken entity to a GORM UserTokenModel.
func fromProviderTokenDomain(data *entity.ProviderToken) *model.UserTokenModel {
	if data == nil {
		return nil
	}

	return &model.UserTokenModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Provider:     data.Provider,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		TokenType:    data.TokenType,
		ExpiresAt:    data.ExpiresAt,
		Scope:        data.Scope,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

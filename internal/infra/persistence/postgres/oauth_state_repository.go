package postgres

import (
	"context"

	"finboard/internal/domain/entity"
	domainerrors "finboard/internal/domain/errors"
	"finboard/internal/domain/repository"
	"finboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// oauthStateRepository implements the repository.OAuthStateRepository interface.
// State rows live in the user_tokens table under the sumup_oauth_state
// sentinel provider, with the state value in the access_token column.
type oauthStateRepository struct {
	db *gorm.DB
}

// NewOAuthStateRepository is the constructor for oauthStateRepository.
func NewOAuthStateRepository(db *gorm.DB) repository.OAuthStateRepository {
	return &oauthStateRepository{
		db: db,
	}
}

// CreateState persists a fresh state record. Each initiation inserts a new
// row; no upsert, stale duplicates are tolerated.
func (repo *oauthStateRepository) CreateState(ctx context.Context, state *entity.OAuthState) error {
	stateM := &model.UserTokenModel{
		ID:          state.ID,
		UserID:      state.UserID,
		Provider:    entity.ProviderSumUpOAuthState,
		AccessToken: state.Value,
	}

	if err := repo.db.WithContext(ctx).Create(stateM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required state information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store oauth state")
	}

	state.ID = stateM.ID
	state.CreatedAt = stateM.CreatedAt

	return nil
}

// FindLatestByValue retrieves the most recently created state record with
// the given value. Exact match on (sentinel provider, value); duplicates are
// disambiguated by creation time.
func (repo *oauthStateRepository) FindLatestByValue(ctx context.Context, value string) (*entity.OAuthState, error) {
	var stateM model.UserTokenModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND access_token = ?", entity.ProviderSumUpOAuthState, value).
		Order("created_at DESC").
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrap(err, "failed to find oauth state")
	}

	return &entity.OAuthState{
		ID:        stateM.ID,
		UserID:    stateM.UserID,
		Value:     stateM.AccessToken,
		CreatedAt: stateM.CreatedAt,
	}, nil
}

// DeleteByValue removes every state record with the given value.
func (repo *oauthStateRepository) DeleteByValue(ctx context.Context, value string) error {
	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND access_token = ?", entity.ProviderSumUpOAuthState, value).
		Delete(&model.UserTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete oauth state")
	}

	return nil
}

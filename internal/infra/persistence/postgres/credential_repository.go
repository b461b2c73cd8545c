package postgres

import (
	"context"

	"finboard/internal/domain/entity"
	"finboard/internal/domain/repository"
	"finboard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// GetCredential loads the stored API credential for a provider.
func (repo *credentialRepository) GetCredential(ctx context.Context, provider string) (*entity.ProviderCredential, error) {
	var credM model.APICredentialModel
	if err := repo.db.WithContext(ctx).
		Where("provider = ?", provider).
		First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider credential")
	}

	return &entity.ProviderCredential{
		Provider:     credM.Provider,
		APIKey:       credM.APIKey,
		ClientID:     credM.ClientID,
		ClientSecret: credM.ClientSecret,
	}, nil
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the domain account repositories using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// LoadByEmail reads from the primary so a replica lagging behind a recent
// sign-up cannot report the email as free.
func (repo *accountRepository) LoadByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load account by email")
	}

	return toAccountDomain(&accountM), nil
}

// LoadByToken finds the account holding token whose role is role or admin.
func (repo *accountRepository) LoadByToken(ctx context.Context, token string, role entity.Role) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("access_token = ?", token).
		Where("role IN ?", rolesSatisfying(role)).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load account by token")
	}

	return toAccountDomain(&accountM), nil
}

// Add inserts a new account and returns it with the generated ID and timestamps.
func (repo *accountRepository) Add(ctx context.Context, data *repository.AddAccountData) (*entity.Account, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate account id")
	}

	accountM := &model.AccountModel{
		ID:        id,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return nil, translateWriteError(err, "failed to add account")
	}

	return toAccountDomain(accountM), nil
}

// UpdateAccessToken stores the latest access token issued to the account.
func (repo *accountRepository) UpdateAccessToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("access_token", token)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update access token")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound.WrapMessage("failed to update access token")
	}

	return nil
}

// rolesSatisfying lists the stored roles that pass a check for role.
func rolesSatisfying(role entity.Role) []string {
	satisfiedBy := role.SatisfiedBy()
	roles := make([]string, 0, len(satisfiedBy))
	for _, r := range satisfiedBy {
		roles = append(roles, r.String())
	}

	return roles
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Password:  data.Password,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.AccessToken != nil {
		account.AccessToken = *data.AccessToken
	}

	return account
}

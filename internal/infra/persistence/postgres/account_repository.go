package postgres

import (
	"context"
	"time"

	"booking/internal/domain/entity"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/domain/repository"
	"booking/internal/errors"
	"booking/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// activeOnly hides deactivated accounts from every lookup.
func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// FindByID retrieves an active account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first(ctx, "failed to find account by id", func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

// FindByIDWithPassword retrieves an active account including its password hash.
func (repo *accountRepository) FindByIDWithPassword(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.first(ctx, "failed to find account with password", func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

// FindByEmail retrieves an active account by its normalized email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.first(ctx, "failed to find account by email", func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", entity.NormalizeEmail(email))
	})
}

// FindByResetTokenHash retrieves the account owning an unexpired reset digest and locks its row.
func (repo *accountRepository) FindByResetTokenHash(ctx context.Context, digest string, now time.Time) (*entity.Account, error) {
	return repo.first(ctx, "failed to find account by reset token", func(db *gorm.DB) *gorm.DB {
		return db.
			Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("password_reset_token_hash = ? AND password_reset_expires_at > ?", digest, now)
	})
}

func (repo *accountRepository) first(ctx context.Context, op string, where func(*gorm.DB) *gorm.DB) (*entity.Account, error) {
	var accountM model.AccountModel
	err := where(repo.db.WithContext(ctx).Scopes(activeOnly)).First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account and copies the generated ID and timestamps back.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := account.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrEmailTaken, "email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("account violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update validates the account and saves every mutable column.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	if err := account.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	accountM := fromAccountDomain(account)
	accountM.UpdatedAt = time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Select("name", "email", "photo", "role", "password_hash", "password_changed_at",
			"password_reset_token_hash", "password_reset_expires_at", "active", "updated_at").
		Updates(accountM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrEmailTaken, "email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("account violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// SetPasswordResetToken writes digest and expiry together without running full validation.
func (repo *accountRepository) SetPasswordResetToken(ctx context.Context, id uuid.UUID, digest string, expiresAt time.Time) error {
	return repo.updateColumns(ctx, id, "failed to store password reset token", map[string]any{
		"password_reset_token_hash": digest,
		"password_reset_expires_at": expiresAt,
	})
}

// ClearPasswordResetToken nulls digest and expiry together.
func (repo *accountRepository) ClearPasswordResetToken(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumns(ctx, id, "failed to clear password reset token", map[string]any{
		"password_reset_token_hash": nil,
		"password_reset_expires_at": nil,
	})
}

// Deactivate soft-deletes the account.
func (repo *accountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumns(ctx, id, "failed to deactivate account", map[string]any{
		"active": false,
	})
}

func (repo *accountRepository) updateColumns(ctx context.Context, id uuid.UUID, op string, columns map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Scopes(activeOnly).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, op)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                     data.ID,
		Name:                   data.Name,
		Email:                  data.Email,
		Photo:                  data.Photo,
		Role:                   entity.Role(data.Role),
		PasswordHash:           data.PasswordHash,
		PasswordChangedAt:      data.PasswordChangedAt,
		PasswordResetTokenHash: data.PasswordResetTokenHash,
		PasswordResetExpiresAt: data.PasswordResetExpiresAt,
		Active:                 data.Active,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                     data.ID,
		Name:                   data.Name,
		Email:                  data.Email,
		Photo:                  data.Photo,
		Role:                   data.Role.String(),
		PasswordHash:           data.PasswordHash,
		PasswordChangedAt:      data.PasswordChangedAt,
		PasswordResetTokenHash: data.PasswordResetTokenHash,
		PasswordResetExpiresAt: data.PasswordResetExpiresAt,
		Active:                 data.Active,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

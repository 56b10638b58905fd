package postgres

import (
	"context"
	"time"

	"bookshop/internal/domain/entity"
	"bookshop/internal/domain/repository"
	"bookshop/internal/errors"
	"bookshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain.UserRepository interface.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.first(ctx, "find user by id", "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "find user by email", "email = ?", email)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.first(ctx, "find user by username", "username = ?", username)
}

func (repo *userRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	return repo.first(ctx, "find user by email or username", "email = ? OR username = ?", email, username)
}

func (repo *userRepository) first(ctx context.Context, op string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, args...).Order("id").First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, op)
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user and copies the generated id and timestamps back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserConflict
		}

		return errors.Wrap(err, "create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, id int64, update entity.UserUpdate) error {
	changes := map[string]any{"updated_at": time.Now()}
	if update.Username != nil {
		changes["username"] = *update.Username
	}
	if update.Email != nil {
		changes["email"] = *update.Email
	}

	return repo.updateColumns(ctx, "update user profile", id, changes)
}

func (repo *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return repo.updateColumns(ctx, "update user password", id, map[string]any{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
}

func (repo *userRepository) SetResetCode(ctx context.Context, id int64, codeHash string, expiresAt time.Time) error {
	return repo.updateColumns(ctx, "set reset code", id, map[string]any{
		"reset_code_hash":       codeHash,
		"reset_code_expires_at": expiresAt,
		"updated_at":            time.Now(),
	})
}

// ResetPassword is a compare-and-swap on the stored code: the row only
// changes while the code hash still matches and has not expired, so two
// concurrent resets with one code cannot both succeed.
func (repo *userRepository) ResetPassword(ctx context.Context, id int64, codeHash, passwordHash string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND reset_code_hash = ? AND reset_code_expires_at > ?", id, codeHash, now).
		Updates(map[string]any{
			"password_hash":         passwordHash,
			"reset_code_hash":       nil,
			"reset_code_expires_at": nil,
			"updated_at":            now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "reset password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetCodeMismatch
	}

	return nil
}

func (repo *userRepository) updateColumns(ctx context.Context, op string, id int64, changes map[string]any) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUserConflict
		}

		return errors.Wrap(result.Error, op)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		ResetCodeHash:      m.ResetCodeHash,
		ResetCodeExpiresAt: m.ResetCodeExpiresAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		ResetCodeHash:      u.ResetCodeHash,
		ResetCodeExpiresAt: u.ResetCodeExpiresAt,
	}
}

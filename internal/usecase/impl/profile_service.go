package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookshop/internal/delivery/context"
	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/domain/repository"
	"bookshop/internal/domain/service"
	"bookshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account of the caller.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Int64("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// EditProfile changes username and/or email, keeping both unique across accounts.
func (srv *profileService) EditProfile(ctx context.Context, userID int64, input usecase.EditProfileInput) (*entity.User, error) {
	update := entity.UserUpdate{Username: input.Username, Email: input.Email}
	if update.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsToUpdate.WrapMessage("edit profile")
	}

	srv.log(ctx).Info("Updating user profile", slog.Int64("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject values owned by someone else
		if update.Email != nil {
			if err := ensureFreeFor(ctx, userID, *update.Email, userRepo.FindByEmail, domainerrors.ErrEmailAlreadyInUse); err != nil {
				return err
			}
		}
		if update.Username != nil {
			if err := ensureFreeFor(ctx, userID, *update.Username, userRepo.FindByUsername, domainerrors.ErrUsernameAlreadyInUse); err != nil {
				return err
			}
		}

		// 2. Apply the change
		if err := userRepo.UpdateProfile(ctx, userID, update); err != nil {
			switch {
			case errors.Is(err, repository.ErrUserNotFound):
				return errors.Wrap(domainerrors.ErrUserNotFound, "edit profile")
			case errors.Is(err, repository.ErrUserConflict):
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username taken concurrently")
			default:
				return errors.Wrap(err, "failed to update user profile")
			}
		}

		// 3. Read back the stored row
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return updated, nil
}

// ChangePassword replaces the password after checking the current one.
func (srv *profileService) ChangePassword(ctx context.Context, userID int64, input usecase.ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WithDetails(map[string]string{
			"confirmPassword": "must match newPassword",
		})
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "change password")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Int64("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidOldPassword, "change password")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Int64("userID", userID))

	return nil
}

// ensureFreeFor fails with taken when value already belongs to another user.
func ensureFreeFor(
	ctx context.Context,
	userID int64,
	value string,
	find func(context.Context, string) (*entity.User, error),
	taken *domainerrors.BaseError,
) error {
	owner, err := find(ctx, value)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check uniqueness")
	}
	if owner.ID != userID {
		return taken.WrapMessage("edit profile")
	}

	return nil
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	deliverycontext "bookshop/internal/delivery/context"
	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/domain/repository"
	"bookshop/internal/domain/service"
	"bookshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	resetCodes   service.ResetCodeGenerator
	notifier     service.ResetCodeNotifier
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	ResetCodes   service.ResetCodeGenerator
	Notifier     service.ResetCodeNotifier
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		resetCodes:   params.ResetCodes,
		notifier:     params.Notifier,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and logs it in.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	// bcrypt is CPU-bound, keep it out of the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmailOrUsername(ctx, input.Email, input.Username)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: passwordHash,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrUserConflict) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username registered concurrently")
			}

			return errors.Wrap(err, "failed to create user")
		}
		registered = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	tokens, err := srv.startSession(ctx, registered.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registered.ID))

	return &usecase.AuthOutput{
		User:         registered,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Login accepts either the email or the username as the login identifier.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("login", input.Login))

	user, err := srv.userRepo.FindByEmailOrUsername(ctx, input.Login, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("login", input.Login), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("login", input.Login), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.startSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{
		User:         user,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh rotates the session: the presented token must be the one stored
// for its subject and is replaced by a new pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokensOutput, error) {
	srv.log(ctx).Info("Attempting to refresh tokens")

	claims, err := srv.tokenService.Verify(refreshToken, service.TokenKindRefresh)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("invalid refresh token")
	}

	if err := srv.matchSession(ctx, claims.UserID, srv.tokenService.HashToken(refreshToken)); err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Int64("userID", claims.UserID), slog.Any("error", err))

		return nil, err
	}

	tokens, err := srv.startSession(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return &usecase.TokensOutput{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// Logout drops the session of the token's subject. Like Refresh it only
// accepts the currently stored token, so a rotated one cannot end the session.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.Verify(refreshToken, service.TokenKindRefresh)
	if err != nil {
		return domainerrors.ErrInvalidToken.WrapMessage("invalid refresh token")
	}

	if err := srv.matchSession(ctx, claims.UserID, srv.tokenService.HashToken(refreshToken)); err != nil {
		srv.log(ctx).Warn("Logout rejected", slog.Int64("userID", claims.UserID), slog.Any("error", err))

		return err
	}

	if err := srv.sessionRepo.Delete(ctx, claims.UserID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("User logged out", slog.Int64("userID", claims.UserID))

	return nil
}

// ForgotPassword issues a one-time reset code for the account.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no account for email")
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	code, codeHash, err := srv.resetCodes.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}
	expiresAt := srv.now().Add(srv.resetCodes.TTL())

	if err := srv.userRepo.SetResetCode(ctx, user.ID, codeHash, expiresAt); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user removed while issuing reset code")
		}

		return errors.Wrap(err, "failed to store reset code")
	}

	if err := srv.notifier.SendResetCode(ctx, user.Email, code, expiresAt); err != nil {
		return errors.Wrap(err, "failed to deliver reset code")
	}

	srv.log(ctx).Info("Password reset requested", slog.Int64("userID", user.ID))

	return nil
}

// ResetPassword consumes the reset code and replaces the password.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch.WithDetails(map[string]string{
			"confirmPassword": "must match newPassword",
		})
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no account for email")
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPendingReset() {
		return errors.Wrap(domainerrors.ErrResetNotRequested, "reset password")
	}

	now := srv.now()
	codeHash := srv.resetCodes.Hash(input.Code)
	if user.ResetCodeExpired(now) || subtle.ConstantTimeCompare([]byte(codeHash), []byte(*user.ResetCodeHash)) != 1 {
		srv.log(ctx).Warn("Reset code rejected", slog.Int64("userID", user.ID))

		return errors.Wrap(domainerrors.ErrInvalidResetCode, "reset password")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during reset")
	}

	if err := srv.userRepo.ResetPassword(ctx, user.ID, codeHash, passwordHash, now); err != nil {
		if errors.Is(err, repository.ErrResetCodeMismatch) {
			return errors.Wrap(domainerrors.ErrInvalidResetCode, "reset code consumed concurrently")
		}

		return errors.Wrap(err, "failed to reset password")
	}

	if err := srv.sessionRepo.Delete(ctx, user.ID); err != nil {
		srv.log(ctx).Error("Failed to revoke session after password reset", slog.Int64("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset completed", slog.Int64("userID", user.ID))

	return nil
}

// Authenticate backs the auth middleware.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (int64, error) {
	claims, err := srv.tokenService.Verify(accessToken, service.TokenKindAccess)
	if err != nil {
		return 0, domainerrors.ErrInvalidToken.WrapMessage("invalid access token")
	}

	if _, err := srv.sessionRepo.Get(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return 0, domainerrors.ErrInvalidToken.WrapMessage("session revoked")
		}

		return 0, errors.Wrap(err, "failed to load session")
	}

	return claims.UserID, nil
}

// startSession issues a token pair and makes its refresh token the only live one.
func (srv *authService) startSession(ctx context.Context, userID int64) (*service.TokenPair, error) {
	tokens, err := srv.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	tokenHash := srv.tokenService.HashToken(tokens.RefreshToken)
	if err := srv.sessionRepo.Set(ctx, userID, tokenHash, srv.tokenService.RefreshTokenTTL()); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store session")
	}

	return tokens, nil
}

func (srv *authService) matchSession(ctx context.Context, userID int64, tokenHash string) error {
	stored, err := srv.sessionRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrInvalidToken.WrapMessage("no live session")
		}

		return errors.Wrap(err, "failed to load session")
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(tokenHash)) != 1 {
		return domainerrors.ErrInvalidToken.WrapMessage("refresh token was rotated")
	}

	return nil
}

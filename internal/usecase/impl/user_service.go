// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/domain/service"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account and immediately logs it in.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Registering customer", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	user := buildNewUser(input.Name, input.Email, passwordHash, entity.RoleCustomer)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Registration transaction failed", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return srv.issueTokens(ctx, user)
}

// CreateStaff provisions a staff account. Restricted to admins.
func (srv *userService) CreateStaff(ctx context.Context, caller usecase.Caller, input usecase.CreateStaffInput) (*entity.User, error) {
	if caller.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden
	}

	if !input.Role.IsValid() || !input.Role.IsStaff() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be waiter, kitchen or admin")
	}

	srv.log(ctx).Info("Creating staff account",
		slog.String("email", input.Email),
		slog.Any("role", input.Role))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	user := buildNewUser(input.Name, input.Email, passwordHash, input.Role)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create staff user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Staff creation transaction failed", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return user, nil
}

// Login verifies credentials and issues a fresh token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to load user for login", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()))

	return srv.issueTokens(ctx, user)
}

// Refresh rotates a valid refresh token into a new token pair. The old
// session record is revoked in the same transaction that stores the new one.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		srv.log(ctx).Error("Failed to load refresh token", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		srv.log(ctx).Error("Failed to load user for refresh", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	newRecord := buildRefreshTokenRecord(user.ID, newRefreshToken, srv.tokenService.RefreshTokenDuration())

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshTokenRepo := repoFactory.RefreshTokenRepo()

		if err := refreshTokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to revoke old refresh token")
		}

		if err := refreshTokenRepo.CreateRefreshToken(ctx, newRecord); err != nil {
			return errors.Wrap(err, "failed to store new refresh token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Refresh rotation failed", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// Logout revokes the session behind the given refresh token. Revoking an
// already revoked session is not an error.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := srv.tokenService.ValidateRefreshToken(refreshToken); err != nil {
		return domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		srv.log(ctx).Error("Failed to load refresh token for logout", slog.Any("error", err))

		return domainerrors.ErrPersistenceFailed
	}

	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, stored.ID); err != nil {
		srv.log(ctx).Error("Failed to revoke refresh token", slog.Any("error", err))

		return domainerrors.ErrPersistenceFailed
	}

	return nil
}

// GetProfile retrieves the caller's own account.
func (srv *userService) GetProfile(ctx context.Context, caller usecase.Caller) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to load profile", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return user, nil
}

// issueTokens generates a token pair for the user and stores the hashed
// refresh token as the session record.
func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	record := buildRefreshTokenRecord(user.ID, refreshToken, srv.tokenService.RefreshTokenDuration())
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func buildNewUser(name, email, passwordHash string, role entity.Role) *entity.User {
	now := time.Now()

	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func buildRefreshTokenRecord(userID uuid.UUID, refreshToken string, duration time.Duration) *entity.RefreshToken {
	now := time.Now()

	return &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: now.Add(duration),
		CreatedAt: now,
	}
}

// hashToken stores only a digest of the refresh token so a database leak
// does not expose live sessions.
func hashToken(token string) string {
	digest := sha256.Sum256([]byte(token))

	return hex.EncodeToString(digest[:])
}

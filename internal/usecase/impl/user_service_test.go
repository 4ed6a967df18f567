package impl

import (
	"context"
	"testing"
	"time"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	domainservice "mesa/internal/domain/service"
	mockRepo "mesa/internal/mocks/repository"
	mockSvc "mesa/internal/mocks/service"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	factory          *mockRepo.MockRepositoryFactory
	txManager        *mockRepo.MockTransactionManager
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}
	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.factory.EXPECT().RefreshTokenRepo().Return(m.refreshTokenRepo).Maybe()
	m.txManager = newPassthroughTxManager(t, m.factory)

	service := NewUserService(UserServiceParams{
		TxManager:        m.txManager,
		UserRepo:         m.userRepo,
		RefreshTokenRepo: m.refreshTokenRepo,
		Hasher:           m.hasher,
		TokenService:     m.tokenService,
		Logger:           newDiscardLogger(),
	})

	return service, m
}

func refreshClaims(user *entity.User) *domainservice.Claims {
	return &domainservice.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Type:   domainservice.TokenTypeRefresh,
	}
}

func expectTokenIssue(m *userServiceMocks) {
	m.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.User")).
		Return("access-token", "refresh-token", nil)
	m.tokenService.EXPECT().
		RefreshTokenDuration().
		Return(7 * 24 * time.Hour)
	m.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
}

func TestUserService_Register_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.hasher.EXPECT().Hash("s3cret-password").Return("$2a$10$hash", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "amy@example.com" && u.Role == entity.RoleCustomer && u.PasswordHash == "$2a$10$hash"
		})).
		Return(nil)
	expectTokenIssue(m)

	out, err := service.Register(ctx, usecase.RegisterInput{
		Name:     "Amy",
		Email:    "amy@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.hasher.EXPECT().Hash("s3cret-password").Return("$2a$10$hash", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	out, err := service.Register(ctx, usecase.RegisterInput{
		Name:     "Amy",
		Email:    "amy@example.com",
		Password: "s3cret-password",
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateStaff_RequiresAdmin(t *testing.T) {
	service, _ := newUserService(t)

	for _, role := range []entity.Role{entity.RoleCustomer, entity.RoleWaiter, entity.RoleKitchen} {
		caller := usecase.Caller{UserID: uuid.New(), Role: role}

		user, err := service.CreateStaff(context.Background(), caller, usecase.CreateStaffInput{
			Name:     "Kit",
			Email:    "kit@example.com",
			Password: "s3cret-password",
			Role:     entity.RoleKitchen,
		})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestUserService_CreateStaff_RejectsCustomerRole(t *testing.T) {
	service, _ := newUserService(t)

	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}

	user, err := service.CreateStaff(context.Background(), caller, usecase.CreateStaffInput{
		Name:     "Kit",
		Email:    "kit@example.com",
		Password: "s3cret-password",
		Role:     entity.RoleCustomer,
	})
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUserService_CreateStaff_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	caller := usecase.Caller{UserID: uuid.New(), Role: entity.RoleAdmin}

	m.hasher.EXPECT().Hash("s3cret-password").Return("$2a$10$hash", nil)
	m.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleKitchen
		})).
		Return(nil)

	user, err := service.CreateStaff(ctx, caller, usecase.CreateStaffInput{
		Name:     "Kit",
		Email:    "kit@example.com",
		Password: "s3cret-password",
		Role:     entity.RoleKitchen,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleKitchen, user.Role)
}

func TestUserService_Login_Success(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)

	m.userRepo.EXPECT().FindByEmail(ctx, "amy@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("s3cret-password", "$2a$10$hash").Return(true)
	expectTokenIssue(m)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "amy@example.com", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)

	m.userRepo.EXPECT().FindByEmail(ctx, "amy@example.com").Return(user, nil)
	m.hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "amy@example.com", Password: "wrong"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()

	m.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.Nil(t, out)
	// Unknown accounts and wrong passwords are indistinguishable to callers.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Refresh_RotatesSession(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)
	stored := buildRefreshTokenRecord(user.ID, "old-refresh", 24*time.Hour)

	m.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(refreshClaims(user), nil)
	m.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("old-refresh")).
		Return(stored, nil)
	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.tokenService.EXPECT().
		GenerateTokens(user).
		Return("new-access", "new-refresh", nil)
	m.tokenService.EXPECT().
		RefreshTokenDuration().
		Return(24 * time.Hour)
	m.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)
	m.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(r *entity.RefreshToken) bool {
			return r.TokenHash == hashToken("new-refresh") && r.UserID == user.ID
		})).
		Return(nil)

	out, err := service.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_Refresh_UnknownSession(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)

	m.tokenService.EXPECT().
		ValidateRefreshToken("revoked-refresh").
		Return(refreshClaims(user), nil)
	m.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("revoked-refresh")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	out, err := service.Refresh(ctx, "revoked-refresh")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_ExpiredSession(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)
	stored := buildRefreshTokenRecord(user.ID, "stale-refresh", -time.Hour)

	m.tokenService.EXPECT().
		ValidateRefreshToken("stale-refresh").
		Return(refreshClaims(user), nil)
	m.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("stale-refresh")).
		Return(stored, nil)

	out, err := service.Refresh(ctx, "stale-refresh")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_RevokesSession(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)
	stored := buildRefreshTokenRecord(user.ID, "refresh", 24*time.Hour)

	m.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(refreshClaims(user), nil)
	m.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("refresh")).
		Return(stored, nil)
	m.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, stored.ID).Return(nil)

	require.NoError(t, service.Logout(ctx, "refresh"))
}

func TestUserService_Logout_AlreadyRevokedIsNoop(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)

	m.tokenService.EXPECT().
		ValidateRefreshToken("refresh").
		Return(refreshClaims(user), nil)
	m.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, hashToken("refresh")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	require.NoError(t, service.Logout(ctx, "refresh"))
}

func TestUserService_GetProfile(t *testing.T) {
	service, m := newUserService(t)

	ctx := context.Background()
	user := buildNewUser("Amy", "amy@example.com", "$2a$10$hash", entity.RoleCustomer)

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := service.GetProfile(ctx, usecase.Caller{UserID: user.ID, Role: entity.RoleCustomer})
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}

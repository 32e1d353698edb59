package service

import (
	"context"
	"testing"
	"time"

	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/pixelplot/ShootBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*UserService, *mocks.MockUserRepo) {
	t.Helper()
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, "test-secret", time.Hour, newTestLogger(t))
	return svc, repo
}

func TestUserService_Register(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "alice@example.com",
		Password: "correct horse",
		Name:     "Alice Example",
		Phone:    "07700900000",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "alice@example.com",
		Password: "short",
		Name:     "Alice",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "alice@example.com",
		Password: "correct horse",
		Name:     "Alice",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_Login(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		Status:       domain.UserStatusActive,
	}, nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "correct horse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, repo := newUserService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Status:       domain.UserStatusActive,
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		Email:  "alice@example.com",
		Status: domain.UserStatusDisabled,
	}, nil)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")

	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestUserService_RedeemPoints(t *testing.T) {
	svc, repo := newUserService(t)

	user := &domain.User{
		Email:         "alice@example.com",
		PointsManual:  50,
		LifetimeSpend: 300, // 300 earned points
	}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	repo.EXPECT().Update(mock.Anything, user).Return(nil)

	got, err := svc.RedeemPoints(context.Background(), "alice@example.com", 100)

	require.NoError(t, err)
	assert.Equal(t, 100, got.PointsRedeemed)
	assert.Equal(t, 250, got.PointsBalance())
}

func TestUserService_RedeemPoints_InsufficientBalance(t *testing.T) {
	svc, repo := newUserService(t)

	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&domain.User{
		Email:         "alice@example.com",
		LifetimeSpend: 50,
	}, nil)

	_, err := svc.RedeemPoints(context.Background(), "alice@example.com", 100)

	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
}

func TestUserService_AdminAdjustPoints(t *testing.T) {
	svc, repo := newUserService(t)

	user := &domain.User{Email: "alice@example.com", PointsManual: 10}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	repo.EXPECT().Update(mock.Anything, user).Return(nil)

	got, err := svc.AdminAdjustPoints(context.Background(), "alice@example.com", -5)

	require.NoError(t, err)
	assert.Equal(t, 5, got.PointsManual)
}

func TestUserService_AdminAdjustPoints_ZeroDelta(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.AdminAdjustPoints(context.Background(), "alice@example.com", 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

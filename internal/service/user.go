package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pixelplot/ShootBooker/internal/auth"
	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/pixelplot/ShootBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

type UserService struct {
	repo      ports.UserRepo
	jwtSecret string
	tokenTTL  time.Duration
	logger    logger.Logger
}

func NewUserService(repo ports.UserRepo, jwtSecret string, tokenTTL time.Duration, logger logger.Logger) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Phone:        input.Phone,
		Role:         domain.RoleClient,
		Status:       domain.UserStatusActive,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", logger.String("email", user.Email))

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if user.Status == domain.UserStatusDisabled {
		return nil, "", domain.ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := auth.CreateAccessToken(s.jwtSecret, user.Email, string(user.Role), user.Email, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) RedeemPoints(ctx context.Context, email string, points int) (*domain.User, error) {
	if points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", domain.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.PointsBalance() < points {
		return nil, domain.ErrInsufficientPoints
	}

	user.PointsRedeemed += points
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("points redeemed",
		logger.String("email", email),
		logger.Int("points", points),
		logger.Int("balance", user.PointsBalance()),
	)

	return user, nil
}

// AdminAdjustPoints applies a manual correction, positive or negative, to a
// user's points balance.
func (s *UserService) AdminAdjustPoints(ctx context.Context, email string, delta int) (*domain.User, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: delta must not be zero", domain.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.PointsManual += delta
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

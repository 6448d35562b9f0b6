package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "agrirent/database/repository/user"
	"agrirent/models"
	"agrirent/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued JWT stays valid.
const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account and signs the user in.
func (s *DefaultUserService) Register(ctx context.Context, name, phone, village, password string, role models.UserRole) (*AuthResponse, error) {
	switch role {
	case models.RoleFarmer, models.RoleOwner, models.RoleDriver, models.RoleSahayak:
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	existing, err := s.Repo.GetByPhone(ctx, phone)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("phone number already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        phone,
		Village:      village,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, err
	}

	return s.issueToken(ctx, usr)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, phone, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByPhone(ctx, phone)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("invalid phone or password")
	}
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid phone or password")
	}

	return s.issueToken(ctx, usr)
}

// GetUserByID resolves a user id to its record.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// issueToken signs a JWT and caches its hash so the auth middleware can
// validate without a database round trip.
func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token", zap.Error(err))
	}

	return &AuthResponse{
		ID:    usr.ID,
		Name:  usr.Name,
		Phone: usr.Phone,
		Role:  usr.Role,
		Token: token,
	}, nil
}

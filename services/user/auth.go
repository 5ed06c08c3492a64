package user

import (
	"context"
	"fmt"
	"time"

	"tourai/models"
	"tourai/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account and signs it in.
func (s *DefaultUserService) Register(req models.RegisterUserRequest) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userRec := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(userRec); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueSession(userRec)
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueSession(userRec)
}

// SignOut revokes the user's cached session token.
func (s *DefaultUserService) SignOut(userID string) error {
	sessionClient := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	if err := sessionClient.Del(context.Background(), cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// issueSession generates a JWT for the user and caches its hash. The middleware
// compares the hash on every request, so revocation takes effect immediately.
func (s *DefaultUserService) issueSession(userRec *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, utils.AuthTokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	sessionClient := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := sessionClient.Set(context.Background(), cacheKey, utils.HashToken(token), utils.AuthTokenTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache session token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: *userRec}, nil
}

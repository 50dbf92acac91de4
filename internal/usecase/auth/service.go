package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pixelforge/imgtier/internal/adapter/repository"
	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/infrastructure/auth"
)

type Service struct {
	userRepo    repository.UserRepository
	tierRepo    repository.TierRepository
	jwtSvc      *auth.JWTService
	hasher      *auth.PasswordHasher
	defaultTier string
}

func NewService(
	userRepo repository.UserRepository,
	tierRepo repository.TierRepository,
	jwtSvc *auth.JWTService,
	hasher *auth.PasswordHasher,
	defaultTier string,
) *Service {
	return &Service{
		userRepo:    userRepo,
		tierRepo:    tierRepo,
		jwtSvc:      jwtSvc,
		hasher:      hasher,
		defaultTier: defaultTier,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Register creates a user on the configured default tier. A missing default
// tier is not fatal: the user starts without entitlements and an admin
// assigns a tier later.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	var tierID *uuid.UUID
	tier, err := s.tierRepo.GetByName(ctx, s.defaultTier)
	switch {
	case err == nil:
		tierID = &tier.ID
	case errors.Is(err, domain.ErrTierNotFound):
	default:
		return nil, err
	}

	user := entity.NewUser(input.Email, hash, input.Name, tierID)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*Token, *entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtSvc.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return &Token{AccessToken: accessToken, ExpiresAt: expiresAt}, user, nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripLogger/domain"
	"tripLogger/pkg/logger"
	"tripLogger/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const RoleTraveler = "traveler"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUsername    = errors.New("username is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

type userService struct {
	userRepo  UserRepository
	validate  *validator.Validate
	jwtSecret string
	tokenTTL  time.Duration
}

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	jwtSecret string,
	tokenTTL time.Duration,
) *userService {
	return &userService{
		userRepo:  userRepo,
		validate:  validate,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// NormalizeUsername trims and lower-cases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates a traveler account and signs a token for it.
func (s *userService) Register(ctx context.Context, username, password string) (string, domain.User, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.User{}, fmt.Errorf("context error: %w", err)
	}

	username = NormalizeUsername(username)
	if err := s.validate.Var(username, "required"); err != nil {
		return "", domain.User{}, ErrInvalidUsername
	}

	if err := s.validate.Var(password, "required,min=6"); err != nil {
		logger.Warn("Invalid user password", "username", username)
		return "", domain.User{}, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return "", domain.User{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		logger.Error("Failed to check username", err)
		return "", domain.User{}, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return "", domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Username: username,
		Password: string(passwordHash),
		Role:     RoleTraveler,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return "", domain.User{}, err
	}

	token, err := s.issueToken(newUser)
	if err != nil {
		return "", domain.User{}, err
	}

	logger.Info("User registered", "user_id", newUser.ID, "username", username)
	newUser.Password = ""
	return token, newUser, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.User{}, fmt.Errorf("context error: %w", err)
	}

	user, err := s.userRepo.FindByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err)
		return "", domain.User{}, err
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Warn("User password incorrect", "user_id", user.ID)
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", domain.User{}, err
	}

	user.Password = ""
	return token, user, nil
}

// CurrentUser loads the account behind an authenticated token. A token for
// a deleted account reports domain.ErrUserNotFound.
func (s *userService) CurrentUser(ctx context.Context, userID uint) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, fmt.Errorf("context error: %w", err)
	}

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			logger.Error("Failed to load current user", "user_id", userID, err)
		}
		return domain.User{}, err
	}

	u.Password = ""
	return u, nil
}

func (s *userService) issueToken(user domain.User) (string, error) {
	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(s.jwtSecret, userIDStr, user.Role, s.tokenTTL)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", errors.New("failed to generate token")
	}

	return token, nil
}

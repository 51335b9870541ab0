package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"usersvc/internal/cache"
	"usersvc/internal/errors"
	"usersvc/internal/metrics"
	"usersvc/internal/model"
	"usersvc/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	userListCacheKey = "users:list"
	userListCacheTTL = time.Minute
)

// UserService exposes user directory operations.
type UserService interface {
	CreateUser(ctx context.Context, username, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	RecentUsers(ctx context.Context, limit int) ([]model.User, error)
	DeleteUser(ctx context.Context, id uint) (*model.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// CreateUser persists a new user after checking that neither the username nor
// the email is already taken. Uniqueness is additionally enforced by the
// store's unique indexes.
func (s *userService) CreateUser(ctx context.Context, username, email string) (*model.User, error) {
	if username == "" || email == "" {
		return nil, errors.ErrValidation
	}

	existing, err := s.repo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.ErrUserAlreadyExists
	}

	user := &model.User{Username: username, Email: email}
	if err := s.repo.Create(ctx, user); err != nil {
		logger.Error().Err(err).Str("username", username).Msg("create user failed")
		return nil, fmt.Errorf("create user: %w", err)
	}

	_ = s.cache.Delete(ctx, userListCacheKey)
	metrics.UsersCreated.Inc()
	logger.Info().Str("username", user.Username).Msg("created user")
	return user, nil
}

// ListUsers returns all users, most recently created first, with a short
// best-effort cache in front of the store.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	cached := make([]model.User, 0)
	if s.cache.GetJSON(ctx, userListCacheKey, &cached) {
		return cached, nil
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	s.cache.SetJSON(ctx, userListCacheKey, users, userListCacheTTL)
	return users, nil
}

// RecentUsers returns the newest users for the index page. Not cached: the
// page also reports live database status.
func (s *userService) RecentUsers(ctx context.Context, limit int) ([]model.User, error) {
	return s.repo.ListRecent(ctx, limit)
}

// DeleteUser removes the user with the given id and returns the removed
// record.
func (s *userService) DeleteUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	if err := s.repo.Delete(ctx, user); err != nil {
		logger.Error().Err(err).Uint("id", id).Msg("delete user failed")
		return nil, fmt.Errorf("delete user %d: %w", id, err)
	}

	_ = s.cache.Delete(ctx, userListCacheKey)
	metrics.UsersDeleted.Inc()
	logger.Info().Str("username", user.Username).Msg("deleted user")
	return user, nil
}

func (s *userService) CountUsers(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

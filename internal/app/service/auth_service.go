package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"galaxy_api/internal/common"
	"galaxy_api/internal/common/security"
	"galaxy_api/internal/domain/model"
	"galaxy_api/internal/domain/repository"
	"galaxy_api/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

type AuthService struct {
	userRepo repository.UserRepository
	rdb      *redis.Client // nil disables login attempt limiting
}

func NewAuthService(userRepo repository.UserRepository, rdb *redis.Client) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both come back as a generic unauthorized so the endpoint
// does not confirm which emails are registered.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}

	if err := s.checkAttemptLimit(ctx, req.Email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.recordFailedAttempt(ctx, req.Email)
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		s.recordFailedAttempt(ctx, req.Email)
		return nil, common.ErrUnauthorized
	}

	token, err := security.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.clearFailedAttempts(ctx, user.Email)
	user.HashedPassword = ""
	return &LoginResponse{User: user, Token: token}, nil
}

func attemptKey(email string) string {
	return "login_attempts:" + email
}

func (s *AuthService) checkAttemptLimit(ctx context.Context, email string) error {
	if s.rdb == nil {
		return nil
	}
	val, err := s.rdb.Get(ctx, attemptKey(email)).Result()
	if err != nil {
		if err != redis.Nil {
			// Limiter is best-effort; a Redis outage must not block logins.
			log.Printf("login limiter read failed: %v", err)
		}
		return nil
	}
	if attempts, err := strconv.Atoi(val); err == nil && attempts >= config.AppConfig.LoginMaxAttempts {
		return common.ErrTooManyLoginAttempts
	}
	return nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, email string) {
	if s.rdb == nil {
		return
	}
	attempts, err := s.rdb.Incr(ctx, attemptKey(email)).Result()
	if err != nil {
		log.Printf("login limiter incr failed: %v", err)
		return
	}
	if attempts == 1 {
		s.rdb.Expire(ctx, attemptKey(email), config.AppConfig.LoginAttemptsWindow)
	}
}

func (s *AuthService) clearFailedAttempts(ctx context.Context, email string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, attemptKey(email)).Err(); err != nil {
		log.Printf("login limiter reset failed: %v", err)
	}
}

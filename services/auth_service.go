package services

import (
	"context"
	"errors"
	"regexp"

	"gamecollection/apperrors"
	"gamecollection/models"
	"gamecollection/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z]{3,16}$`)
	passwordPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,32}$`)
)

type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) error {
	if !usernamePattern.MatchString(req.Username) {
		return apperrors.ErrInvalidUsername
	}
	if !passwordPattern.MatchString(req.Password) {
		return apperrors.ErrInvalidPassword
	}

	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.ErrStorage
	}

	// The primary key is the second line of defense: two concurrent
	// registrations of the same name both pass the existence check, but
	// only one insert wins.
	return s.users.Create(ctx, &models.User{
		Username: req.Username,
		Password: string(hash),
	})
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) error {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.ErrAuth
	}
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return apperrors.ErrAuth
	}
	return nil
}

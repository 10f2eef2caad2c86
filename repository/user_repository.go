package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"gamecollection/apperrors"
	"gamecollection/models"

	"gorm.io/gorm"
)

// queryTimeout bounds every database call so a wedged connection cannot
// stall request handling indefinitely.
const queryTimeout = 5 * time.Second

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Create(user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict
		}
		log.Printf("insert user %q: %v", user.Username, res.Error)
		return apperrors.ErrStorage
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrStorage
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		log.Printf("select user %q: %v", username, err)
		return nil, apperrors.ErrStorage
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, username string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		log.Printf("count user %q: %v", username, err)
		return false, apperrors.ErrStorage
	}
	return count > 0, nil
}

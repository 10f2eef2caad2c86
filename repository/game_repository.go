package repository

import (
	"context"
	"log"

	"gamecollection/apperrors"
	"gamecollection/models"

	"gorm.io/gorm"
)

type GameRepository interface {
	ListByUsername(ctx context.Context, username string) ([]models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	// Delete removes the game only when both id and owner match, so a
	// caller can never observe whether a foreign id exists.
	Delete(ctx context.Context, id int64, username string) (int64, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) ListByUsername(ctx context.Context, username string) ([]models.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	games := make([]models.Game, 0)
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("id").
		Find(&games).Error
	if err != nil {
		log.Printf("select games for %q: %v", username, err)
		return nil, apperrors.ErrStorage
	}
	return games, nil
}

func (r *gameRepository) Create(ctx context.Context, game *models.Game) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Create(game)
	if res.Error != nil {
		log.Printf("insert game for %q: %v", game.Username, res.Error)
		return apperrors.ErrStorage
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrStorage
	}
	return nil
}

func (r *gameRepository) Delete(ctx context.Context, id int64, username string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&models.Game{})
	if res.Error != nil {
		log.Printf("delete game %d for %q: %v", id, username, res.Error)
		return 0, apperrors.ErrStorage
	}
	return res.RowsAffected, nil
}

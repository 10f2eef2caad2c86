package services

import (
	"context"
	"time"

	"gamecollection/apperrors"
	"gamecollection/models"
	"gamecollection/repository"
)

type GameService struct {
	games repository.GameRepository
	users repository.UserRepository
}

func NewGameService(games repository.GameRepository, users repository.UserRepository) *GameService {
	return &GameService{games: games, users: users}
}

type AddGameRequest struct {
	Title    string `json:"title" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}

type DeleteGameRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// ListGames returns the user's games in insertion order. The user row is
// checked before the query so a dangling session reports the unknown
// username rather than an empty list.
func (s *GameService) ListGames(ctx context.Context, username string) ([]models.Game, error) {
	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	return s.games.ListByUsername(ctx, username)
}

func (s *GameService) AddGame(ctx context.Context, username string, req *AddGameRequest) (*models.Game, error) {
	game := &models.Game{
		Username:  username,
		CreatedAt: time.Now(),
		Title:     req.Title,
		Platform:  req.Platform,
	}
	if err := s.games.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes the game only if the caller owns it. An id that is
// absent and an id owned by someone else are reported identically.
func (s *GameService) DeleteGame(ctx context.Context, username string, id int64) error {
	affected, err := s.games.Delete(ctx, id, username)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrStorage
	}
	return nil
}

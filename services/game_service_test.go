package services

import (
	"context"
	"testing"

	"gamecollection/apperrors"
	"gamecollection/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGameService(t *testing.T) (*GameService, *AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	games := repository.NewGameRepository(db)
	return NewGameService(games, users), NewAuthService(users), db
}

func registerUser(t *testing.T, auth *AuthService, username string) {
	t.Helper()
	require.NoError(t, auth.Register(context.Background(), &RegisterRequest{
		Username: username,
		Password: "hunter22",
	}))
}

func TestAddAndListGames(t *testing.T) {
	s, auth, _ := newGameService(t)
	ctx := context.Background()
	registerUser(t, auth, "alice")

	game, err := s.AddGame(ctx, "alice", &AddGameRequest{Title: "Chrono Trigger", Platform: "SNES"})
	require.NoError(t, err)
	assert.NotZero(t, game.ID)
	assert.False(t, game.CreatedAt.IsZero())

	_, err = s.AddGame(ctx, "alice", &AddGameRequest{Title: "Ocarina of Time", Platform: "N64"})
	require.NoError(t, err)

	games, err := s.ListGames(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Insertion order.
	assert.Equal(t, "Chrono Trigger", games[0].Title)
	assert.Equal(t, "SNES", games[0].Platform)
	assert.Equal(t, "Ocarina of Time", games[1].Title)
	assert.Less(t, games[0].ID, games[1].ID)
}

func TestListGamesUnknownUser(t *testing.T) {
	s, _, _ := newGameService(t)

	_, err := s.ListGames(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListGamesEmpty(t *testing.T) {
	s, auth, _ := newGameService(t)
	registerUser(t, auth, "alice")

	games, err := s.ListGames(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, games, "empty listing must serialize as [], not null")
	assert.Empty(t, games)
}

func TestDeleteGame(t *testing.T) {
	s, auth, _ := newGameService(t)
	ctx := context.Background()
	registerUser(t, auth, "alice")

	game, err := s.AddGame(ctx, "alice", &AddGameRequest{Title: "Chrono Trigger", Platform: "SNES"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteGame(ctx, "alice", game.ID))

	games, err := s.ListGames(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, games)

	// Deleting an id that no longer exists reports the generic error.
	err = s.DeleteGame(ctx, "alice", game.ID)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestDeleteGameOwnershipIsolation(t *testing.T) {
	s, auth, _ := newGameService(t)
	ctx := context.Background()
	registerUser(t, auth, "alice")
	registerUser(t, auth, "mallory")

	game, err := s.AddGame(ctx, "alice", &AddGameRequest{Title: "Chrono Trigger", Platform: "SNES"})
	require.NoError(t, err)

	// Mallory cannot delete Alice's game, and cannot tell whether the id
	// exists at all.
	err = s.DeleteGame(ctx, "mallory", game.ID)
	assert.ErrorIs(t, err, apperrors.ErrStorage)

	games, err := s.ListGames(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, games, 1, "alice's row must survive")
}

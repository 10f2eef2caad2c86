package handlers

import (
	"net/http"

	"gamecollection/apperrors"
	"gamecollection/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// ListGames returns the authenticated caller's games as a raw JSON array,
// not the envelope.
func (h *GameHandler) ListGames(c *gin.Context) {
	username := c.GetString("username")

	games, err := h.gameService.ListGames(c.Request.Context(), username)
	if err != nil {
		respondError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) AddGame(c *gin.Context) {
	username := c.GetString("username")

	var req services.AddGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.gameService.AddGame(c.Request.Context(), username, &req); err != nil {
		respondError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	respondSuccess(c, nil)
}

func (h *GameHandler) DeleteGame(c *gin.Context) {
	username := c.GetString("username")

	var req services.DeleteGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.gameService.DeleteGame(c.Request.Context(), username, req.ID); err != nil {
		respondError(c, apperrors.HTTPStatus(err), err.Error())
		return
	}

	respondSuccess(c, nil)
}

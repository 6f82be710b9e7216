package handlers

import (
	"net/http"
	"strconv"

	"bet-tracker/internal/models"
	"bet-tracker/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BetHandler struct {
	betService  *services.BetService
	viewService *services.ViewService
}

func NewBetHandler(betService *services.BetService, viewService *services.ViewService) *BetHandler {
	return &BetHandler{
		betService:  betService,
		viewService: viewService,
	}
}

// CreateBet records a new bet
// POST /api/bets
func (h *BetHandler) CreateBet(c *gin.Context) {
	var req models.CreateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bet, err := h.betService.CreateBet(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bet)
}

// GetBet retrieves a single bet
// GET /api/bets/:id
func (h *BetHandler) GetBet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bet id"})
		return
	}

	bet, err := h.betService.GetBet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bet)
}

// ListBets retrieves all bets, newest first. An optional limit query
// parameter caps the result to the most recent bets.
// GET /api/bets
func (h *BetHandler) ListBets(c *gin.Context) {
	var (
		bets []models.Bet
		err  error
	)

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, parseErr := strconv.Atoi(limitStr)
		if parseErr != nil || limit <= 0 || limit > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		bets, err = h.betService.RecentBets(c.Request.Context(), limit)
	} else {
		bets, err = h.betService.ListBets(c.Request.Context())
	}

	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.viewService.BetList(bets))
}

// SettleBet settles a pending bet
// POST /api/bets/:id/settle
func (h *BetHandler) SettleBet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bet id"})
		return
	}

	var req models.SettleBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bet, err := h.betService.SettleBet(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bet)
}

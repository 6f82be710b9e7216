package handlers

import (
	"net/http"

	"bet-tracker/internal/models"
	"bet-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	parser     *services.EmailParser
	betService *services.BetService
}

func NewImportHandler(parser *services.EmailParser, betService *services.BetService) *ImportHandler {
	return &ImportHandler{
		parser:     parser,
		betService: betService,
	}
}

// ImportEmailRequest carries a pasted sportsbook confirmation email
type ImportEmailRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content" binding:"required"`
}

// ImportEmail parses a confirmation email and records the bet as pending
// POST /api/import/email
func (h *ImportHandler) ImportEmail(c *gin.Context) {
	var req ImportEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed := h.parser.Parse(req.Content, req.Subject)
	if parsed == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not parse bet information from email"})
		return
	}

	bet, err := h.betService.CreateBet(c.Request.Context(), &models.CreateBetRequest{
		BetType:         string(parsed.BetType),
		Sport:           parsed.Sport,
		GameDescription: parsed.GameDescription,
		Odds:            parsed.Odds,
		Stake:           parsed.Stake,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bet":        bet,
		"sportsbook": parsed.Sportsbook,
	})
}

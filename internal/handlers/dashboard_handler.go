package handlers

import (
	"net/http"
	"time"

	"bet-tracker/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	betService  *services.BetService
	viewService *services.ViewService
}

func NewDashboardHandler(betService *services.BetService, viewService *services.ViewService) *DashboardHandler {
	return &DashboardHandler{
		betService:  betService,
		viewService: viewService,
	}
}

// GetDashboard returns the current-week summary, all-time summary,
// per-type breakdown and recent bets
// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	bets, err := h.betService.ListBets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.viewService.Dashboard(bets, time.Now()))
}

// GetWeeklyHistory returns per-week summaries for every week with bets
// GET /api/history/weekly
func (h *DashboardHandler) GetWeeklyHistory(c *gin.Context) {
	bets, err := h.betService.ListBets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weeks": h.viewService.WeeklyHistory(bets),
	})
}

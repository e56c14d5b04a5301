package handler

import (
	"net/http"

	"github.com/osse101/TradeUp_Go/internal/domain"
)

// HandleListRarities returns the rarity ladder with display colours
// @Summary List rarities
// @Description Every rarity in ladder order with its colour, input size and next tier
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/rarities [get]
func HandleListRarities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ladder := domain.Ladder()
		respondJSON(w, http.StatusOK, DataResponse{Count: len(ladder), Data: ladder})
	}
}

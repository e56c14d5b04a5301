package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/TradeUp_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"not found", &domain.NotFoundError{Key: "7"}, http.StatusNotFound, `item not found: "7"`},
		{"wrapped not found", fmt.Errorf("lookup: %w", &domain.NotFoundError{Key: "7"}), http.StatusNotFound, "lookup: item not found"},
		{"invalid input", &domain.InvalidInputError{Reason: domain.ErrMsgMixedRarity}, http.StatusBadRequest, "invalid input: mixed rarity"},
		{"terminal rarity", &domain.TerminalRarityError{Rarity: domain.RarityExtraordinary}, http.StatusBadRequest, domain.ErrMsgTerminalRarity},
		{"unknown rarity", fmt.Errorf("%w: %q", domain.ErrUnknownRarity, "mythic"), http.StatusBadRequest, domain.ErrMsgUnknownRarity},
		{"internal", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Contains(t, msg, tt.expectedMsg)
		})
	}
}

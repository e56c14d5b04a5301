package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/logger"
	"github.com/osse101/TradeUp_Go/internal/metrics"
	"github.com/osse101/TradeUp_Go/internal/tradeup"
)

// TradeUpInput selects one catalog item, optionally with a float value
type TradeUpInput struct {
	ID    string   `json:"id" validate:"required,max=64"`
	Float *float64 `json:"float,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// TradeUpRequest is the body of POST /api/v1/tradeup
type TradeUpRequest struct {
	Inputs []TradeUpInput `json:"inputs" validate:"required,min=1,max=10,dive"`
}

// Analyzer computes a trade-up report
type Analyzer interface {
	Analyze(ctx context.Context, items []*domain.Item) (*tradeup.Report, error)
}

// ItemGetter resolves catalog IDs
type ItemGetter interface {
	Get(id string) (*domain.Item, error)
}

// TradeUpHandler serves trade-up analysis
type TradeUpHandler struct {
	items    ItemGetter
	analyzer Analyzer
}

// NewTradeUpHandler creates a trade-up handler
func NewTradeUpHandler(items ItemGetter, analyzer Analyzer) *TradeUpHandler {
	return &TradeUpHandler{items: items, analyzer: analyzer}
}

// HandleTradeUp resolves the requested inputs and returns the trade-up report.
// The input count is checked again by the engine against the rarity's required size.
// @Summary Analyze a trade-up
// @Description Resolves the inputs and returns the outcome distribution with predicted floats
// @Tags tradeup
// @Accept json
// @Produce json,plain
// @Param format query string false "json or text" Enums(json, text)
// @Param request body TradeUpRequest true "Trade-up inputs"
// @Success 200 {object} tradeup.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tradeup [post]
func (h *TradeUpHandler) HandleTradeUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := GetOptionalQueryParam(r, ParamFormat, FormatJSON)
		if format != FormatJSON && format != FormatText {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidFormat, format))
			return
		}

		var req TradeUpRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpTradeUp); err != nil {
			return
		}

		items, err := h.resolve(req.Inputs)
		if err != nil {
			respondServiceError(w, r, OpTradeUp, err)
			return
		}

		report, err := h.analyzer.Analyze(r.Context(), items)
		if err != nil {
			respondServiceError(w, r, OpTradeUp, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgTradeUpComputed,
			"input_rarity", report.InputRarity.String(),
			"outcomes", len(report.Outcomes))

		if format == FormatText {
			respondText(w, http.StatusOK, report.Text())
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// resolve looks up every input and attaches its float to a per-request copy
func (h *TradeUpHandler) resolve(inputs []TradeUpInput) ([]*domain.Item, error) {
	items := make([]*domain.Item, len(inputs))
	for i, in := range inputs {
		item, err := h.items.Get(in.ID)
		recordLookup(metrics.LookupKindID, err)
		if err != nil {
			return nil, err
		}
		if in.Float != nil {
			item = item.WithQuality(*in.Float)
		}
		items[i] = item
	}
	return items, nil
}

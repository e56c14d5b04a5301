package handler

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/metrics"
)

// CatalogReader is the read-only catalog surface the HTTP API needs
type CatalogReader interface {
	Len() int
	ListTradeableIDs() []string
	Get(id string) (*domain.Item, error)
	GetByName(name string) (*domain.Item, error)
	IDsByRarity(r domain.Rarity) []string
	Search(substr string) []string
	Collections() []domain.Collection
}

// CatalogHandlers serves item and collection lookups
type CatalogHandlers struct {
	catalog CatalogReader
}

// NewCatalogHandlers creates catalog handlers over c
func NewCatalogHandlers(c CatalogReader) *CatalogHandlers {
	return &CatalogHandlers{catalog: c}
}

// HandleListItems returns item IDs.
// Without filters it lists the tradeable items in catalog order. ?rarity= lists
// every item of that rarity and ?q= narrows to tradeable names containing the text.
// @Summary List item IDs
// @Description Lists tradeable item IDs, optionally filtered by rarity or name substring
// @Tags catalog
// @Produce json
// @Param rarity query string false "Rarity name, case-insensitive"
// @Param q query string false "Name substring"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/items [get]
func (h *CatalogHandlers) HandleListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rarityParam := GetOptionalQueryParam(r, ParamRarity, "")
		query := GetOptionalQueryParam(r, ParamQuery, "")

		var ids []string
		switch {
		case rarityParam != "":
			rarity, err := domain.ParseRarityFold(rarityParam)
			if err != nil {
				respondServiceError(w, r, OpListItems, err)
				return
			}
			ids = h.catalog.IDsByRarity(rarity)
			if query != "" {
				matches := h.catalog.Search(query)
				ids = slices.DeleteFunc(ids, func(id string) bool {
					return !slices.Contains(matches, id)
				})
			}
		case query != "":
			ids = h.catalog.Search(query)
		default:
			ids = h.catalog.ListTradeableIDs()
		}

		if ids == nil {
			ids = []string{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(ids), Data: ids})
	}
}

// HandleGetItem returns one item by its catalog ID
// @Summary Get item by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *CatalogHandlers) HandleGetItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, ParamID)

		item, err := h.catalog.Get(id)
		recordLookup(metrics.LookupKindID, err)
		if err != nil {
			respondServiceError(w, r, OpGetItem, err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleGetItemByName returns one item by its exact name.
// A miss responds 404 with the closest tradeable names as suggestions.
// @Summary Get item by name
// @Description Exact name lookup; a miss returns the closest names as suggestions
// @Tags catalog
// @Produce json
// @Param name query string true "Exact item name"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/by-name [get]
func (h *CatalogHandlers) HandleGetItemByName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, ParamName)
		if !ok {
			return
		}

		item, err := h.catalog.GetByName(name)
		recordLookup(metrics.LookupKindName, err)
		if err != nil {
			respondServiceError(w, r, OpGetItemByName, err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleListCollections returns the distinct collections in the catalog
// @Summary List collections
// @Tags catalog
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/collections [get]
func (h *CatalogHandlers) HandleListCollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collections := h.catalog.Collections()
		if collections == nil {
			collections = []domain.Collection{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Count: len(collections), Data: collections})
	}
}

func recordLookup(kind string, err error) {
	result := metrics.LookupResultHit
	if errors.Is(err, domain.ErrItemNotFound) {
		result = metrics.LookupResultMiss
	}
	metrics.CatalogLookups.WithLabelValues(kind, result).Inc()
}

// Package tradeup computes trade-up outcome distributions and output floats.
package tradeup

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/logger"
	"github.com/osse101/TradeUp_Go/internal/metrics"
)

// SiblingFinder enumerates the candidate outputs for one input item.
// *catalog.Catalog satisfies it.
type SiblingFinder interface {
	SiblingsAtNextRarity(item *domain.Item) []*domain.Item
}

// Outcome is one possible output item with its probability.
type Outcome struct {
	Item        *domain.Item `json:"item" yaml:"item"`
	Probability float64      `json:"probability" yaml:"probability"`
}

// Engine validates input sets and computes their outcome distribution.
// It holds no per-call state and is safe for concurrent use.
type Engine struct {
	siblings SiblingFinder
}

// NewEngine creates an engine that looks up candidates with siblings.
func NewEngine(siblings SiblingFinder) *Engine {
	return &Engine{siblings: siblings}
}

// ComputeOutcomes returns every reachable output item with its probability,
// sorted by probability descending and then by ID ascending.
//
// Each of the N input slots is picked with probability 1/N, and the output is
// uniform over that slot's M same-collection candidates one tier up. Slots with
// no candidates contribute nothing, so the total is below 1 when any input's
// collection has no successor. That mass is not redistributed.
func (e *Engine) ComputeOutcomes(ctx context.Context, items []*domain.Item) ([]Outcome, error) {
	log := logger.FromContext(ctx)

	rarity, err := validate(items)
	if err != nil {
		reason := rejectionReason(err)
		metrics.TradeUpsRejected.WithLabelValues(reason).Inc()
		log.Debug(LogMsgTradeUpRejected, LogFieldReason, reason, LogFieldError, err)
		return nil, err
	}

	n := len(items)

	// slotsByWidth[id][M] counts the input slots that reach id through a
	// candidate list of length M
	slotsByWidth := make(map[string]map[int]int)
	byID := make(map[string]*domain.Item)
	for _, in := range items {
		candidates := e.siblings.SiblingsAtNextRarity(in)
		m := len(candidates)
		if m == 0 {
			continue
		}
		for _, out := range candidates {
			widths, ok := slotsByWidth[out.ID]
			if !ok {
				widths = make(map[int]int)
				slotsByWidth[out.ID] = widths
				byID[out.ID] = out
			}
			widths[m]++
		}
	}

	outcomes := make([]Outcome, 0, len(byID))
	for id, widths := range slotsByWidth {
		outcomes = append(outcomes, Outcome{
			Item:        byID[id],
			Probability: probability(widths, n),
		})
	}

	slices.SortFunc(outcomes, func(a, b Outcome) int {
		if c := cmp.Compare(b.Probability, a.Probability); c != 0 {
			return c
		}
		return cmp.Compare(a.Item.ID, b.Item.ID)
	})

	metrics.TradeUpsComputed.WithLabelValues(rarity.String()).Inc()
	metrics.TradeUpOutcomeCount.Observe(float64(len(outcomes)))
	log.Debug(LogMsgTradeUpComputed,
		LogFieldRarity, rarity.String(),
		LogFieldInputs, n,
		LogFieldOutcomes, len(outcomes),
		LogFieldTotal, Total(outcomes))

	return outcomes, nil
}

// probability sums count/(n*m) over candidate widths in ascending order so
// the result does not depend on map iteration order
func probability(widths map[int]int, n int) float64 {
	ms := make([]int, 0, len(widths))
	for m := range widths {
		ms = append(ms, m)
	}
	slices.Sort(ms)

	var p float64
	for _, m := range ms {
		p += float64(widths[m]) / float64(n*m)
	}
	return p
}

// Total sums outcome probabilities in list order.
func Total(outcomes []Outcome) float64 {
	var total float64
	for _, o := range outcomes {
		total += o.Probability
	}
	return total
}

// validate checks slot presence, tradeability, a single shared rarity, and
// the count that rarity requires, in that order. It returns the shared rarity.
func validate(items []*domain.Item) (domain.Rarity, error) {
	if len(items) == 0 {
		return 0, &domain.InvalidInputError{Reason: domain.ErrMsgNoItemsSelected}
	}

	for i, it := range items {
		if it == nil {
			return 0, &domain.InvalidInputError{
				Reason: domain.ErrMsgEmptySlot,
				Detail: fmt.Sprintf(ErrFmtEmptySlot, i),
			}
		}
		if !it.Rarity.IsTradeable() {
			// Non-tradeable rarities are exactly those without a successor
			_, terminal := it.Rarity.Next()
			return 0, &domain.InvalidInputError{
				Reason: domain.ErrMsgNotTradeable,
				Detail: fmt.Sprintf(ErrFmtNotTradeable, i, it.Name, it.Rarity),
				Err:    terminal,
			}
		}
	}

	rarity := items[0].Rarity
	for i, it := range items[1:] {
		if it.Rarity != rarity {
			return 0, &domain.InvalidInputError{
				Reason: domain.ErrMsgMixedRarity,
				Detail: fmt.Sprintf(ErrFmtMixedRarity, i+1, it.Rarity, rarity),
			}
		}
	}

	if want := rarity.InputSize(); len(items) != want {
		return 0, &domain.InvalidInputError{
			Reason: domain.ErrMsgWrongCount,
			Detail: fmt.Sprintf(ErrFmtExpectedCount, want, rarity, len(items)),
		}
	}

	return rarity, nil
}

func rejectionReason(err error) string {
	var inv *domain.InvalidInputError
	if errors.As(err, &inv) {
		return inv.Reason
	}
	return domain.ErrMsgInvalidInput
}

package tradeup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TradeUp_Go/internal/catalog"
	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/metrics"
)

const epsilon = 1e-9

func rec(id, name string, r domain.Rarity, col domain.Collection, minF, maxF float64) domain.Record {
	return domain.Record{ID: id, Name: name, Rarity: r, Collection: col, MinFloat: minF, MaxFloat: maxF}
}

// testCatalog:
//
//	Alpha: 3 Mil-Spec -> 2 Restricted
//	Beta:  2 Mil-Spec -> none
//	Gamma: 2 Mil-Spec -> 3 Restricted
//	Delta: Classified -> 2 Covert -> 1 Extraordinary
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]domain.Record{
		rec("a-m1", "Alpha Mil One", domain.RarityMilSpec, "Alpha", 0, 1),
		rec("a-m2", "Alpha Mil Two", domain.RarityMilSpec, "Alpha", 0, 1),
		rec("a-m3", "Alpha Mil Three", domain.RarityMilSpec, "Alpha", 0, 1),
		rec("a-r2", "Alpha Res Two", domain.RarityRestricted, "Alpha", 0, 0.5),
		rec("a-r1", "Alpha Res One", domain.RarityRestricted, "Alpha", 0.1, 0.9),
		rec("b-m1", "Beta Mil One", domain.RarityMilSpec, "Beta", 0, 1),
		rec("b-m2", "Beta Mil Two", domain.RarityMilSpec, "Beta", 0, 1),
		rec("g-m1", "Gamma Mil One", domain.RarityMilSpec, "Gamma", 0, 1),
		rec("g-m2", "Gamma Mil Two", domain.RarityMilSpec, "Gamma", 0, 1),
		rec("g-r1", "Gamma Res One", domain.RarityRestricted, "Gamma", 0, 1),
		rec("g-r2", "Gamma Res Two", domain.RarityRestricted, "Gamma", 0, 1),
		rec("g-r3", "Gamma Res Three", domain.RarityRestricted, "Gamma", 0, 1),
		rec("d-c1", "Delta Classified", domain.RarityClassified, "Delta", 0, 1),
		rec("d-v1", "Delta Covert One", domain.RarityCovert, "Delta", 0, 0.8),
		rec("d-v2", "Delta Covert Two", domain.RarityCovert, "Delta", 0, 1),
		rec("d-k1", "Delta Knife", domain.RarityExtraordinary, "Delta", 0, 0.08),
		rec("n-m1", "Loose Mil", domain.RarityMilSpec, "", 0, 1),
		rec("x-1", "Contraband Rifle", domain.RarityContraband, "Delta", 0, 1),
	})
	require.NoError(t, err)
	return c
}

// pick returns count copies of id, each carrying quality q when q is non-nil.
func pick(t *testing.T, c *catalog.Catalog, id string, count int, q *float64) []*domain.Item {
	t.Helper()
	item, err := c.Get(id)
	require.NoError(t, err)
	out := make([]*domain.Item, count)
	for i := range out {
		if q != nil {
			out[i] = item.WithQuality(*q)
		} else {
			out[i] = item
		}
	}
	return out
}

func ptr(f float64) *float64 { return &f }

func concat(sets ...[]*domain.Item) []*domain.Item {
	var out []*domain.Item
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

func ids(outcomes []Outcome) []string {
	out := make([]string, len(outcomes))
	for i, o := range outcomes {
		out[i] = o.Item.ID
	}
	return out
}

func TestComputeOutcomes_SingleCollection(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	inputs := concat(
		pick(t, c, "a-m1", 4, nil),
		pick(t, c, "a-m2", 3, nil),
		pick(t, c, "a-m3", 3, nil),
	)

	outcomes, err := e.ComputeOutcomes(context.Background(), inputs)
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	assert.Equal(t, []string{"a-r1", "a-r2"}, ids(outcomes), "equal probabilities fall back to ID ascending")
	for _, o := range outcomes {
		assert.Equal(t, 0.5, o.Probability)
	}
	assert.InDelta(t, 1.0, Total(outcomes), epsilon)
}

func TestComputeOutcomes_LostMass(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	inputs := concat(
		pick(t, c, "a-m1", 1, nil),
		pick(t, c, "b-m1", 5, nil),
		pick(t, c, "b-m2", 4, nil),
	)

	outcomes, err := e.ComputeOutcomes(context.Background(), inputs)
	require.NoError(t, err)

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.InDelta(t, 0.05, o.Probability, epsilon)
	}
	assert.InDelta(t, 0.10, Total(outcomes), epsilon, "mass from collections without successors is dropped, not renormalized")
}

func TestComputeOutcomes_MixedCollections(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	// 4 Alpha slots over 2 candidates, 6 Gamma slots over 3 candidates
	inputs := concat(
		pick(t, c, "a-m1", 4, nil),
		pick(t, c, "g-m1", 3, nil),
		pick(t, c, "g-m2", 3, nil),
	)

	outcomes, err := e.ComputeOutcomes(context.Background(), inputs)
	require.NoError(t, err)

	require.Len(t, outcomes, 5)
	assert.Equal(t, []string{"a-r1", "a-r2", "g-r1", "g-r2", "g-r3"}, ids(outcomes))
	assert.InDelta(t, 0.2, outcomes[0].Probability, epsilon)
	assert.InDelta(t, 0.2, outcomes[2].Probability, epsilon)
	assert.InDelta(t, 1.0, Total(outcomes), epsilon)
}

func TestComputeOutcomes_SortedByProbability(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	// 8 Alpha slots (0.4 each), 2 Gamma slots (~0.0667 each)
	inputs := concat(
		pick(t, c, "g-m1", 2, nil),
		pick(t, c, "a-m1", 8, nil),
	)

	outcomes, err := e.ComputeOutcomes(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	for i := 1; i < len(outcomes); i++ {
		prev, cur := outcomes[i-1], outcomes[i]
		assert.True(t, prev.Probability > cur.Probability ||
			(prev.Probability == cur.Probability && prev.Item.ID < cur.Item.ID),
			"outcome %d out of order", i)
	}
	assert.Equal(t, "a-r1", outcomes[0].Item.ID)
}

func TestComputeOutcomes_CovertToExtraordinary(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	outcomes, err := e.ComputeOutcomes(context.Background(), pick(t, c, "d-v1", 5, nil))
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "d-k1", outcomes[0].Item.ID)
	assert.Equal(t, 1.0, outcomes[0].Probability)
}

func TestComputeOutcomes_InputSizeCoupling(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	tests := []struct {
		name    string
		id      string
		count   int
		wantErr bool
	}{
		{"10 covert rejected", "d-v1", 10, true},
		{"5 covert accepted", "d-v1", 5, false},
		{"5 classified rejected", "d-c1", 5, true},
		{"10 classified accepted", "d-c1", 10, false},
		{"9 mil-spec rejected", "a-m1", 9, true},
		{"11 mil-spec rejected", "a-m1", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ComputeOutcomes(context.Background(), pick(t, c, tt.id, tt.count, nil))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			var inv *domain.InvalidInputError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, domain.ErrMsgWrongCount, inv.Reason)
		})
	}
}

func TestComputeOutcomes_Rejections(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	tests := []struct {
		name         string
		inputs       func() []*domain.Item
		reason       string
		wantTerminal bool
	}{
		{
			name: "mixed rarity",
			inputs: func() []*domain.Item {
				return concat(pick(t, c, "a-m1", 9, nil), pick(t, c, "a-r1", 1, nil))
			},
			reason: domain.ErrMsgMixedRarity,
		},
		{
			name:         "extraordinary input",
			inputs:       func() []*domain.Item { return pick(t, c, "d-k1", 10, nil) },
			reason:       domain.ErrMsgNotTradeable,
			wantTerminal: true,
		},
		{
			name:         "contraband input",
			inputs:       func() []*domain.Item { return pick(t, c, "x-1", 10, nil) },
			reason:       domain.ErrMsgNotTradeable,
			wantTerminal: true,
		},
		{
			name:   "empty",
			inputs: func() []*domain.Item { return nil },
			reason: domain.ErrMsgNoItemsSelected,
		},
		{
			name: "nil slot",
			inputs: func() []*domain.Item {
				in := pick(t, c, "a-m1", 10, nil)
				in[3] = nil
				return in
			},
			reason: domain.ErrMsgEmptySlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.TradeUpsRejected.WithLabelValues(tt.reason))

			outcomes, err := e.ComputeOutcomes(context.Background(), tt.inputs())
			require.Error(t, err)
			assert.Nil(t, outcomes, "no partial result")

			var inv *domain.InvalidInputError
			require.True(t, errors.As(err, &inv))
			assert.Equal(t, tt.reason, inv.Reason)
			assert.Contains(t, err.Error(), tt.reason)
			assert.Equal(t, tt.wantTerminal, errors.Is(err, domain.ErrTerminalRarity))

			after := testutil.ToFloat64(metrics.TradeUpsRejected.WithLabelValues(tt.reason))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestComputeOutcomes_NoCollection(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	outcomes, err := e.ComputeOutcomes(context.Background(), pick(t, c, "n-m1", 10, nil))
	require.NoError(t, err)
	assert.Empty(t, outcomes)
	assert.Equal(t, 0.0, Total(outcomes))
}

func TestComputeOutcomes_Idempotent(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	inputs := concat(
		pick(t, c, "a-m1", 3, ptr(0.2)),
		pick(t, c, "g-m1", 4, ptr(0.3)),
		pick(t, c, "b-m1", 3, ptr(0.4)),
	)

	first, err := e.ComputeOutcomes(context.Background(), inputs)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := e.ComputeOutcomes(context.Background(), inputs)
		require.NoError(t, err)
		require.Equal(t, len(first), len(again))
		for j := range first {
			assert.Same(t, first[j].Item, again[j].Item)
			assert.Equal(t, first[j].Probability, again[j].Probability, "bit-identical probabilities")
		}
	}
}

func TestComputeOutcomes_ConcurrentCallers(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	inputs := concat(pick(t, c, "a-m1", 5, nil), pick(t, c, "g-m2", 5, nil))
	want, err := e.ComputeOutcomes(context.Background(), inputs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.ComputeOutcomes(context.Background(), inputs)
			if err != nil {
				errs <- err
				return
			}
			if fmt.Sprint(ids(got)) != fmt.Sprint(ids(want)) {
				errs <- fmt.Errorf("order differs: %v vs %v", ids(got), ids(want))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestComputeOutcomes_RecordsMetrics(t *testing.T) {
	c := testCatalog(t)
	e := NewEngine(c)

	counter := metrics.TradeUpsComputed.WithLabelValues(domain.RarityNameMilSpec)
	before := testutil.ToFloat64(counter)

	_, err := e.ComputeOutcomes(context.Background(), pick(t, c, "a-m1", 10, nil))
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

// stubFinder returns fixed candidates so probability arithmetic can be checked in isolation
type stubFinder map[string][]*domain.Item

func (s stubFinder) SiblingsAtNextRarity(item *domain.Item) []*domain.Item {
	return s[item.ID]
}

func TestComputeOutcomes_SharedOutputAcrossWidths(t *testing.T) {
	shared := domain.NewItem(rec("out", "Shared", domain.RarityRestricted, "X", 0, 1))
	other := domain.NewItem(rec("other", "Other", domain.RarityRestricted, "X", 0, 1))
	in1 := domain.NewItem(rec("in1", "In One", domain.RarityMilSpec, "X", 0, 1))
	in2 := domain.NewItem(rec("in2", "In Two", domain.RarityMilSpec, "Y", 0, 1))

	finder := stubFinder{
		"in1": {shared},
		"in2": {shared, other},
	}
	e := NewEngine(finder)

	inputs := make([]*domain.Item, 0, 10)
	for i := 0; i < 5; i++ {
		inputs = append(inputs, in1, in2)
	}

	outcomes, err := e.ComputeOutcomes(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	// shared: 5 slots * 1/10 * 1 + 5 slots * 1/10 * 1/2 = 0.75
	assert.Equal(t, "out", outcomes[0].Item.ID)
	assert.InDelta(t, 0.75, outcomes[0].Probability, epsilon)
	assert.InDelta(t, 0.25, outcomes[1].Probability, epsilon)
	assert.InDelta(t, 1.0, Total(outcomes), epsilon)
}

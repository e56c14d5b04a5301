package tradeup

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/TradeUp_Go/internal/domain"
)

// ReportOutcome is an outcome with its remapped output float.
// Float is nil when no input has a quality set.
type ReportOutcome struct {
	Item        *domain.Item `json:"item" yaml:"item"`
	Probability float64      `json:"probability" yaml:"probability"`
	Float       *float64     `json:"float" yaml:"float"`
	Wear        domain.Wear  `json:"wear,omitempty" yaml:"wear,omitempty"`
}

// Report is the full analysis of one trade-up input set.
type Report struct {
	InputRarity  domain.Rarity       `json:"input_rarity" yaml:"input_rarity" swaggertype:"string"`
	TargetRarity domain.Rarity       `json:"target_rarity" yaml:"target_rarity" swaggertype:"string"`
	Collections  []domain.Collection `json:"collections" yaml:"collections"`
	Inputs       []*domain.Item      `json:"inputs" yaml:"inputs"`
	Outcomes     []ReportOutcome     `json:"outcomes" yaml:"outcomes"`
	Total        float64             `json:"total_probability" yaml:"total_probability"`
}

// Analyze computes the outcomes of items and bundles them with the output
// float for each outcome and the distinct input collections.
func (e *Engine) Analyze(ctx context.Context, items []*domain.Item) (*Report, error) {
	outcomes, err := e.ComputeOutcomes(ctx, items)
	if err != nil {
		return nil, err
	}

	// Validated above, so the rarity is tradeable and has a successor
	inputRarity := items[0].Rarity
	target, err := inputRarity.Next()
	if err != nil {
		return nil, err
	}

	qualities := Qualities(items)
	report := &Report{
		InputRarity:  inputRarity,
		TargetRarity: target,
		Collections:  distinctCollections(items),
		Inputs:       items,
		Outcomes:     make([]ReportOutcome, len(outcomes)),
		Total:        Total(outcomes),
	}
	for i, o := range outcomes {
		ro := ReportOutcome{Item: o.Item, Probability: o.Probability}
		if f, ok := Remap(qualities, o.Item.MinFloat, o.Item.MaxFloat); ok {
			ro.Float = &f
			ro.Wear = domain.WearFor(f)
		}
		report.Outcomes[i] = ro
	}
	return report, nil
}

// distinctCollections returns the non-empty input collections in English collation order
func distinctCollections(items []*domain.Item) []domain.Collection {
	seen := make(map[domain.Collection]bool)
	names := make([]string, 0)
	for _, it := range items {
		if it.Collection.IsZero() || seen[it.Collection] {
			continue
		}
		seen[it.Collection] = true
		names = append(names, string(it.Collection))
	}

	collate.New(language.English, collate.Loose).SortStrings(names)

	out := make([]domain.Collection, len(names))
	for i, n := range names {
		out[i] = domain.Collection(n)
	}
	return out
}

// exactDecimal returns the exact decimal value of the binary float f
func exactDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(f, exactExponent)
}

// fixed rounds f to places decimals, half to even on the exact binary value.
// This matches printf-style float formatting rather than rounding the shortest
// decimal form, so 0.11499999999999999 renders as 0.11 and not 0.12.
func fixed(f float64, places int32) string {
	return exactDecimal(f).RoundBank(places).StringFixed(places)
}

// FormatPercent renders a probability as a percentage with two decimals, without the sign.
// The value is scaled in float64 before rounding.
func FormatPercent(p float64) string {
	return fixed(p*100, PercentPlaces)
}

// FormatFloat renders an output float with four decimals, or "N/A" when undefined.
func FormatFloat(f *float64) string {
	if f == nil {
		return ReportFloatNotDefined
	}
	return fixed(*f, FloatPlaces)
}

func formatQuality(q *float64) string {
	if q == nil {
		return ReportQualityNotSet
	}
	return fixed(*q, FloatPlaces)
}

// Text renders the report as plain text.
func (r *Report) Text() string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(ReportHeaderSelected)
	for _, in := range r.Inputs {
		line(ReportFmtSelectedItem, in.Name, formatQuality(in.Quality))
	}

	line("")
	line(ReportHeaderRarityCheck)
	line(ReportFmtSameRarity, r.InputRarity)
	line(ReportFmtTargetRarity, r.TargetRarity)

	line("")
	line(ReportHeaderCollections)
	for _, c := range r.Collections {
		line(ReportFmtCollection, c)
	}

	line("")
	line(ReportHeaderOutcomes)
	for _, o := range r.Outcomes {
		line(ReportFmtOutcome, o.Item.Name, FormatPercent(o.Probability), FormatFloat(o.Float))
	}
	line(ReportFmtTotal, FormatPercent(r.Total))

	return b.String()
}

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/TradeUp_Go/internal/catalog"
	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/tradeup"
)

// ErrInvalidArgument is returned for calc arguments that do not parse
var ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

// inputSpec is one parsed calc argument
type inputSpec struct {
	id    string
	float *float64
}

// parseInput parses "id" or "id=float". Floats must lie in [0, 1].
func parseInput(arg string) (inputSpec, error) {
	id, raw, hasFloat := strings.Cut(arg, inputFloatSep)
	id = strings.TrimSpace(id)
	if id == "" {
		return inputSpec{}, fmt.Errorf(ErrFmtInvalidInput, ErrInvalidArgument, arg, ErrMsgEmptyItemID)
	}
	if !hasFloat {
		return inputSpec{id: id}, nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return inputSpec{}, fmt.Errorf(ErrFmtInvalidFloat, ErrInvalidArgument, arg, err)
	}
	if f < 0 || f > 1 {
		return inputSpec{}, fmt.Errorf(ErrFmtInvalidInput, ErrInvalidArgument, arg, ErrMsgFloatOutOfRange)
	}
	return inputSpec{id: id, float: &f}, nil
}

// resolveInputs looks up each input and attaches its float to a per-call copy
func resolveInputs(c *catalog.Catalog, specs []inputSpec) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(specs))
	for _, s := range specs {
		item, err := c.Get(s.id)
		if err != nil {
			return nil, err
		}
		if s.float != nil {
			item = item.WithQuality(*s.float)
		}
		items = append(items, item)
	}
	return items, nil
}

func newCalcCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <id[=float]>...",
		Short: "Compute trade-up outcomes for a set of input items",
		Long: `Compute the outcome probabilities of a trade-up contract.

Pass 10 item IDs (5 for Covert inputs). Repeat an ID to use several copies.
Append =float to set an input's float; inputs without one are left out of
the output float average.`,
		Example: `  tradeup calc 101=0.12 101=0.12 102 102 102 103 103 103 104 104
  tradeup calc 7=0.05 7=0.05 7=0.05 8=0.2 8=0.2 -o json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(ErrMsgNoInputs)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]inputSpec, len(args))
			for i, arg := range args {
				s, err := parseInput(arg)
				if err != nil {
					return err
				}
				specs[i] = s
			}

			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			items, err := resolveInputs(c, specs)
			if err != nil {
				return err
			}

			report, err := tradeup.NewEngine(c).Analyze(cmd.Context(), items)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, opts.output, report); ok {
				return err
			}
			_, err = fmt.Fprint(w, report.Text())
			return err
		},
	}
}

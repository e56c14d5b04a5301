package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/TradeUp_Go/internal/catalog"
	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/tradeup"
)

func newItemsCmd(opts *options) *cobra.Command {
	var rarity, search string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List tradeable items",
		Long: `List tradeable items in catalog order.

--rarity lists every item of that rarity, including non-tradeable tiers.
--search keeps tradeable items whose name contains the text (case-insensitive).

Example:
  tradeup items --rarity covert
  tradeup items --search asiimov -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			ids, err := filterIDs(c, rarity, search)
			if err != nil {
				return err
			}

			items := make([]*domain.Item, 0, len(ids))
			for _, id := range ids {
				item, err := c.Get(id)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, opts.output, items); ok {
				return err
			}
			return printItemTable(w, items)
		},
	}

	cmd.Flags().StringVar(&rarity, "rarity", "", "Only items of this rarity (e.g. \"Mil-Spec Grade\", covert)")
	cmd.Flags().StringVar(&search, "search", "", "Only items whose name contains this text")
	return cmd
}

// filterIDs applies the optional rarity and name filters
func filterIDs(c *catalog.Catalog, rarity, search string) ([]string, error) {
	var ids []string
	if rarity != "" {
		r, err := domain.ParseRarityFold(rarity)
		if err != nil {
			return nil, err
		}
		ids = c.IDsByRarity(r)
	} else {
		ids = c.ListTradeableIDs()
	}

	if search != "" {
		matches := c.Search(search)
		ids = slices.DeleteFunc(ids, func(id string) bool {
			return !slices.Contains(matches, id)
		})
	}
	return ids, nil
}

func printItemTable(w io.Writer, items []*domain.Item) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, HeaderItemTable)
	for _, it := range items {
		fmt.Fprintf(tw, FmtItemTableRow,
			it.ID, it.Name, it.Rarity, it.Rarity.Color(), it.Collection,
			tradeup.FormatFloat(&it.MinFloat), tradeup.FormatFloat(&it.MaxFloat))
	}
	fmt.Fprintf(tw, FmtItemTableTotal, len(items))
	return tw.Flush()
}

func newItemCmd(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "item [id]",
		Short: "Show one item by ID or exact name",
		Example: `  tradeup item 12
  tradeup item --name "AWP | Asiimov"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if name == "" && len(args) != 1 {
				return errors.New(ErrMsgItemSelector)
			}
			if name != "" && len(args) != 0 {
				return errors.New(ErrMsgBothSelectors)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			var item *domain.Item
			if name != "" {
				item, err = c.GetByName(name)
			} else {
				item, err = c.Get(args[0])
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, opts.output, item); ok {
				return err
			}
			printItem(w, item)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Exact item name")
	return cmd
}

func printItem(w io.Writer, it *domain.Item) {
	fmt.Fprintf(w, FmtItemID, it.ID)
	fmt.Fprintf(w, FmtItemName, it.Name)
	fmt.Fprintf(w, FmtItemWeapon, it.Weapon)
	fmt.Fprintf(w, FmtItemRarity, it.Rarity, it.Rarity.Color())
	fmt.Fprintf(w, FmtItemCollection, it.Collection)
	fmt.Fprintf(w, FmtItemFloatRange, tradeup.FormatFloat(&it.MinFloat), tradeup.FormatFloat(&it.MaxFloat))
	fmt.Fprintf(w, FmtItemStatTrak, it.StatTrak)
	if len(it.Crates) > 0 {
		fmt.Fprintf(w, FmtItemCrates, strings.Join(it.Crates, ", "))
	}
}

func newCollectionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the collections in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			collections := c.Collections()
			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, opts.output, collections); ok {
				return err
			}
			for _, col := range collections {
				fmt.Fprintln(w, col)
			}
			return nil
		},
	}
}

func newRaritiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rarities",
		Short: "Show the rarity ladder with colours and trade-up input sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ladder := domain.Ladder()

			w := cmd.OutOrStdout()
			if ok, err := writeStructured(w, opts.output, ladder); ok {
				return err
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, HeaderRarityTable)
			for _, info := range ladder {
				next := NoNextRarity
				if info.Next != nil {
					next = info.Next.String()
				}
				fmt.Fprintf(tw, FmtRarityTableRow, info.Rarity, info.Color, info.Tradeable, info.InputSize, next)
			}
			return tw.Flush()
		},
	}
}

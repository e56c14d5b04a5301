package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/TradeUp_Go/internal/catalog"
	"github.com/osse101/TradeUp_Go/internal/bootstrap"
	"github.com/osse101/TradeUp_Go/internal/config"
	"github.com/osse101/TradeUp_Go/internal/logger"
)

// options holds global flag values shared by every subcommand
type options struct {
	output          string
	source          string
	itemsPath       string
	collectionsPath string
	catalogJSON     string
	logLevel        string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tradeup",
		Short: "Trade-up contract calculator",
		Long: `tradeup computes the possible outputs of a trade-up contract.

Ten items of one rarity (five for Covert) are exchanged for one item of the
next rarity, drawn from the collections the inputs belong to.

Commands:
  items        List tradeable items
  item         Show one item by ID or name
  collections  List collections
  rarities     Show the rarity ladder
  calc         Compute outcome probabilities and output floats
  migrate      Apply database migrations (postgres source)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", OutputText, "Output format (text, json, yaml)")
	flags.StringVar(&opts.source, "source", "", "Catalog source (csv, json, postgres); default from CATALOG_SOURCE")
	flags.StringVar(&opts.itemsPath, "items", "", "Items CSV path; default from ITEMS_PATH")
	flags.StringVar(&opts.collectionsPath, "collections", "", "Item to collection mapping CSV path; default from COLLECTIONS_PATH")
	flags.StringVar(&opts.catalogJSON, "catalog-json", "", "Catalog JSON path; default from CATALOG_JSON_PATH")
	flags.StringVar(&opts.logLevel, "log-level", logger.LogLevelWarn, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newItemsCmd(opts),
		newItemCmd(opts),
		newCollectionsCmd(opts),
		newRaritiesCmd(opts),
		newCalcCmd(opts),
		newMigrateCmd(opts),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides and sets up logging on stderr
func (o *options) setup(cmd *cobra.Command) error {
	switch o.output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf(ErrFmtUnknownOutput, o.output)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.source != "" {
		cfg.CatalogSource = strings.ToLower(o.source)
	}
	if o.itemsPath != "" {
		cfg.ItemsPath = o.itemsPath
	}
	if cmd.Flags().Changed("collections") {
		cfg.CollectionsPath = o.collectionsPath
	}
	if o.catalogJSON != "" {
		cfg.CatalogJSONPath = o.catalogJSON
	}
	o.cfg = cfg

	logger.InitLoggerWithWriter(logger.NewConfig(
		o.logLevel, logger.LogFormatText, cfg.ServiceName, cfg.Version, cfg.Environment, false,
	), cmd.ErrOrStderr())

	return nil
}

// loadCatalog validates the source settings and loads the catalog
func (o *options) loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	return bootstrap.LoadCatalog(cmd.Context(), o.cfg)
}

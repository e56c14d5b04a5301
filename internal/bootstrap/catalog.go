package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/TradeUp_Go/internal/catalog"
	"github.com/osse101/TradeUp_Go/internal/catalog/source"
	"github.com/osse101/TradeUp_Go/internal/config"
	"github.com/osse101/TradeUp_Go/internal/database"
	"github.com/osse101/TradeUp_Go/internal/database/postgres"
	"github.com/osse101/TradeUp_Go/internal/logger"
	"github.com/osse101/TradeUp_Go/internal/metrics"
	"github.com/osse101/TradeUp_Go/internal/validation"
)

// OpenSource returns the catalog source selected by cfg.CatalogSource.
// The returned close func releases any resources the source holds and is never nil.
func OpenSource(ctx context.Context, cfg *config.Config) (source.Source, func(), error) {
	noop := func() {}

	switch cfg.CatalogSource {
	case config.SourceCSV:
		items, err := validation.ResolvePath(cfg.ItemsPath)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedResolvePath, err)
		}
		collections := cfg.CollectionsPath
		if collections != "" {
			if collections, err = validation.ResolvePath(collections); err != nil {
				return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedResolvePath, err)
			}
		}
		return source.NewCSVSource(items, collections), noop, nil

	case config.SourceJSON:
		path, err := validation.ResolvePath(cfg.CatalogJSONPath)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedResolvePath, err)
		}
		return source.NewJSONSource(path), noop, nil

	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
			MaxConns:    cfg.DBMaxConns,
			MaxIdleTime: cfg.DBMaxConnIdleTime,
			MaxLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgFailedOpenPool, err)
		}
		closeFn := func() {
			logger.FromContext(ctx).Debug(LogMsgClosingPool)
			pool.Close()
		}
		return postgres.NewCatalogSource(pool), closeFn, nil
	}

	return nil, noop, fmt.Errorf(ErrFmtUnknownSource, cfg.CatalogSource)
}

// LoadCatalog reads every record from the configured source once and builds the catalog.
// Database connections are released before returning; the catalog is self-contained.
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	src, closeSource, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	return BuildCatalog(ctx, src)
}

// BuildCatalog reads src and indexes its records
func BuildCatalog(ctx context.Context, src source.Source) (*catalog.Catalog, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadCatalog, err)
	}

	c, err := catalog.New(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildIndex, err)
	}

	metrics.CatalogItems.Set(float64(c.Len()))
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"items", c.Len(),
		"tradeable", len(c.ListTradeableIDs()),
		"collections", len(c.Collections()))

	return c, nil
}

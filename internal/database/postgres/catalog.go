package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TradeUp_Go/internal/catalog/source"
	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/logger"
)

// Numeric IDs sort naturally when shorter IDs come first
const selectItemMetadata = `
SELECT id, name, min_float, max_float, rarity, weapon, stattrack, crates, collections
FROM item_metadata
ORDER BY length(id), id`

// itemMetadataRow mirrors one item_metadata row
type itemMetadataRow struct {
	ID          string      `db:"id"`
	Name        string      `db:"name"`
	MinFloat    float64     `db:"min_float"`
	MaxFloat    float64     `db:"max_float"`
	Rarity      string      `db:"rarity"`
	Weapon      pgtype.Text `db:"weapon"`
	StatTrak    int16       `db:"stattrack"`
	Crates      pgtype.Text `db:"crates"`
	Collections pgtype.Text `db:"collections"`
}

// CatalogSource reads catalog records from the item_metadata table.
// It never writes.
type CatalogSource struct {
	pool *pgxpool.Pool
}

var _ source.Source = (*CatalogSource)(nil)

// NewCatalogSource creates a catalog source backed by pool
func NewCatalogSource(pool *pgxpool.Pool) *CatalogSource {
	return &CatalogSource{pool: pool}
}

// Records loads every item_metadata row
func (s *CatalogSource) Records(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.pool.Query(ctx, selectItemMetadata)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToQueryItemMetadata, err)
	}

	metadata, err := pgx.CollectRows(rows, pgx.RowToStructByName[itemMetadataRow])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToScanItemMetadata, err)
	}

	records := make([]domain.Record, 0, len(metadata))
	for _, row := range metadata {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	logger.FromContext(ctx).Info(LogMsgLoadedCatalogFromDB, "records", len(records))
	return records, nil
}

func (r itemMetadataRow) toRecord() (domain.Record, error) {
	rarity, err := domain.ParseRarity(r.Rarity)
	if err != nil {
		return domain.Record{}, fmt.Errorf(ErrFmtItemMetadataRow, source.ErrMalformedRow, r.ID, err)
	}

	crates, _ := source.ParseCrateList(r.Crates.String)

	return domain.Record{
		ID:         r.ID,
		Name:       r.Name,
		Weapon:     r.Weapon.String,
		Rarity:     rarity,
		Collection: domain.Collection(r.Collections.String),
		MinFloat:   r.MinFloat,
		MaxFloat:   r.MaxFloat,
		StatTrak:   r.StatTrak != 0,
		Crates:     crates,
	}, nil
}

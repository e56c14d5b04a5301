// Package source loads catalog records from the supported backing stores.
package source

import (
	"context"
	"errors"

	"github.com/osse101/TradeUp_Go/internal/domain"
)

// Sentinel errors for catalog sources
var (
	ErrMalformedRow   = errors.New(ErrMsgMalformedRow)
	ErrMissingColumn  = errors.New(ErrMsgMissingColumn)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
)

// Source yields catalog records in source order.
type Source interface {
	Records(ctx context.Context) ([]domain.Record, error)
}

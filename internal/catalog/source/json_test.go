package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/validation"
)

func TestJSONSource_Records(t *testing.T) {
	path := writeTemp(t, "catalog.json", `{
		"version": "1.0",
		"items": [
			{"id": "1", "name": "AK-47 | Redline", "weapon": "AK-47", "rarity": "Classified",
			 "collection": "The Phoenix Collection", "min_float": 0.1, "max_float": 0.7,
			 "stattrak": true, "crates": ["Operation Phoenix Weapon Case"]},
			{"id": "2", "name": "Karambit | Fade", "rarity": "Extraordinary", "min_float": 0, "max_float": 0.08}
		]
	}`)

	records, err := NewJSONSource(path).Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, domain.Record{
		ID:         "1",
		Name:       "AK-47 | Redline",
		Weapon:     "AK-47",
		Rarity:     domain.RarityClassified,
		Collection: "The Phoenix Collection",
		MinFloat:   0.1,
		MaxFloat:   0.7,
		StatTrak:   true,
		Crates:     []string{"Operation Phoenix Weapon Case"},
	}, records[0])

	assert.True(t, records[1].Collection.IsZero())
	assert.Equal(t, []string{}, records[1].Crates)
}

func TestJSONSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown rarity",
			content: `{"version": "1.0", "items": [{"id": "1", "name": "X", "rarity": "Legendary", "min_float": 0, "max_float": 1}]}`,
			wantErr: validation.ErrSchemaViolation,
		},
		{
			name:    "float out of range",
			content: `{"version": "1.0", "items": [{"id": "1", "name": "X", "rarity": "Covert", "min_float": 0, "max_float": 1.2}]}`,
			wantErr: validation.ErrSchemaViolation,
		},
		{
			name:    "unknown field",
			content: `{"version": "1.0", "items": [{"id": "1", "name": "X", "rarity": "Covert", "min_float": 0, "max_float": 1, "price": 3}]}`,
			wantErr: validation.ErrSchemaViolation,
		},
		{
			name:    "missing version",
			content: `{"items": []}`,
			wantErr: ErrInvalidCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "catalog.json", tt.content)
			_, err := NewJSONSource(path).Records(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJSONSource_SampleDataMatchesCSV(t *testing.T) {
	ctx := context.Background()

	fromJSON, err := NewJSONSource("../../../configs/catalog/catalog.json").Records(ctx)
	require.NoError(t, err)

	fromCSV, err := NewCSVSource("../../../configs/catalog/items.csv", "../../../configs/catalog/item_collection_mapping.csv").Records(ctx)
	require.NoError(t, err)

	assert.Equal(t, fromCSV, fromJSON)
}

package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/logger"
	"github.com/osse101/TradeUp_Go/internal/naming"
)

// Sentinel errors for catalog construction
var (
	ErrNoRecords     = errors.New(ErrMsgNoRecords)
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrDuplicateName = errors.New("duplicate item name")
)

// rarityCollection keys the (rarity, collection) index
type rarityCollection struct {
	rarity     domain.Rarity
	collection domain.Collection
}

// Catalog is the load-once, read-only item repository.
// All lookups are safe for concurrent use.
type Catalog struct {
	records []domain.Record // source order
	byID    map[string]int  // id -> index into records

	byRarity           map[domain.Rarity][]string
	byRarityCollection map[rarityCollection][]string
	collections        []domain.Collection
	tradeableIDs       []string

	names naming.Resolver
	cache *itemCache
}

// New builds a catalog from records in source order.
// Records are validated; duplicate IDs or names fail the build.
func New(records []domain.Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	cache, err := newItemCache(len(records))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtCreateCache, err)
	}

	c := &Catalog{
		records:            make([]domain.Record, 0, len(records)),
		byID:               make(map[string]int, len(records)),
		byRarity:           make(map[domain.Rarity][]string),
		byRarityCollection: make(map[rarityCollection][]string),
		names:              naming.NewResolver(),
		cache:              cache,
	}

	nameOwner := make(map[string]string, len(records))
	seenCollections := make(map[domain.Collection]bool)
	withoutCollection := 0

	for i := range records {
		rec := records[i]
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf(ErrFmtRecordAtIndex, i, err)
		}
		if _, dup := c.byID[rec.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateID, ErrDuplicateID, rec.ID)
		}
		if owner, dup := nameOwner[rec.Name]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateName, rec.Name, owner, rec.ID)
		}
		nameOwner[rec.Name] = rec.ID

		rec.Crates = append([]string(nil), rec.Crates...)
		c.byID[rec.ID] = len(c.records)
		c.records = append(c.records, rec)

		c.byRarity[rec.Rarity] = append(c.byRarity[rec.Rarity], rec.ID)
		key := rarityCollection{rarity: rec.Rarity, collection: rec.Collection}
		c.byRarityCollection[key] = append(c.byRarityCollection[key], rec.ID)

		if rec.Collection.IsZero() {
			withoutCollection++
		} else if !seenCollections[rec.Collection] {
			seenCollections[rec.Collection] = true
			c.collections = append(c.collections, rec.Collection)
		}

		if rec.Rarity != domain.RarityExtraordinary && rec.Rarity != domain.RarityContraband {
			c.tradeableIDs = append(c.tradeableIDs, rec.ID)
			c.names.RegisterItem(rec.ID, rec.Name)
		}
	}

	sort.Slice(c.collections, func(i, j int) bool { return c.collections[i] < c.collections[j] })

	if withoutCollection > 0 {
		logger.Debug(LogMsgNoCollectionRecords, LogFieldCount, withoutCollection)
	}
	logger.Info(LogMsgCatalogBuilt,
		LogFieldItems, len(c.records),
		LogFieldTradeable, len(c.tradeableIDs),
		LogFieldCollections, len(c.collections))

	return c, nil
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ListTradeableIDs returns every ID except Extraordinary and Contraband items, in source order.
func (c *Catalog) ListTradeableIDs() []string {
	return append([]string(nil), c.tradeableIDs...)
}

// Get returns the memoized item for id.
func (c *Catalog) Get(id string) (*domain.Item, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Key: id}
	}
	return c.cache.getOrCreate(id, func() *domain.Item {
		return domain.NewItem(c.records[idx])
	}), nil
}

// GetByName returns the memoized item whose name matches exactly.
// On a miss the error carries close names as suggestions; the lookup itself is never fuzzy.
func (c *Catalog) GetByName(name string) (*domain.Item, error) {
	id, ok := c.names.Resolve(name)
	if !ok {
		// Extraordinary and Contraband items are not in the resolver but are still valid lookups
		for i := range c.records {
			if c.records[i].Name == name {
				return c.Get(c.records[i].ID)
			}
		}
		return nil, &domain.NotFoundError{
			Key:         name,
			Suggestions: c.names.Suggest(name, naming.DefaultSuggestionLimit),
		}
	}
	return c.Get(id)
}

// SiblingsAtNextRarity returns the items one rarity above item in the same collection.
// The result is empty when the item has no collection, its rarity is terminal,
// or the collection has nothing at the next tier.
func (c *Catalog) SiblingsAtNextRarity(item *domain.Item) []*domain.Item {
	if item == nil || item.Collection.IsZero() {
		return nil
	}
	next, err := item.Rarity.Next()
	if err != nil {
		return nil
	}

	ids := c.byRarityCollection[rarityCollection{rarity: next, collection: item.Collection}]
	siblings := make([]*domain.Item, 0, len(ids))
	for _, id := range ids {
		sibling, err := c.Get(id)
		if err != nil {
			// Index and records are built together; a miss here is a programming error
			panic(fmt.Sprintf("catalog index references unknown id %q", id))
		}
		siblings = append(siblings, sibling)
	}
	return siblings
}

// IDsByRarity returns the IDs at rarity r in source order.
func (c *Catalog) IDsByRarity(r domain.Rarity) []string {
	return append([]string(nil), c.byRarity[r]...)
}

// Search returns the IDs of tradeable items whose name contains substr, case-insensitively.
func (c *Catalog) Search(substr string) []string {
	return c.names.Search(substr)
}

// Collections returns the distinct non-empty collections, sorted.
func (c *Catalog) Collections() []domain.Collection {
	return append([]domain.Collection(nil), c.collections...)
}

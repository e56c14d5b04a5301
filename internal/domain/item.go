package domain

import "fmt"

// Collection names the grouping an item belongs to.
// The empty Collection means the item has no collection and never takes part in a trade-up.
type Collection string

// IsZero reports whether the collection is absent.
func (c Collection) IsZero() bool {
	return c == ""
}

// Record holds the immutable catalog data for one item.
type Record struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Weapon     string     `json:"weapon" yaml:"weapon"`
	Rarity     Rarity     `json:"rarity" yaml:"rarity" swaggertype:"string"`
	Collection Collection `json:"collection,omitempty" yaml:"collection,omitempty"`
	MinFloat   float64    `json:"min_float" yaml:"min_float"`
	MaxFloat   float64    `json:"max_float" yaml:"max_float"`
	StatTrak   bool       `json:"stattrak" yaml:"stattrak"`
	Crates     []string   `json:"crates" yaml:"crates"`
}

// Validate checks the record invariants.
func (r *Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, ErrMsgEmptyID)
	}
	if r.Name == "" {
		return fmt.Errorf(ErrFmtRecordEmptyName, ErrInvalidRecord, r.ID)
	}
	if !r.Rarity.Valid() {
		return fmt.Errorf(ErrFmtRecordBadRarity, ErrInvalidRecord, r.ID)
	}
	if r.MinFloat < 0 || r.MaxFloat > 1 || r.MinFloat > r.MaxFloat {
		return fmt.Errorf(ErrFmtRecordBadFloatRange, ErrInvalidRecord, r.ID, r.MinFloat, r.MaxFloat)
	}
	return nil
}

// Item is a catalog record with an optional per-instance quality ("float") value.
// Items handed out by the catalog carry no quality; use WithQuality to get an
// instance for a computation without touching the shared catalog entry.
type Item struct {
	Record  `yaml:",inline"`
	Quality *float64 `json:"float,omitempty" yaml:"float,omitempty"`
}

// NewItem creates an item with unset quality from a record.
func NewItem(rec Record) *Item {
	return &Item{Record: rec}
}

// WithQuality returns a copy of the item carrying quality q.
func (i *Item) WithQuality(q float64) *Item {
	cp := *i
	cp.Quality = &q
	return &cp
}

// HasQuality reports whether a quality value has been assigned.
func (i *Item) HasQuality() bool {
	return i.Quality != nil
}

func (i *Item) String() string {
	return fmt.Sprintf("Item(id=%s, name=%q, rarity=%s)", i.ID, i.Name, i.Rarity)
}

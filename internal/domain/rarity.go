package domain

import (
	"fmt"
	"strings"
)

// Rarity is the ordered tier an item belongs to.
// The zero value is not a valid rarity; rarities are parsed from catalog data.
type Rarity int

const (
	RarityConsumer Rarity = iota + 1
	RarityIndustrial
	RarityMilSpec
	RarityRestricted
	RarityClassified
	RarityCovert
	RarityExtraordinary
	RarityContraband
)

// Canonical rarity names as they appear in catalog data
const (
	RarityNameConsumer      = "Consumer Grade"
	RarityNameIndustrial    = "Industrial Grade"
	RarityNameMilSpec       = "Mil-Spec Grade"
	RarityNameRestricted    = "Restricted"
	RarityNameClassified    = "Classified"
	RarityNameCovert        = "Covert"
	RarityNameExtraordinary = "Extraordinary"
	RarityNameContraband    = "Contraband"
)

// Trade-up input sizes
const (
	TradeUpInputSize       = 10
	TradeUpInputSizeCovert = 5
)

var rarityNames = map[Rarity]string{
	RarityConsumer:      RarityNameConsumer,
	RarityIndustrial:    RarityNameIndustrial,
	RarityMilSpec:       RarityNameMilSpec,
	RarityRestricted:    RarityNameRestricted,
	RarityClassified:    RarityNameClassified,
	RarityCovert:        RarityNameCovert,
	RarityExtraordinary: RarityNameExtraordinary,
	RarityContraband:    RarityNameContraband,
}

// rarityColors mirrors the colour coding used when listing items
var rarityColors = map[Rarity]string{
	RarityConsumer:      "#808080",
	RarityIndustrial:    "#D3D3D3",
	RarityMilSpec:       "#0000FF",
	RarityRestricted:    "#800080",
	RarityClassified:    "#FFA500",
	RarityCovert:        "#FF0000",
	RarityExtraordinary: "#FFD700",
	RarityContraband:    "#000000",
}

// AllRarities returns every rarity in ladder order, Contraband last.
func AllRarities() []Rarity {
	return []Rarity{
		RarityConsumer,
		RarityIndustrial,
		RarityMilSpec,
		RarityRestricted,
		RarityClassified,
		RarityCovert,
		RarityExtraordinary,
		RarityContraband,
	}
}

// RarityInfo describes one tier of the ladder for display.
type RarityInfo struct {
	Rarity    Rarity  `json:"name" yaml:"name"`
	Color     string  `json:"color" yaml:"color"`
	Tradeable bool    `json:"tradeable" yaml:"tradeable"`
	InputSize int     `json:"input_size,omitempty" yaml:"input_size,omitempty"`
	Next      *Rarity `json:"next,omitempty" yaml:"next,omitempty"`
}

// Ladder describes every rarity in ladder order.
// InputSize and Next are only set for tradeable tiers.
func Ladder() []RarityInfo {
	all := AllRarities()
	out := make([]RarityInfo, len(all))
	for i, r := range all {
		info := RarityInfo{Rarity: r, Color: r.Color(), Tradeable: r.IsTradeable()}
		if next, err := r.Next(); err == nil {
			info.InputSize = r.InputSize()
			info.Next = &next
		}
		out[i] = info
	}
	return out
}

// ParseRarity converts a catalog rarity string into a Rarity.
// Matching is exact; unknown strings are rejected so malformed data fails at load time.
func ParseRarity(s string) (Rarity, error) {
	for r, name := range rarityNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, s)
}

// ParseRarityFold is ParseRarity with case-insensitive matching, for user input.
func ParseRarityFold(s string) (Rarity, error) {
	for r, name := range rarityNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRarity, s)
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

// Valid reports whether r is one of the eight known tiers.
func (r Rarity) Valid() bool {
	_, ok := rarityNames[r]
	return ok
}

// Next returns the tier one step up the ladder.
// Extraordinary is the top of the ladder and Contraband is not on it; both fail.
func (r Rarity) Next() (Rarity, error) {
	switch r {
	case RarityConsumer, RarityIndustrial, RarityMilSpec, RarityRestricted, RarityClassified, RarityCovert:
		return r + 1, nil
	default:
		return 0, &TerminalRarityError{Rarity: r}
	}
}

// IsTradeable reports whether items of this rarity may be trade-up inputs.
func (r Rarity) IsTradeable() bool {
	return r >= RarityConsumer && r <= RarityCovert
}

// InputSize is the number of items a trade-up of this rarity consumes.
func (r Rarity) InputSize() int {
	if r == RarityCovert {
		return TradeUpInputSizeCovert
	}
	return TradeUpInputSize
}

// Color returns the display colour for the rarity as a hex string.
func (r Rarity) Color() string {
	return rarityColors[r]
}

// MarshalText encodes the rarity as its canonical name.
func (r Rarity) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRarity, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a canonical rarity name.
func (r *Rarity) UnmarshalText(text []byte) error {
	parsed, err := ParseRarity(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

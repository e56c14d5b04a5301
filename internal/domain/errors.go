package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound  = "item not found"
	ErrMsgInvalidRecord = "invalid item record"
	ErrMsgUnknownRarity = "unknown rarity"
	ErrMsgEmptyID       = "record has empty id"

	// Trade-up errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgTerminalRarity  = "rarity has no successor"
	ErrMsgMixedRarity     = "mixed rarity"
	ErrMsgWrongCount      = "wrong count"
	ErrMsgNotTradeable    = "not tradeable"
	ErrMsgNoItemsSelected = "no items selected"
	ErrMsgEmptySlot       = "empty slot"
)

// Format strings used with fmt.Errorf for detailed error messages
const (
	ErrFmtRecordEmptyName     = "%w: record %q has empty name"
	ErrFmtRecordBadRarity     = "%w: record %q has invalid rarity"
	ErrFmtRecordBadFloatRange = "%w: record %q has float range [%g, %g] outside 0 <= min <= max <= 1"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)
	ErrInvalidRecord = errors.New(ErrMsgInvalidRecord)
	ErrUnknownRarity = errors.New(ErrMsgUnknownRarity)

	// Trade-up errors
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrTerminalRarity = errors.New(ErrMsgTerminalRarity)
)

// TerminalRarityError is returned when the ladder is asked to advance past its top
// tier or from a tier that is not on the ladder.
type TerminalRarityError struct {
	Rarity Rarity
}

func (e *TerminalRarityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgTerminalRarity, e.Rarity)
}

// Is lets errors.Is(err, ErrTerminalRarity) match.
func (e *TerminalRarityError) Is(target error) bool {
	return target == ErrTerminalRarity
}

// InvalidInputError describes why a trade-up input set was rejected.
// Err, when set, is the underlying cause (e.g. a *TerminalRarityError).
type InvalidInputError struct {
	Reason string
	Detail string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrMsgInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMsgInvalidInput, e.Reason, e.Detail)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned for catalog lookups with no matching record.
// Suggestions holds close names for failed name lookups.
type NotFoundError struct {
	Key         string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%s: %q", ErrMsgItemNotFound, e.Key)
	}
	return fmt.Sprintf("%s: %q (did you mean %q?)", ErrMsgItemNotFound, e.Key, e.Suggestions)
}

// Is lets errors.Is(err, ErrItemNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}

package main

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

const (
	defaultMigrationsDir = "migrations"
	inputFloatSep        = "="
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidArgument = "invalid input argument"
	ErrMsgNoInputs        = "at least one input item is required"
	ErrMsgItemSelector    = "specify an item ID or --name"
	ErrMsgBothSelectors   = "specify either an item ID or --name, not both"
	ErrMsgFloatOutOfRange = "must be between 0 and 1"
	ErrMsgEmptyItemID     = "empty item ID"
	ErrFmtInvalidInput    = "%w %q: %s"
	ErrFmtInvalidFloat    = "%w %q: invalid float: %w"
	ErrFmtUnknownOutput   = "unknown output format %q (want text, json or yaml)"
)

// ==================== Text Output ====================

const (
	HeaderItemTable   = "ID\tNAME\tRARITY\tCOLOR\tCOLLECTION\tFLOAT RANGE"
	FmtItemTableRow   = "%s\t%s\t%s\t%s\t%s\t%s-%s\n"
	FmtItemTableTotal = "\n%d items\n"

	HeaderRarityTable = "RARITY\tCOLOR\tTRADEABLE\tINPUTS\tNEXT"
	FmtRarityTableRow = "%s\t%s\t%t\t%d\t%s\n"

	FmtItemID         = "ID:          %s\n"
	FmtItemName       = "Name:        %s\n"
	FmtItemWeapon     = "Weapon:      %s\n"
	FmtItemRarity     = "Rarity:      %s (%s)\n"
	FmtItemCollection = "Collection:  %s\n"
	FmtItemFloatRange = "Float range: %s - %s\n"
	FmtItemStatTrak   = "StatTrak:    %t\n"
	FmtItemCrates     = "Crates:      %s\n"

	MsgMigrationsApplied = "migrations applied"
	NoNextRarity         = "-"
)

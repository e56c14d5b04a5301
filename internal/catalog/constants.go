package catalog

// ==================== Error Messages ====================

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgNoRecords = "catalog has no records"
)

// Format strings used with fmt.Errorf for detailed error messages
const (
	ErrFmtRecordAtIndex = "record at index %d: %w"
	ErrFmtDuplicateID   = "%w: %q"
	ErrFmtDuplicateName = "%w: %q (ids %q and %q)"
	ErrFmtCreateCache   = "failed to create item cache: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogBuilt        = "Catalog built"
	LogMsgNoCollectionRecords = "Catalog records without a collection will never be trade-up inputs"
)

// Log field keys for structured logging
const (
	LogFieldItems       = "items"
	LogFieldTradeable   = "tradeable"
	LogFieldCollections = "collections"
	LogFieldCount       = "count"
)

package postgres

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToQueryItemMetadata = "failed to query item metadata: %w"
	ErrMsgFailedToScanItemMetadata  = "failed to scan item metadata: %w"
	ErrFmtItemMetadataRow           = "%w: item_metadata id %q: %w"
)

// Log Messages
const (
	LogMsgLoadedCatalogFromDB = "Loaded catalog from database"
)

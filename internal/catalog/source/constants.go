package source

// ==================== Error Messages ====================

const (
	ErrMsgMalformedRow   = "malformed catalog row"
	ErrMsgMissingColumn  = "missing required column"
	ErrMsgInvalidCatalog = "invalid catalog file"
)

const (
	ErrFmtOpenFile      = "failed to open %s: %w"
	ErrFmtReadHeader    = "failed to read header of %s: %w"
	ErrFmtReadRow       = "failed to read %s line %d: %w"
	ErrFmtMissingColumn = "%w: %s has no %q column"
	ErrFmtRowField      = "%w: %s line %d: %s %q: %w"
	ErrFmtSchema        = "%w: schema validation failed for %s: %w"
	ErrFmtDecode        = "%w: failed to decode %s: %w"
)

// ==================== Columns ====================

// Item metadata columns
const (
	ColumnID          = "id"
	ColumnName        = "name"
	ColumnMinFloat    = "min_float"
	ColumnMaxFloat    = "max_float"
	ColumnRarity      = "rarity"
	ColumnWeapon      = "weapon"
	ColumnStatTrak    = "stattrack"
	ColumnStatTrakAlt = "stattrak"
	ColumnCrates      = "crates"
	ColumnCollections = "collections"
)

// CatalogSchemaPath is the JSON schema every catalog.json must satisfy
const CatalogSchemaPath = "configs/schemas/catalog.schema.json"

// ==================== Log Messages ====================

const (
	LogMsgLoadedCSV          = "Loaded catalog from CSV"
	LogMsgLoadedJSON         = "Loaded catalog from JSON"
	LogMsgDuplicateMapping   = "Duplicate collection mapping ignored"
	LogMsgUnparseableCrates  = "Unparseable crate list treated as empty"
	LogMsgNoCollectionSource = "No collection mapping file configured"
)

const (
	LogFieldPath    = "path"
	LogFieldRecords = "records"
	LogFieldName    = "name"
	LogFieldLine    = "line"
	LogFieldVersion = "version"
)

package config

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvLogDir          = "LOG_DIR"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvCatalogSource   = "CATALOG_SOURCE"
	EnvItemsPath       = "ITEMS_PATH"
	EnvCollectionsPath = "COLLECTIONS_PATH"
	EnvCatalogJSONPath = "CATALOG_JSON_PATH"

	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
)

// Catalog source kinds
const (
	SourceCSV      = "csv"
	SourceJSON     = "json"
	SourcePostgres = "postgres"
)

// Default values
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "tradeup"
	DefaultVersion         = "dev"
	DefaultLogDir          = "logs"
	DefaultCatalogSource   = SourceCSV
	DefaultItemsPath       = "configs/catalog/items.csv"
	DefaultCollectionsPath = "configs/catalog/item_collection_mapping.csv"
	DefaultCatalogJSONPath = "configs/catalog/catalog.json"

	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "tradeup"
	DefaultDBMaxConns = 20
)

// ExamplePassword is the placeholder shipped in .env.example
const ExamplePassword = "change_this_secure_password"

// Error messages
const (
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrFmtInvalidPort       = "invalid PORT value: %w"
	ErrFmtPortOutOfRange    = "%w: PORT %d outside 1-65535"
	ErrFmtUnknownSource     = "%w: CATALOG_SOURCE %q is not one of csv, json, postgres"
	ErrFmtMissingForSource  = "%w: %s must be set when CATALOG_SOURCE is %s"
	ErrFmtPoolSize          = "%w: DB_MAX_CONNS %d must be at least 1"
	WarnMsgExamplePassword  = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgNoCollectionsMap = "COLLECTIONS_PATH is empty - collections will come from the items file only"
)

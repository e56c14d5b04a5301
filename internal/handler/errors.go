package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidFormat         = "Invalid format '%s'. Valid options: json, text"
	ErrMsgCatalogNotLoaded      = "catalog not loaded"
)

// Health status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// Response headers and content types
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
	ContentTypeText   = "text/plain; charset=utf-8"
)

// Query parameters and URL params
const (
	ParamID     = "id"
	ParamName   = "name"
	ParamRarity = "rarity"
	ParamQuery  = "q"
	ParamFormat = "format"

	FormatJSON = "json"
	FormatText = "text"
)

// Operation names used in logs
const (
	OpGetItem       = "Get item"
	OpGetItemByName = "Get item by name"
	OpListItems     = "List items"
	OpTradeUp       = "Trade-up"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgTradeUpComputed = "Trade-up computed"
)

const initialBufferSize = 512

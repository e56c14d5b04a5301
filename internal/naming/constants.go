package naming

// ============================================================================
// Suggestion Limits
// ============================================================================

// MinSuggestInputLength is the shortest input for which suggestions are computed.
// Very short inputs are within edit distance of almost every name.
const MinSuggestInputLength = 3

// DefaultSuggestionLimit is how many suggestions callers attach to a failed lookup.
const DefaultSuggestionLimit = 3

// Name length bands used to scale the allowed edit distance
const (
	ShortNameLength  = 4
	MediumNameLength = 8
	LongNameLength   = 20
)

// MaxSuggestDistance is the allowed edit distance for names longer than LongNameLength.
const MaxSuggestDistance = 5

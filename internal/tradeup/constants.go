package tradeup

// ==================== Error Details ====================

const (
	ErrFmtExpectedCount = "expected %d items for %s, got %d"
	ErrFmtMixedRarity   = "slot %d is %s, slot 0 is %s"
	ErrFmtNotTradeable  = "slot %d (%s) is %s"
	ErrFmtEmptySlot     = "slot %d has no item"
)

// ==================== Report Text ====================

const (
	ReportHeaderSelected    = "Selected Items:"
	ReportHeaderRarityCheck = "Item rarity check:"
	ReportHeaderCollections = "Target Collections:"
	ReportHeaderOutcomes    = "Trade-up Outcomes:"

	ReportFmtSelectedItem = " - %s (Float: %s)"
	ReportFmtSameRarity   = "All items have the same rarity: %s"
	ReportFmtTargetRarity = "Target rarity: %s"
	ReportFmtCollection   = " - %s"
	ReportFmtOutcome      = " - %s: %s%% (Float: %s)"
	ReportFmtTotal        = "Total probability: %s%%"

	ReportQualityNotSet   = "Not set"
	ReportFloatNotDefined = "N/A"

	PercentPlaces = 2
	FloatPlaces   = 4

	// Smallest binary exponent of a float64; converting at this exponent is exact
	exactExponent = -1074
)

// ==================== Log Messages ====================

const (
	LogMsgTradeUpComputed = "Trade-up computed"
	LogMsgTradeUpRejected = "Trade-up rejected"
)

const (
	LogFieldRarity   = "rarity"
	LogFieldInputs   = "inputs"
	LogFieldOutcomes = "outcomes"
	LogFieldTotal    = "total"
	LogFieldReason   = "reason"
	LogFieldError    = "error"
)

package domain

// Wear is the exterior category a float value falls into.
type Wear string

const (
	WearFactoryNew    Wear = "Factory New"
	WearMinimalWear   Wear = "Minimal Wear"
	WearFieldTested   Wear = "Field-Tested"
	WearWellWorn      Wear = "Well-Worn"
	WearBattleScarred Wear = "Battle-Scarred"
	WearUnknown       Wear = "Unknown"
)

// Upper bounds (exclusive) of each wear band
const (
	WearFactoryNewMax  = 0.07
	WearMinimalWearMax = 0.15
	WearFieldTestedMax = 0.38
	WearWellWornMax    = 0.45
)

// WearFor returns the wear category for a float value.
// Values outside [0,1] map to WearUnknown.
func WearFor(f float64) Wear {
	switch {
	case f < 0 || f > 1:
		return WearUnknown
	case f < WearFactoryNewMax:
		return WearFactoryNew
	case f < WearMinimalWearMax:
		return WearMinimalWear
	case f < WearFieldTestedMax:
		return WearFieldTested
	case f < WearWellWornMax:
		return WearWellWorn
	default:
		return WearBattleScarred
	}
}

package impact

// Band thresholds. Each band includes its lower bound and excludes the next
// band's lower bound.
const (
	CriticalThreshold = 32
	HighThreshold     = 16
	MediumThreshold   = 8
)

// Band labels.
const (
	LabelCritical = "Critical"
	LabelHigh     = "High"
	LabelMedium   = "Medium"
	LabelLow      = "Low"
)

// Band is the severity band an impact score falls into.
type Band struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var (
	bandCritical = Band{Label: LabelCritical, Icon: "🔴"}
	bandHigh     = Band{Label: LabelHigh, Icon: "🟠"}
	bandMedium   = Band{Label: LabelMedium, Icon: "🟡"}
	bandLow      = Band{Label: LabelLow, Icon: "🟢"}
)

// Bands lists every band from highest to lowest.
var Bands = []Band{bandCritical, bandHigh, bandMedium, bandLow}

// Classify maps a score to its band:
//   - score >= 32 -> Critical
//   - 16 <= score < 32 -> High
//   - 8 <= score < 16 -> Medium
//   - otherwise -> Low
func Classify(score int) Band {
	switch {
	case score >= CriticalThreshold:
		return bandCritical
	case score >= HighThreshold:
		return bandHigh
	case score >= MediumThreshold:
		return bandMedium
	default:
		return bandLow
	}
}

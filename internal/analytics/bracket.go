package analytics

// PerformanceBracket names a percentile band for display
type PerformanceBracket struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BracketForPercentile maps a percentile to its display bracket
func BracketForPercentile(percentile int) PerformanceBracket {
	switch {
	case percentile >= 90:
		return PerformanceBracket{Name: "Exceptional", Description: "Top performers"}
	case percentile >= 70:
		return PerformanceBracket{Name: "Advanced", Description: "High performers"}
	case percentile >= 50:
		return PerformanceBracket{Name: "Proficient", Description: "Mid-range"}
	default:
		return PerformanceBracket{Name: "Developing", Description: "Room to grow"}
	}
}

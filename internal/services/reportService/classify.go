package reportservice

// Severity is the discrete usage bucket the host bar styles by.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"

	// SeverityErr is reserved for the unrepresentable case; Classify never
	// produces it.
	SeverityErr Severity = "err"
)

// Classify maps a used percentage to its severity bucket. Buckets are
// half-open: [0,50) low, [50,75) medium, [75,90) high, [90,100] critical.
func Classify(percent float64) Severity {
	switch {
	case percent < 50:
		return SeverityLow
	case percent < 75:
		return SeverityMedium
	case percent < 90:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

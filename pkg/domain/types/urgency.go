package types

// Urgency represents the urgency tag derived from a feedback score
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyNormal   Urgency = "normal"
)

// String returns the string representation of the urgency
func (u Urgency) String() string {
	return string(u)
}

// IsValid checks if the urgency is valid
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyCritical, UrgencyHigh, UrgencyNormal:
		return true
	default:
		return false
	}
}

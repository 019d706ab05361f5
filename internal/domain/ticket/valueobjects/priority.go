package valueobjects

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ParsePriority maps a raw string to a priority, defaulting to MEDIUM.
func ParsePriority(s string) Priority {
	p := Priority(s)
	if p.IsValid() {
		return p
	}
	return PriorityMedium
}

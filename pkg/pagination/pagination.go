package pagination

const (
	// DefaultLimit is the page size when a limit is not provided. Sales
	// history reads default to the full window the dashboard UI renders.
	DefaultLimit = 100
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 100
)

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Replace returns a copy of next when set, else current.
func Replace[T any](current, next *T) *T {
	if next == nil {
		return current
	}
	v := *next
	return &v
}

package common

// Sentinel values mark "this result is invalid" for each primitive type:
// 0.0 for floats, -1 for ints, false for bools, "" for strings. Operations
// that cannot produce a valid value return the sentinel and log a warning
// instead of failing loudly; animation code treats a sentinel read as
// "keep the previous value".

// Sentinel returns the canonical invalid-result value for T.
func Sentinel[T float32 | int | bool | string]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(0.0)).(T)
	case int:
		return any(int(-1)).(T)
	case bool:
		return any(false).(T)
	case string:
		return any("").(T)
	}
	return zero
}

// IsSentinel reports whether value is the sentinel for its type.
func IsSentinel[T float32 | int | bool | string](value T) bool {
	return value == Sentinel[T]()
}

package commands

// optional copies an optional input so later changes by the caller do not
// leak into a constructed command.
func optional[T any](value *T) *T {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

// valueOf unpacks an optional field for a getter.
func valueOf[T any](value *T) (T, bool) {
	if value == nil {
		var zero T
		return zero, false
	}
	return *value, true
}

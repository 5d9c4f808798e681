package utils

// Ptr returns a pointer to v; handy for optional columns in test fixtures.
func Ptr[T any](v T) *T {
	return &v
}

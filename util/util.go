package util

// TransformSlice applies the converter to each element in the input slice and returns a new slice.
func TransformSlice[T any, R any](in []T, converter func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = converter(v)
	}
	return out
}

// FlattenSlices concatenates slices preserving order.
func FlattenSlices[T any](in [][]T) []T {
	var out []T
	for _, part := range in {
		out = append(out, part...)
	}
	return out
}

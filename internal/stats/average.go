// Package stats holds the summary arithmetic used by the watched list.
package stats

// Number is any numeric type that can be averaged
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Average returns the arithmetic mean of values.
//
// Each term is divided by the count before it is added to the running total,
// so rounding matches the summary shown to the user exactly. An empty slice
// yields 0: the accumulator starts at zero and no terms are added.
func Average[T Number](values []T) float64 {
	n := float64(len(values))
	var acc float64
	for _, v := range values {
		acc += float64(v) / n
	}
	return acc
}

// AverageBy projects each item to a number and averages the projections
func AverageBy[E any, T Number](items []E, project func(E) T) float64 {
	values := make([]T, len(items))
	for i, item := range items {
		values[i] = project(item)
	}
	return Average(values)
}

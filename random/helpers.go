package random

// Shuffle permutes values in place with a Fisher-Yates pass.
// It walks from the last index down to 1 and uses exactly one draw per swap,
// so the same seed and input order always give the same permutation.
func Shuffle[T any](values []T, g *Generator) {
	for i := len(values) - 1; i > 0; i-- {
		j := int(g.Next() * float64(i+1))
		values[i], values[j] = values[j], values[i]
	}
}

// PickOne returns a random element of values
func PickOne[T any](values []T, g *Generator) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, ErrEmptyInput
	}

	index, err := g.RandomInt(0, len(values)-1)
	if err != nil {
		return zero, err
	}
	return values[index], nil
}

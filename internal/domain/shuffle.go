package domain

// Shuffle returns a uniformly random permutation of items using the provided RNG.
// The input slice is left untouched.
func Shuffle[T any](items []T, rng RNG) []T {
	out := make([]T, len(items))
	copy(out, items)

	// Fisher-Yates: every permutation is equally likely given a uniform Intn.
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

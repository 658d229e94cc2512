package utils

import "cmp"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the first maximum element, or -1 for an empty slice.
func ArgMax[T cmp.Ordered](slice []T) int {
	if len(slice) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(slice); i++ {
		if slice[i] > slice[best] {
			best = i
		}
	}
	return best
}

func Sum[T cmp.Ordered](slice []T) T {
	var total T
	for _, v := range slice {
		total += v
	}
	return total
}

package utils

import "fmt"

// FindIndex returns the position of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// MustFindIndex is FindIndex for items the caller knows are present.
func MustFindIndex[T comparable](slice []T, item T) int {
	i := FindIndex(slice, item)
	if i < 0 {
		panic(fmt.Sprintf("%v not found in %v", item, slice))
	}
	return i
}

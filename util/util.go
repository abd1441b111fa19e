// Package util is used for general utility function such as generic set operations over slices.
package util

import "slices"

// Exclude returns all elements that exist in source but not exclude
func Exclude[T comparable](source, exclude []T) []T {
	list := make([]T, 0, len(source))
	for _, item := range source {
		if slices.Contains(exclude, item) {
			continue
		}
		list = append(list, item)
	}

	return list
}

// Union returns source followed by the elements of add that source does not already contain.
// Duplicates within add are collapsed.
func Union[T comparable](source, add []T) []T {
	list := slices.Clone(source)
	for _, item := range add {
		if slices.Contains(list, item) {
			continue
		}
		list = append(list, item)
	}

	return list
}

// ContainsAll reports whether every element of want is in source.
func ContainsAll[T comparable](source, want []T) bool {
	for _, item := range want {
		if !slices.Contains(source, item) {
			return false
		}
	}

	return true
}

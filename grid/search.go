package grid

import (
	"cmp"
	"sort"
)

// LowerBound returns the greatest element of the ascending slice s that is
// strictly less than q. ok is false when no such element exists.
//
// Example: s = [2,7,7,7,10,12], q = 7 → 2.
// Complexity: O(log n).
func LowerBound[T cmp.Ordered](s []T, q T) (v T, ok bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= q })
	if i == 0 {
		return v, false
	}

	return s[i-1], true
}

// UpperBound returns the least element of the ascending slice s that is
// strictly greater than q. ok is false when no such element exists.
//
// Example: s = [2,7,7,7,10,12], q = 7 → 10.
// Complexity: O(log n).
func UpperBound[T cmp.Ordered](s []T, q T) (v T, ok bool) {
	i := sort.Search(len(s), func(i int) bool { return s[i] > q })
	if i == len(s) {
		return v, false
	}

	return s[i], true
}

// contains reports whether the ascending slice s holds q.
func contains(s []int, q int) bool {
	i := sort.SearchInts(s, q)
	return i < len(s) && s[i] == q
}
